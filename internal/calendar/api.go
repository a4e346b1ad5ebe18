package calendar

import (
	"context"
	"time"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Config struct {
	Provider string `yaml:"provider"` // "google" or empty to disable

	Google struct {
		ClientID     string `yaml:"client_id"`
		ClientSecret string `yaml:"client_secret"`
		RefreshToken string `yaml:"refresh_token"`
		CalendarID   string `yaml:"calendar_id"`
	} `yaml:"google"`
}

type CreateRequest struct {
	Start time.Time
	End   time.Time

	OrganizerEmail string
	AttendeeEmail  string

	// IdempotencyKey dedupes meeting creation on the provider side.
	IdempotencyKey string
	Summary        string
}

type Event struct {
	ExternalID  string
	MeetingLink string
	Status      string
}

// API is the contract the engine requires from a calendar provider.
// CreateEvent must not be invoked twice for one schedule; the state
// machine guards that, not the adapter.
type API interface {
	IsConfigured() bool

	CreateEvent(ctx context.Context, req CreateRequest) (*Event, error)

	// PatchCancelled is best-effort; callers log failures and move on.
	PatchCancelled(ctx context.Context, externalID string) error

	// GetEvent reports the remote status; used by the reconciler only.
	GetEvent(ctx context.Context, externalID string) (*Event, error)
}
