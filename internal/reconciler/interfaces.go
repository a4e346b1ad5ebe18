package reconciler

import (
	"context"
	"time"

	"github.com/nikmy/interviewd/internal/calendar"
	"github.com/nikmy/interviewd/internal/interviews"
)

type scheduler interface {
	Cancel(ctx context.Context, scheduleID string, source interviews.CancelSource) error
}

type storage interface {
	ListByState(ctx context.Context, state interviews.State) ([]interviews.Schedule, error)
	EarliestOfferedStart(ctx context.Context, scheduleID string) (time.Time, bool, error)
}

type calendarAPI interface {
	IsConfigured() bool
	GetEvent(ctx context.Context, externalID string) (*calendar.Event, error)
}
