package calendar

import (
	"context"

	"github.com/nikmy/interviewd/pkg/errors"
)

var errNotConfigured = errors.Error("no calendar provider configured")

// Disabled is used when no provider is configured; every call except
// IsConfigured fails.
func Disabled() API {
	return disabled{}
}

type disabled struct{}

func (disabled) IsConfigured() bool {
	return false
}

func (disabled) CreateEvent(context.Context, CreateRequest) (*Event, error) {
	return nil, errNotConfigured
}

func (disabled) PatchCancelled(context.Context, string) error {
	return errNotConfigured
}

func (disabled) GetEvent(context.Context, string) (*Event, error) {
	return nil, errNotConfigured
}
