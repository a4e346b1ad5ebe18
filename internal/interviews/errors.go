package interviews

import "github.com/nikmy/interviewd/pkg/errors"

// The four error kinds the engine surfaces. Callers branch with
// errors.Is; wrapped messages carry the detail a client needs to decide
// whether to refresh its slot view or give up.
var (
	// ErrNotFound covers both "absent" and "not owned by caller";
	// they are deliberately indistinguishable.
	ErrNotFound = errors.Error("not found")

	// ErrConflict means a state machine precondition failed.
	ErrConflict = errors.Error("conflict")

	// ErrValidation means structurally invalid input.
	ErrValidation = errors.Error("invalid input")

	// ErrCalendarUnavailable is retryable, unlike ErrConflict.
	ErrCalendarUnavailable = errors.Error("calendar unavailable")
)
