package interviews

import (
	"context"
	"time"
)

// Storage is the persistence contract of the scheduling engine. Every
// mutating call re-checks the expected prior state inside the update
// itself, so two writers racing on one schedule are serialized by the
// data layer: the loser gets ErrConflict, never a silent no-op.
type Storage interface {
	// CreateOffer atomically inserts the schedule and its offered
	// slots. A schedule already bound to the application fails with
	// ErrConflict.
	CreateOffer(ctx context.Context, schedule *Schedule, slots []OfferedSlot) error

	GetSchedule(ctx context.Context, id string) (*Schedule, error)
	GetByApplication(ctx context.Context, applicationID string) (*Schedule, error)

	ListSlots(ctx context.Context, scheduleID string) ([]OfferedSlot, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Schedule, error)
	ListByEmployer(ctx context.Context, employerID string, from, to time.Time) ([]Schedule, error)
	ListByState(ctx context.Context, state State) ([]Schedule, error)

	// ConfirmSlot atomically confirms one offered slot, releases its
	// siblings and advances the schedule to candidate_picked_slot.
	// If the slot is no longer offered, or the schedule has left
	// slots_offered, the whole operation fails with ErrConflict.
	ConfirmSlot(ctx context.Context, scheduleID, slotID string, now time.Time) (*Schedule, error)

	// MarkScheduled advances candidate_picked_slot -> scheduled and
	// records the calendar event. A second call, or another scheduled
	// meeting of the same employer holding the identical interval,
	// fails with ErrConflict.
	MarkScheduled(ctx context.Context, scheduleID, meetingLink, externalEventID string) (*Schedule, error)

	// MarkCancelled advances any non-cancelled state to cancelled and
	// releases every non-released slot. Cancelling an already
	// cancelled schedule fails with ErrConflict.
	MarkCancelled(ctx context.Context, scheduleID string, source CancelSource) (*Schedule, error)

	// EarliestOfferedStart returns the start of the soonest slot still
	// in status offered; ok is false when none are left.
	EarliestOfferedStart(ctx context.Context, scheduleID string) (start time.Time, ok bool, err error)

	// OccupiedRanges returns the union of chosen intervals of scheduled
	// meetings and intervals of live (offered or confirmed) slots for
	// the employer, overlapping [from, to).
	OccupiedRanges(ctx context.Context, employerID string, from, to time.Time) ([][2]time.Time, error)
}
