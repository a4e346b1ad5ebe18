package interviews

import "time"

type State string

const (
	// StateSlotsOffered is set when the employer sends slot options.
	StateSlotsOffered State = "slots_offered"

	// StateCandidatePicked is set when the candidate confirms one slot.
	StateCandidatePicked State = "candidate_picked_slot"

	// StateScheduled is the terminal success state with a calendar event.
	StateScheduled State = "scheduled"

	// StateCancelled is reachable from every other state exactly once.
	StateCancelled State = "cancelled"
)

type CancelSource string

const (
	CancelledByEmployer  CancelSource = "employer"
	CancelledByCandidate CancelSource = "candidate"
	CancelledByTimeout   CancelSource = "system_timeout"
	CancelledExternally  CancelSource = "external"
)

type SlotStatus string

const (
	SlotOffered   SlotStatus = "offered"
	SlotConfirmed SlotStatus = "confirmed"
	SlotReleased  SlotStatus = "released"
)

// Schedule tracks the lifecycle of one interview per job application.
// Rows are never deleted; a cancelled schedule stays as history.
type Schedule struct {
	ID            string `json:"id"             bson:"_id"`
	ApplicationID string `json:"application_id" bson:"application_id"`
	JobID         string `json:"job_id"         bson:"job_id"`
	EmployerID    string `json:"employer_id"    bson:"employer_id"`
	CandidateID   string `json:"candidate_id"   bson:"candidate_id"`

	State State `json:"state" bson:"state"`

	// StateVersion counts transitions for audit; it is never used as a
	// compare-and-swap guard. Legality checks go through State alone.
	StateVersion int64 `json:"state_version" bson:"state_version"`

	CancelSource CancelSource `json:"cancel_source,omitempty" bson:"cancel_source,omitempty"`

	ChosenSlotStart *time.Time `json:"chosen_slot_start,omitempty" bson:"chosen_slot_start,omitempty"`
	ChosenSlotEnd   *time.Time `json:"chosen_slot_end,omitempty"   bson:"chosen_slot_end,omitempty"`

	OfferSentAt          time.Time  `json:"offer_sent_at"                    bson:"offer_sent_at"`
	CandidateConfirmedAt *time.Time `json:"candidate_confirmed_at,omitempty" bson:"candidate_confirmed_at,omitempty"`

	MeetingLink     string `json:"meeting_link,omitempty"      bson:"meeting_link,omitempty"`
	ExternalEventID string `json:"external_event_id,omitempty" bson:"external_event_id,omitempty"`

	// LockedUntil is reserved for confirm-window enforcement.
	LockedUntil *time.Time `json:"locked_until,omitempty" bson:"locked_until,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// OfferedSlot is one candidate-facing option of an offer. It mutates
// exactly once: offered -> confirmed, or offered -> released.
type OfferedSlot struct {
	ID         string `json:"id"          bson:"_id"`
	ScheduleID string `json:"schedule_id" bson:"schedule_id"`
	EmployerID string `json:"employer_id" bson:"employer_id"`

	SlotStart time.Time `json:"slot_start" bson:"slot_start"`
	SlotEnd   time.Time `json:"slot_end"   bson:"slot_end"`

	Status SlotStatus `json:"status" bson:"status"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
