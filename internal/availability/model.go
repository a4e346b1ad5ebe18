package availability

import (
	"time"

	"github.com/nikmy/interviewd/pkg/errors"
)

var ErrInvalidProfile = errors.Error("invalid availability profile")

var (
	allowedDurations = map[int]bool{15: true, 30: true, 45: true, 60: true}
	allowedBuffers   = map[int]bool{0: true, 5: true, 10: true, 15: true, 30: true}
)

const wallClockLayout = "15:04"

// Profile is an employer's recurring weekly interview-hours template.
// Working days are Monday=0..Sunday=6; start/end are local wall-clock
// times interpreted in the profile's IANA timezone.
type Profile struct {
	ID         string `json:"id"          bson:"_id"`
	EmployerID string `json:"employer_id" bson:"employer_id"`

	WorkingDays []int  `json:"working_days" bson:"working_days"`
	StartTime   string `json:"start_time"   bson:"start_time"`
	EndTime     string `json:"end_time"     bson:"end_time"`
	Timezone    string `json:"timezone"     bson:"timezone"`

	SlotDurationMinutes int `json:"slot_duration_minutes" bson:"slot_duration_minutes"`
	BufferMinutes       int `json:"buffer_minutes"        bson:"buffer_minutes"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (p *Profile) Validate() error {
	if p.EmployerID == "" {
		return errors.Wrap(ErrInvalidProfile, "employer is required")
	}

	if len(p.WorkingDays) == 0 {
		return errors.Wrap(ErrInvalidProfile, "at least one working day is required")
	}
	seen := map[int]bool{}
	for _, d := range p.WorkingDays {
		if d < 0 || d > 6 {
			return errors.Wrap(ErrInvalidProfile, "working day must be in [0, 6]")
		}
		if seen[d] {
			return errors.Wrap(ErrInvalidProfile, "duplicate working day")
		}
		seen[d] = true
	}

	start, err := time.Parse(wallClockLayout, p.StartTime)
	if err != nil {
		return errors.Wrap(ErrInvalidProfile, "start time must be HH:MM")
	}
	end, err := time.Parse(wallClockLayout, p.EndTime)
	if err != nil {
		return errors.Wrap(ErrInvalidProfile, "end time must be HH:MM")
	}
	if !end.After(start) {
		return errors.Wrap(ErrInvalidProfile, "start time must be before end time")
	}

	if _, err := time.LoadLocation(p.Timezone); err != nil || p.Timezone == "" {
		return errors.Wrap(ErrInvalidProfile, "timezone must be a valid IANA identifier")
	}

	if !allowedDurations[p.SlotDurationMinutes] {
		return errors.Wrap(ErrInvalidProfile, "slot duration must be one of 15, 30, 45, 60 minutes")
	}
	if !allowedBuffers[p.BufferMinutes] {
		return errors.Wrap(ErrInvalidProfile, "buffer must be one of 0, 5, 10, 15, 30 minutes")
	}

	return nil
}

func (p *Profile) worksOn(weekday int) bool {
	for _, d := range p.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// mondayIndex converts Go's Sunday-based weekday to the Monday=0 convention.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
