package availability

import (
	"context"
	"time"

	"github.com/nikmy/interviewd/pkg/errors"
)

// horizonDays bounds how far ahead slots are generated.
const horizonDays = 14

// OccupiedSource reports the UTC intervals already held by scheduled
// meetings or in-flight offers of the given employer within a window.
type OccupiedSource interface {
	OccupiedRanges(ctx context.Context, employerID string, from, to time.Time) ([][2]time.Time, error)
}

func NewGenerator(profiles Store, occupied OccupiedSource) *Generator {
	return &Generator{
		profiles: profiles,
		occupied: occupied,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type Generator struct {
	profiles Store
	occupied OccupiedSource
	now      func() time.Time
}

// Generate expands the employer's weekly template into offerable UTC
// slot intervals, ordered by start time. Intervals that have already
// started or that overlap an occupied range are dropped. An employer
// without a profile yields an empty list.
func (g *Generator) Generate(ctx context.Context, employerID string, from time.Time) ([][2]time.Time, error) {
	profile, err := g.profiles.Get(ctx, employerID)
	if err != nil {
		return nil, errors.WrapFail(err, "load availability profile")
	}
	if profile == nil {
		return nil, nil
	}

	loc, err := time.LoadLocation(profile.Timezone)
	if err != nil {
		return nil, errors.WrapFail(err, "load profile timezone")
	}

	now := g.now()
	if from.IsZero() {
		from = now
	}
	windowEnd := from.AddDate(0, 0, horizonDays)

	startHour, startMin := mustWallClock(profile.StartTime)
	endHour, endMin := mustWallClock(profile.EndTime)

	duration := time.Duration(profile.SlotDurationMinutes) * time.Minute
	step := duration + time.Duration(profile.BufferMinutes)*time.Minute

	var generated [][2]time.Time

	day := from.In(loc)
	for !day.After(windowEnd.In(loc)) {
		year, month, date := day.Date()
		day = day.AddDate(0, 0, 1)

		if !profile.worksOn(mondayIndex(time.Date(year, month, date, 0, 0, 0, 0, loc).Weekday())) {
			continue
		}

		// Boundaries are built per date so DST transitions shift the
		// UTC offset of each day independently.
		dayStart := time.Date(year, month, date, startHour, startMin, 0, 0, loc)
		dayEnd := time.Date(year, month, date, endHour, endMin, 0, 0, loc)

		for s := dayStart; !s.Add(duration).After(dayEnd); s = s.Add(step) {
			start, end := s.UTC(), s.Add(duration).UTC()
			if !start.After(now) || !start.Before(windowEnd) {
				continue
			}
			generated = append(generated, [2]time.Time{start, end})
		}
	}

	if len(generated) == 0 {
		return nil, nil
	}

	taken, err := g.occupied.OccupiedRanges(ctx, employerID, from, windowEnd)
	if err != nil {
		return nil, errors.WrapFail(err, "resolve occupied ranges")
	}

	free := generated[:0]
	for _, slot := range generated {
		if !overlapsAny(slot, taken) {
			free = append(free, slot)
		}
	}

	return free, nil
}

func overlapsAny(slot [2]time.Time, taken [][2]time.Time) bool {
	for _, t := range taken {
		// Half-open intervals: touching ends is not an overlap.
		if slot[0].Before(t[1]) && t[0].Before(slot[1]) {
			return true
		}
	}
	return false
}

// mustWallClock parses HH:MM previously checked by Profile.Validate.
func mustWallClock(s string) (hour, min int) {
	t, err := time.Parse(wallClockLayout, s)
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}
