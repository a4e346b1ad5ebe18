package interviews

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviewd/internal/repo"
	"github.com/nikmy/interviewd/pkg/errors"
	mng "github.com/nikmy/interviewd/pkg/mongotools"
)

func NewStorage(client *repo.Client) Storage {
	return &mongoStorage{
		client:    client,
		schedules: client.Collection(repo.CollSchedules),
		slots:     client.Collection(repo.CollSlots),
	}
}

type mongoStorage struct {
	client    *repo.Client
	schedules *mongo.Collection
	slots     *mongo.Collection
}

func (m *mongoStorage) CreateOffer(ctx context.Context, schedule *Schedule, slots []OfferedSlot) error {
	return m.client.Txn(ctx, func(ctx context.Context) error {
		_, err := m.schedules.InsertOne(ctx, schedule)
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(ErrConflict, "application already has a schedule")
		}
		if err != nil {
			return errors.WrapFail(err, "insert schedule")
		}

		docs := make([]any, 0, len(slots))
		for i := range slots {
			docs = append(docs, slots[i])
		}

		_, err = m.slots.InsertMany(ctx, docs)
		return errors.WrapFail(err, "insert offered slots")
	})
}

func (m *mongoStorage) GetSchedule(ctx context.Context, id string) (*Schedule, error) {
	return m.findOne(ctx, mng.ID(id))
}

func (m *mongoStorage) GetByApplication(ctx context.Context, applicationID string) (*Schedule, error) {
	return m.findOne(ctx, bson.M{"application_id": applicationID})
}

func (m *mongoStorage) findOne(ctx context.Context, filter bson.M) (*Schedule, error) {
	r := m.schedules.FindOne(ctx, filter)

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find schedule")
	}

	var s Schedule
	err = r.Decode(&s)
	if err != nil {
		return nil, errors.WrapFail(err, "decode schedule")
	}

	return &s, nil
}

func (m *mongoStorage) ListSlots(ctx context.Context, scheduleID string) ([]OfferedSlot, error) {
	c, err := m.slots.Find(
		ctx,
		bson.M{"schedule_id": scheduleID},
		options.Find().SetSort(bson.D{{Key: "slot_start", Value: 1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find offered slots")
	}

	return mng.DrainAll[OfferedSlot](ctx, c)
}

func (m *mongoStorage) ListByCandidate(ctx context.Context, candidateID string) ([]Schedule, error) {
	c, err := m.schedules.Find(
		ctx,
		bson.M{"candidate_id": candidateID},
		options.Find().SetSort(bson.D{{Key: "offer_sent_at", Value: -1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find schedules by candidate")
	}

	return mng.DrainAll[Schedule](ctx, c)
}

func (m *mongoStorage) ListByEmployer(ctx context.Context, employerID string, from, to time.Time) ([]Schedule, error) {
	filter := bson.M{"employer_id": employerID}
	if !from.IsZero() || !to.IsZero() {
		filter["offer_sent_at"] = bson.M{"$gte": from, "$lt": to}
	}

	c, err := m.schedules.Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "offer_sent_at", Value: -1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find schedules by employer")
	}

	return mng.DrainAll[Schedule](ctx, c)
}

func (m *mongoStorage) ListByState(ctx context.Context, state State) ([]Schedule, error) {
	c, err := m.schedules.Find(ctx, bson.M{"state": state})
	if err != nil {
		return nil, errors.WrapFail(err, "find schedules by state")
	}

	return mng.DrainAll[Schedule](ctx, c)
}

func (m *mongoStorage) ConfirmSlot(ctx context.Context, scheduleID, slotID string, now time.Time) (*Schedule, error) {
	var updated *Schedule

	err := m.client.Txn(ctx, func(ctx context.Context) error {
		// The predicate on status makes double confirmation impossible:
		// whichever request matches first flips the slot, the other
		// matches zero documents.
		r := m.slots.FindOneAndUpdate(
			ctx,
			bson.M{"_id": slotID, "schedule_id": scheduleID, "status": SlotOffered},
			mng.SetAll(
				mng.Field("status", SlotConfirmed),
				mng.Field("updated_at", now),
			),
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
		if errors.Is(r.Err(), mongo.ErrNoDocuments) {
			return errors.Wrap(ErrConflict, "slot is no longer offered")
		}
		if r.Err() != nil {
			return errors.WrapFail(r.Err(), "confirm offered slot")
		}

		var chosen OfferedSlot
		err := r.Decode(&chosen)
		if err != nil {
			return errors.WrapFail(err, "decode confirmed slot")
		}

		_, err = m.slots.UpdateMany(
			ctx,
			bson.M{"schedule_id": scheduleID, "status": SlotOffered},
			mng.SetAll(
				mng.Field("status", SlotReleased),
				mng.Field("updated_at", now),
			),
		)
		if err != nil {
			return errors.WrapFail(err, "release sibling slots")
		}

		sr := m.schedules.FindOneAndUpdate(
			ctx,
			bson.M{"_id": scheduleID, "state": StateSlotsOffered},
			bson.M{
				"$set": bson.M{
					"state":                  StateCandidatePicked,
					"chosen_slot_start":      chosen.SlotStart,
					"chosen_slot_end":        chosen.SlotEnd,
					"candidate_confirmed_at": now,
					"updated_at":             now,
				},
				"$inc": bson.M{"state_version": 1},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
		if errors.Is(sr.Err(), mongo.ErrNoDocuments) {
			return errors.Wrap(ErrConflict, "schedule is not awaiting slot choice")
		}
		if sr.Err() != nil {
			return errors.WrapFail(sr.Err(), "advance schedule")
		}

		var s Schedule
		err = sr.Decode(&s)
		if err != nil {
			return errors.WrapFail(err, "decode schedule")
		}

		updated = &s
		return nil
	})

	return updated, err
}

func (m *mongoStorage) MarkScheduled(ctx context.Context, scheduleID, meetingLink, externalEventID string) (*Schedule, error) {
	r := m.schedules.FindOneAndUpdate(
		ctx,
		bson.M{
			"_id":               scheduleID,
			"state":             StateCandidatePicked,
			"external_event_id": bson.M{"$exists": false},
		},
		bson.M{
			"$set": bson.M{
				"state":             StateScheduled,
				"meeting_link":      meetingLink,
				"external_event_id": externalEventID,
				"updated_at":        time.Now().UTC(),
			},
			"$inc": bson.M{"state_version": 1},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(ErrConflict, "schedule is not awaiting employer confirmation")
	}
	// The partial unique index rejects a second scheduled meeting of
	// the same employer on the identical interval.
	if mongo.IsDuplicateKeyError(err) {
		return nil, errors.Wrap(ErrConflict, "employer already has a meeting scheduled on this slot")
	}
	if err != nil {
		return nil, errors.WrapFail(err, "mark schedule as scheduled")
	}

	var s Schedule
	err = r.Decode(&s)
	if err != nil {
		return nil, errors.WrapFail(err, "decode schedule")
	}

	return &s, nil
}

func (m *mongoStorage) MarkCancelled(ctx context.Context, scheduleID string, source CancelSource) (*Schedule, error) {
	var updated *Schedule

	err := m.client.Txn(ctx, func(ctx context.Context) error {
		r := m.schedules.FindOneAndUpdate(
			ctx,
			bson.M{"_id": scheduleID, "state": bson.M{"$ne": StateCancelled}},
			bson.M{
				"$set": bson.M{
					"state":         StateCancelled,
					"cancel_source": source,
					"updated_at":    time.Now().UTC(),
				},
				"$inc": bson.M{"state_version": 1},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
		if errors.Is(r.Err(), mongo.ErrNoDocuments) {
			return errors.Wrap(ErrConflict, "schedule is already cancelled")
		}
		if r.Err() != nil {
			return errors.WrapFail(r.Err(), "cancel schedule")
		}

		var s Schedule
		err := r.Decode(&s)
		if err != nil {
			return errors.WrapFail(err, "decode schedule")
		}

		// Freeing the intervals puts them back into slot generation.
		_, err = m.slots.UpdateMany(
			ctx,
			bson.M{"schedule_id": scheduleID, "status": bson.M{"$ne": SlotReleased}},
			mng.SetAll(
				mng.Field("status", SlotReleased),
				mng.Field("updated_at", time.Now().UTC()),
			),
		)
		if err != nil {
			return errors.WrapFail(err, "release slots of cancelled schedule")
		}

		updated = &s
		return nil
	})

	return updated, err
}

func (m *mongoStorage) EarliestOfferedStart(ctx context.Context, scheduleID string) (time.Time, bool, error) {
	r := m.slots.FindOne(
		ctx,
		bson.M{"schedule_id": scheduleID, "status": SlotOffered},
		options.FindOne().SetSort(bson.D{{Key: "slot_start", Value: 1}}),
	)

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errors.WrapFail(err, "find earliest offered slot")
	}

	var slot OfferedSlot
	err = r.Decode(&slot)
	if err != nil {
		return time.Time{}, false, errors.WrapFail(err, "decode offered slot")
	}

	return slot.SlotStart, true, nil
}

func (m *mongoStorage) OccupiedRanges(ctx context.Context, employerID string, from, to time.Time) ([][2]time.Time, error) {
	var ranges [][2]time.Time

	scheduledFilter := bson.M{
		"employer_id": employerID,
		"state":       StateScheduled,
	}
	for k, v := range mng.Overlaps("chosen_slot_start", "chosen_slot_end", from, to) {
		scheduledFilter[k] = v
	}

	c, err := m.schedules.Find(ctx, scheduledFilter)
	if err != nil {
		return nil, errors.WrapFail(err, "find scheduled meetings")
	}

	scheduled, err := mng.DrainAll[Schedule](ctx, c)
	if err != nil {
		return nil, errors.WrapFail(err, "drain scheduled meetings")
	}

	for _, s := range scheduled {
		if s.ChosenSlotStart == nil || s.ChosenSlotEnd == nil {
			continue
		}
		ranges = append(ranges, [2]time.Time{*s.ChosenSlotStart, *s.ChosenSlotEnd})
	}

	// Live offers reserve their intervals regardless of the owning
	// schedule's own state.
	liveFilter := bson.M{
		"employer_id": employerID,
		"status":      bson.M{"$in": []SlotStatus{SlotOffered, SlotConfirmed}},
	}
	for k, v := range mng.Overlaps("slot_start", "slot_end", from, to) {
		liveFilter[k] = v
	}

	c, err = m.slots.Find(ctx, liveFilter)
	if err != nil {
		return nil, errors.WrapFail(err, "find live offered slots")
	}

	live, err := mng.DrainAll[OfferedSlot](ctx, c)
	if err != nil {
		return nil, errors.WrapFail(err, "drain live offered slots")
	}

	for _, slot := range live {
		ranges = append(ranges, [2]time.Time{slot.SlotStart, slot.SlotEnd})
	}

	return ranges, nil
}
