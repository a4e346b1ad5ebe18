package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviewd/pkg/errors"
)

const (
	CollAvailability = "availability"
	CollSchedules    = "schedules"
	CollSlots        = "offered_slots"
	CollApplications = "applications"
	CollJobs         = "jobs"
)

var (
	availabilityIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employer_id", Value: 1}},
			Options: options.Index().SetName("employer").SetUnique(true),
		},
	}

	scheduleIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "application_id", Value: 1}},
			Options: options.Index().SetName("application").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "employer_id", Value: 1}, {Key: "state", Value: 1}},
			Options: options.Index().SetName("employer_state"),
		},
		{
			Keys:    bson.D{{Key: "candidate_id", Value: 1}},
			Options: options.Index().SetName("candidate"),
		},
		// A slot interval may be referenced by many historical schedules,
		// but only one live scheduled meeting per employer may hold it.
		{
			Keys: bson.D{
				{Key: "employer_id", Value: 1},
				{Key: "chosen_slot_start", Value: 1},
				{Key: "chosen_slot_end", Value: 1},
			},
			Options: options.Index().
				SetName("employer_chosen_slot").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"state": "scheduled"}),
		},
	}

	slotIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "schedule_id", Value: 1}},
			Options: options.Index().SetName("schedule"),
		},
		{
			Keys: bson.D{
				{Key: "employer_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "slot_start", Value: 1},
			},
			Options: options.Index().SetName("employer_status_start"),
		},
	}
)

func (c *Client) EnsureIndexes(ctx context.Context) error {
	for coll, models := range map[string][]mongo.IndexModel{
		CollAvailability: availabilityIndexes,
		CollSchedules:    scheduleIndexes,
		CollSlots:        slotIndexes,
	} {
		_, err := c.db.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			return errors.WrapFailf(err, "create indexes for %s", coll)
		}

		c.log.Debugf("ensured %d indexes for %s", len(models), coll)
	}

	return nil
}
