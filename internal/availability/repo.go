package availability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviewd/internal/repo"
	"github.com/nikmy/interviewd/pkg/errors"
)

type Store interface {
	// Set replaces the employer's profile, creating it on first use.
	Set(ctx context.Context, profile *Profile) error

	// Get returns nil without error when the employer has no profile.
	Get(ctx context.Context, employerID string) (*Profile, error)
}

func NewStore(client *repo.Client) Store {
	return &mongoStore{coll: client.Collection(repo.CollAvailability)}
}

type mongoStore struct {
	coll *mongo.Collection
}

func (m *mongoStore) Set(ctx context.Context, profile *Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	_, err := m.coll.UpdateOne(
		ctx,
		bson.M{"employer_id": profile.EmployerID},
		bson.M{
			"$set": bson.M{
				"working_days":          profile.WorkingDays,
				"start_time":            profile.StartTime,
				"end_time":              profile.EndTime,
				"timezone":              profile.Timezone,
				"slot_duration_minutes": profile.SlotDurationMinutes,
				"buffer_minutes":        profile.BufferMinutes,
				"updated_at":            now,
			},
			"$setOnInsert": bson.M{
				"_id":        uuid.NewString(),
				"created_at": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	return errors.WrapFail(err, "upsert availability profile")
}

func (m *mongoStore) Get(ctx context.Context, employerID string) (*Profile, error) {
	r := m.coll.FindOne(ctx, bson.M{"employer_id": employerID})

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find availability profile")
	}

	var profile Profile
	err = r.Decode(&profile)
	if err != nil {
		return nil, errors.WrapFail(err, "decode availability profile")
	}

	return &profile, nil
}
