package mongotools

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/interviewd/pkg/errors"
)

func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(map[string]any, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}

	return bson.M{"$set": bson.M(s)}
}

func ID(id string) bson.M {
	return bson.M{"_id": id}
}

func Field[T any](field string, value T) bson.M {
	return bson.M{field: value}
}

func In[T any](field string, values ...T) bson.M {
	return bson.M{field: bson.M{"$in": values}}
}

// Overlaps filters documents whose [startField, endField) interval
// intersects [from, to).
func Overlaps[T any](startField, endField string, from, to T) bson.M {
	return bson.M{
		startField: bson.M{"$lt": to},
		endField:   bson.M{"$gt": from},
	}
}

func DrainAll[T any](ctx context.Context, c *mongo.Cursor) ([]T, error) {
	defer c.Close(ctx)

	var items []T
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		items = append(items, item)
	}

	return items, c.Err()
}
