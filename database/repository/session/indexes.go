package sessionRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
// The compound index backs the conflict probe; it is deliberately not
// unique, so the commit path's check-then-write stays the sole guard.
func (repo *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "therapistId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
			{Key: "status", Value: 1},
		}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
