package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
//
// The unique index on start_utc is what makes concurrent booking safe:
// slots are grid-aligned and fixed-length, so two overlapping bookings
// necessarily share the same start instant, and the second insert fails
// with a duplicate-key error regardless of what the overlap pre-check saw.
func (repo *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "start_utc", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_start_utc"),
		},
		// Supports the overlap filter on both bounds.
		{
			Keys:    bson.D{{Key: "start_utc", Value: 1}, {Key: "end_utc", Value: 1}},
			Options: options.Index().SetName("start_end_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
