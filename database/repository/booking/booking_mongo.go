package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
//
// Absolute instants are stored as RFC3339 UTC strings; at fixed precision
// they order lexicographically, so plain $gte/$lt string filters implement
// the range and overlap queries.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

// FindInWindow returns all bookings whose start_utc falls within [startUTC, endUTC).
func (repo *MongoBookingRepo) FindInWindow(ctx context.Context, startUTC, endUTC time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"start_utc": bson.M{
			"$gte": startUTC.UTC().Format(time.RFC3339),
			"$lt":  endUTC.UTC().Format(time.RFC3339),
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_utc", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings in window: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// FindOverlapping returns one booking overlapping [startUTC, endUTC), or nil.
// Overlap is the half-open test: existing.start < end AND existing.end > start.
func (repo *MongoBookingRepo) FindOverlapping(ctx context.Context, startUTC, endUTC time.Time) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"start_utc": bson.M{"$lt": endUTC.UTC().Format(time.RFC3339)},
		"end_utc":   bson.M{"$gt": startUTC.UTC().Format(time.RFC3339)},
	}
	var booking models.Booking
	if err := repo.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding overlapping booking: %w", err)
	}
	return &booking, nil
}

// Insert persists a new booking document. A duplicate-key rejection from the
// unique start_utc index is mapped to ErrDuplicateSlot.
func (repo *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}
