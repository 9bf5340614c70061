package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection          = "users"
	AccommodationsCollection = "accommodations"
	BookingsCollection       = "bookings"
	DestinationsCollection   = "destinations"
	TravelPlansCollection    = "travelplans"
	DiscoveriesCollection    = "discoveries"
)

const connectTimeout = 10 * time.Second

// NewDatabase connects to MongoDB and pings the primary before returning.
func NewDatabase(ctx context.Context, uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client.Database(name), nil
}

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		BookingsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		DestinationsCollection: {
			{Keys: bson.D{{Key: "price", Value: 1}}},
			{Keys: bson.D{{Key: "popular", Value: 1}}},
		},
		TravelPlansCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		DiscoveriesCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
