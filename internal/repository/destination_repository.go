package repository

import (
	"context"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DestinationRepository struct {
	coll *mongo.Collection
}

func NewDestinationRepository(db *mongo.Database) *DestinationRepository {
	return &DestinationRepository{coll: db.Collection(database.DestinationsCollection)}
}

func (r *DestinationRepository) GetAll(ctx context.Context, order models.SortOrder) ([]models.Destination, error) {
	direction := 1
	if order == models.SortDesc {
		direction = -1
	}
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "price", Value: direction}}))
}

func (r *DestinationRepository) GetPopular(ctx context.Context, limit int64) ([]models.Destination, error) {
	return r.find(ctx, bson.M{"popular": true}, options.Find().SetLimit(limit))
}

func (r *DestinationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	var destination models.Destination
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&destination); err != nil {
		return nil, translate(err)
	}
	return &destination, nil
}

func (r *DestinationRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Destination, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	destinations := []models.Destination{}
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}
