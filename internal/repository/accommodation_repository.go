package repository

import (
	"context"
	"time"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AccommodationRepository struct {
	coll *mongo.Collection
}

func NewAccommodationRepository(db *mongo.Database) *AccommodationRepository {
	return &AccommodationRepository{coll: db.Collection(database.AccommodationsCollection)}
}

func (r *AccommodationRepository) Create(ctx context.Context, accommodation *models.Accommodation) error {
	accommodation.ID = primitive.NewObjectID()
	accommodation.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, accommodation)
	return translate(err)
}

func (r *AccommodationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Accommodation, error) {
	var accommodation models.Accommodation
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&accommodation); err != nil {
		return nil, translate(err)
	}
	return &accommodation, nil
}

func (r *AccommodationRepository) GetAll(ctx context.Context) ([]models.Accommodation, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accommodations := []models.Accommodation{}
	if err := cursor.All(ctx, &accommodations); err != nil {
		return nil, err
	}
	return accommodations, nil
}

func (r *AccommodationRepository) Update(ctx context.Context, accommodation *models.Accommodation) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": accommodation.ID}, accommodation)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
