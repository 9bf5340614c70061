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

type TravelPlanRepository struct {
	coll *mongo.Collection
}

func NewTravelPlanRepository(db *mongo.Database) *TravelPlanRepository {
	return &TravelPlanRepository{coll: db.Collection(database.TravelPlansCollection)}
}

func (r *TravelPlanRepository) Create(ctx context.Context, plan *models.TravelPlan) error {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, plan)
	return translate(err)
}

func (r *TravelPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TravelPlan, error) {
	var plan models.TravelPlan
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

func (r *TravelPlanRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.TravelPlanWithDestination, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "userId", Value: userID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "startDate", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.DestinationsCollection},
			{Key: "localField", Value: "destinationId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "destination"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$destination"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []models.TravelPlanWithDestination{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Update applies the non-nil fields of patch and returns the updated plan.
func (r *TravelPlanRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.TravelPlanPatch) (*models.TravelPlan, error) {
	set := bson.M{}
	if patch.Schedule != nil {
		set["schedule"] = *patch.Schedule
	}
	if patch.Activities != nil {
		set["activities"] = *patch.Activities
	}
	if patch.ToDoList != nil {
		set["toDoList"] = *patch.ToDoList
	}
	if patch.Budget != nil {
		set["budget"] = *patch.Budget
	}
	if patch.StartDate != nil {
		set["startDate"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		set["endDate"] = *patch.EndDate
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var plan models.TravelPlan
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&plan)
	if err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

func (r *TravelPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
