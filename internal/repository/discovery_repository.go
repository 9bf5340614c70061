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

type DiscoveryRepository struct {
	coll *mongo.Collection
}

func NewDiscoveryRepository(db *mongo.Database) *DiscoveryRepository {
	return &DiscoveryRepository{coll: db.Collection(database.DiscoveriesCollection)}
}

func (r *DiscoveryRepository) Create(ctx context.Context, discovery *models.Discovery) error {
	discovery.ID = primitive.NewObjectID()
	discovery.CreatedAt = time.Now()
	// $addToSet and $push fail on a null field.
	if discovery.Images == nil {
		discovery.Images = []models.Image{}
	}
	if discovery.Likes == nil {
		discovery.Likes = []primitive.ObjectID{}
	}
	if discovery.Comments == nil {
		discovery.Comments = []models.Comment{}
	}

	_, err := r.coll.InsertOne(ctx, discovery)
	return translate(err)
}

func (r *DiscoveryRepository) GetAll(ctx context.Context) ([]models.Discovery, error) {
	return r.find(ctx, bson.M{})
}

func (r *DiscoveryRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Discovery, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *DiscoveryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Discovery, error) {
	var discovery models.Discovery
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&discovery); err != nil {
		return nil, translate(err)
	}
	return &discovery, nil
}

func (r *DiscoveryRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.DiscoveryPatch) (*models.Discovery, error) {
	set := bson.M{}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Images != nil {
		set["images"] = *patch.Images
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var discovery models.Discovery
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&discovery)
	if err != nil {
		return nil, translate(err)
	}
	return &discovery, nil
}

func (r *DiscoveryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddLike adds userID to the likes set only if it is absent, in a single
// conditional update. It reports false when nothing matched, which means the
// discovery is missing or already liked by the user.
func (r *DiscoveryRepository) AddLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "likes": bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// RemoveLike is the inverse of AddLike; false means missing or not liked.
func (r *DiscoveryRepository) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *DiscoveryRepository) AddComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DiscoveryRepository) UpdateComment(ctx context.Context, id, commentID primitive.ObjectID, text string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "comments._id": commentID},
		bson.M{"$set": bson.M{"comments.$.text": text}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DiscoveryRepository) DeleteComment(ctx context.Context, id, commentID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DiscoveryRepository) find(ctx context.Context, filter bson.M) ([]models.Discovery, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	discoveries := []models.Discovery{}
	if err := cursor.All(ctx, &discoveries); err != nil {
		return nil, err
	}
	return discoveries, nil
}
