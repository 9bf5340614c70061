package repository

import (
	"context"
	"time"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(database.BookingsCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	return translate(err)
}

func (r *BookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

// GetByUserID returns the user's bookings with the accommodation joined in.
// Bookings whose accommodation no longer exists are kept with a nil accommodation.
func (r *BookingRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.BookingWithAccommodation, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "userId", Value: userID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "checkInDate", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.AccommodationsCollection},
			{Key: "localField", Value: "accommodationId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "accommodation"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$accommodation"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.BookingWithAccommodation{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Delete hard-deletes the booking.
func (r *BookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
