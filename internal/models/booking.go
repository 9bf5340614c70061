package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking.TotalPrice is computed once from the accommodation price at creation
// and never recomputed.
type Booking struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	AccommodationID primitive.ObjectID `json:"accommodationId" bson:"accommodationId"`
	NumberOfMembers int                `json:"numberOfMembers" bson:"numberOfMembers"`
	TotalPrice      float64            `json:"totalPrice" bson:"totalPrice"`
	CheckInDate     time.Time          `json:"checkInDate" bson:"checkInDate"`
	CheckOutDate    time.Time          `json:"checkOutDate" bson:"checkOutDate"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

type BookingWithAccommodation struct {
	Booking       `bson:",inline"`
	Accommodation *Accommodation `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
}

type CreateBookingRequest struct {
	UserID          string `json:"userId"`
	AccommodationID string `json:"accommodationId" validate:"required"`
	NumberOfMembers int    `json:"numberOfMembers" validate:"required,min=1"`
	CheckInDate     string `json:"checkInDate" validate:"required"`
	CheckOutDate    string `json:"checkOutDate" validate:"required"`
}
