package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Accommodation struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Location    string             `json:"location" bson:"location"`
	PricePerBed float64            `json:"pricePerBed" bson:"pricePerBed"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

type CreateAccommodationRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" validate:"required"`
	PricePerBed float64 `json:"pricePerBed" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}

type UpdateAccommodationRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Location    *string  `json:"location" validate:"omitempty,min=1"`
	PricePerBed *float64 `json:"pricePerBed" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,url"`
}
