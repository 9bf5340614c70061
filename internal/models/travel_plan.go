package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TravelPlan struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	DestinationID primitive.ObjectID `json:"destinationId" bson:"destinationId"`
	Schedule      string             `json:"schedule" bson:"schedule"`
	Activities    string             `json:"activities" bson:"activities"`
	ToDoList      string             `json:"toDoList" bson:"toDoList"`
	Budget        float64            `json:"budget" bson:"budget"`
	StartDate     time.Time          `json:"startDate" bson:"startDate"`
	EndDate       time.Time          `json:"endDate" bson:"endDate"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type TravelPlanWithDestination struct {
	TravelPlan  `bson:",inline"`
	Destination *Destination `json:"destination,omitempty" bson:"destination,omitempty"`
}

type CreateTravelPlanRequest struct {
	DestinationID string   `json:"destinationId" validate:"required"`
	Schedule      string   `json:"schedule" validate:"required"`
	Activities    string   `json:"activities" validate:"required"`
	ToDoList      string   `json:"toDoList" validate:"required"`
	Budget        *float64 `json:"budget" validate:"required,gte=0"`
	StartDate     string   `json:"startDate" validate:"required"`
	EndDate       string   `json:"endDate" validate:"required"`
}

// UpdateTravelPlanRequest replaces only the fields that are present.
type UpdateTravelPlanRequest struct {
	Schedule   *string  `json:"schedule"`
	Activities *string  `json:"activities"`
	ToDoList   *string  `json:"toDoList"`
	Budget     *float64 `json:"budget" validate:"omitempty,gte=0"`
	StartDate  *string  `json:"startDate"`
	EndDate    *string  `json:"endDate"`
}

// TravelPlanPatch is the parsed form of UpdateTravelPlanRequest handed to the store.
type TravelPlanPatch struct {
	Schedule   *string
	Activities *string
	ToDoList   *string
	Budget     *float64
	StartDate  *time.Time
	EndDate    *time.Time
}
