package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Destination struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Location    string             `json:"location" bson:"location"`
	Price       float64            `json:"price" bson:"price"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	Popular     bool               `json:"popular" bson:"popular"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type ListDestinationsQuery struct {
	SortOrder string `query:"sortOrder" validate:"omitempty,sortorder"`
}
