package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Image struct {
	URL string `json:"url" bson:"url"`
}

type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Text      string             `json:"text" bson:"text"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Likes holds each liking user at most once.
type Discovery struct {
	ID          primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID   `json:"userId" bson:"userId"`
	Location    string               `json:"location" bson:"location"`
	Description string               `json:"description" bson:"description"`
	Images      []Image              `json:"images" bson:"images"`
	Likes       []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments    []Comment            `json:"comments" bson:"comments"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
}

func (d *Discovery) Comment(id primitive.ObjectID) *Comment {
	for i := range d.Comments {
		if d.Comments[i].ID == id {
			return &d.Comments[i]
		}
	}
	return nil
}

type CommentView struct {
	ID        primitive.ObjectID `json:"_id"`
	Text      string             `json:"text"`
	User      *UserSummary       `json:"userId"`
	CreatedAt time.Time          `json:"createdAt"`
}

type DiscoveryView struct {
	ID          primitive.ObjectID   `json:"_id"`
	User        *UserSummary         `json:"userId"`
	Location    string               `json:"location"`
	Description string               `json:"description"`
	Images      []Image              `json:"images"`
	Likes       []primitive.ObjectID `json:"likes"`
	Comments    []CommentView        `json:"comments"`
	CreatedAt   time.Time            `json:"createdAt"`
}

type CreateDiscoveryRequest struct {
	Location    string   `json:"location" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images" validate:"max=3,dive,url"`
}

type UpdateDiscoveryRequest struct {
	Location    *string   `json:"location" validate:"omitempty,min=1"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	Images      *[]string `json:"images" validate:"omitempty,max=3,dive,url"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type LikeResponse struct {
	IsLiked bool `json:"isLiked"`
}

type DiscoveryPatch struct {
	Location    *string
	Description *string
	Images      *[]Image
}
