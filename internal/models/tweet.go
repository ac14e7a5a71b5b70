package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet is a short text post, capped at 280 characters.
type Tweet struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID   uint               `json:"owner_id" bson:"owner_id"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateTweetRequest struct {
	Content string `json:"content" validate:"required,min=1,max=280"`
}

type UpdateTweetRequest struct {
	Content string `json:"content" validate:"required,min=1,max=280"`
}
