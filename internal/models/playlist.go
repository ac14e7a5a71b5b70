package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist is an ordered, deduplicated list of video references.
type Playlist struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID     uint                 `json:"owner_id" bson:"owner_id"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	VideoIDs    []primitive.ObjectID `json:"video_ids" bson:"video_ids"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" bson:"updated_at"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1,max=1000"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,min=1,max=1000"`
}
