package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is a published media document stored in MongoDB. The owner is the
// numeric ID of the user who uploaded it.
type Video struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID      uint               `json:"owner_id" bson:"owner_id"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	MediaURL     string             `json:"media_url" bson:"media_url"`
	ThumbnailURL string             `json:"thumbnail_url" bson:"thumbnail_url"`
	Duration     float64            `json:"duration" bson:"duration"` // seconds
	Views        int64              `json:"views" bson:"views"`
	IsPublished  bool               `json:"is_published" bson:"is_published"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// PublishVideoRequest defines the request body for publishing a new video.
// Media and thumbnail URLs come back from the upload service.
type PublishVideoRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=100"`
	Description  string  `json:"description" validate:"required,min=1,max=5000"`
	MediaURL     string  `json:"media_url" validate:"required,url"`
	ThumbnailURL string  `json:"thumbnail_url" validate:"required,url"`
	Duration     float64 `json:"duration" validate:"omitempty,min=0"`
}

type UpdateVideoRequest struct {
	Title        string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description  string `json:"description,omitempty" validate:"omitempty,min=1,max=5000"`
	ThumbnailURL string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
}
