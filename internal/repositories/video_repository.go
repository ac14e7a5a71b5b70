package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoRepository defines the interface for video data operations
type VideoRepository interface {
	CreateVideo(ctx context.Context, video *models.Video) error
	GetVideoByID(ctx context.Context, id string) (*models.Video, error)
	GetVideos(ctx context.Context) ([]models.Video, error)
	GetVideosByOwner(ctx context.Context, ownerID uint) ([]models.Video, error)
	GetVideosByOwners(ctx context.Context, ownerIDs []uint) ([]models.Video, error)
	GetVideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error)
	UpdateVideo(ctx context.Context, id string, fields map[string]interface{}) error
	SetPublished(ctx context.Context, id string, published bool) error
	DeleteVideo(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

// MongoVideoRepository implements VideoRepository for MongoDB
type MongoVideoRepository struct {
	collection *mongo.Collection
}

// NewMongoVideoRepository creates a new MongoVideoRepository
func NewMongoVideoRepository(db *mongo.Database) *MongoVideoRepository {
	return &MongoVideoRepository{collection: db.Collection("videos")}
}

// CreateVideo creates a new video document
func (r *MongoVideoRepository) CreateVideo(ctx context.Context, video *models.Video) error {
	video.ID = primitive.NewObjectID()
	video.CreatedAt = time.Now()
	video.UpdatedAt = video.CreatedAt
	_, err := r.collection.InsertOne(ctx, video)
	return err
}

// GetVideoByID retrieves a video by its hex ID
func (r *MongoVideoRepository) GetVideoByID(ctx context.Context, id string) (*models.Video, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid video ID format: %w", err)
	}

	var video models.Video
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&video)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("video not found")
		}
		return nil, err
	}
	return &video, nil
}

// GetVideos retrieves every video document. The view pipelines filter,
// join and paginate in memory, so this returns the raw collection.
func (r *MongoVideoRepository) GetVideos(ctx context.Context) ([]models.Video, error) {
	return r.findVideos(ctx, bson.M{})
}

// GetVideosByOwner retrieves all videos owned by a single user
func (r *MongoVideoRepository) GetVideosByOwner(ctx context.Context, ownerID uint) ([]models.Video, error) {
	return r.findVideos(ctx, bson.M{"owner_id": ownerID})
}

// GetVideosByOwners retrieves all videos owned by any of the given users
func (r *MongoVideoRepository) GetVideosByOwners(ctx context.Context, ownerIDs []uint) ([]models.Video, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	return r.findVideos(ctx, bson.M{"owner_id": bson.M{"$in": ownerIDs}})
}

// GetVideosByIDs retrieves videos for the given object IDs
func (r *MongoVideoRepository) GetVideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findVideos(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoVideoRepository) findVideos(ctx context.Context, filter bson.M) ([]models.Video, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var videos []models.Video
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// UpdateVideo applies the given field updates to a video document
func (r *MongoVideoRepository) UpdateVideo(ctx context.Context, id string, fields map[string]interface{}) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid video ID format: %w", err)
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("video not found")
	}
	return nil
}

// SetPublished flips the publication status of a video
func (r *MongoVideoRepository) SetPublished(ctx context.Context, id string, published bool) error {
	return r.UpdateVideo(ctx, id, map[string]interface{}{"is_published": published})
}

// DeleteVideo deletes a video by ID
func (r *MongoVideoRepository) DeleteVideo(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid video ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("video not found")
	}
	return nil
}

// IncrementViews bumps the view counter. Best effort: callers fire this in
// a goroutine and lost updates under concurrent reads are acceptable.
func (r *MongoVideoRepository) IncrementViews(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid video ID format: %w", err)
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}
