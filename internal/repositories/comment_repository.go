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

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id string) (*models.Comment, error)
	GetCommentsByVideo(ctx context.Context, videoID primitive.ObjectID) ([]models.Comment, error)
	GetCommentsByVideos(ctx context.Context, videoIDs []primitive.ObjectID) ([]models.Comment, error)
	GetCommentsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Comment, error)
	UpdateComment(ctx context.Context, id string, content string) error
	DeleteComment(ctx context.Context, id string) error
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

// CreateComment creates a new comment document
func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetCommentByID retrieves a comment by its hex ID
func (r *MongoCommentRepository) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid comment ID format: %w", err)
	}

	var comment models.Comment
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("comment not found")
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByVideo retrieves all comments on a video, newest first
func (r *MongoCommentRepository) GetCommentsByVideo(ctx context.Context, videoID primitive.ObjectID) ([]models.Comment, error) {
	return r.findComments(ctx, bson.M{"video_id": videoID})
}

// GetCommentsByVideos retrieves all comments on any of the given videos
func (r *MongoCommentRepository) GetCommentsByVideos(ctx context.Context, videoIDs []primitive.ObjectID) ([]models.Comment, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	return r.findComments(ctx, bson.M{"video_id": bson.M{"$in": videoIDs}})
}

// GetCommentsByIDs retrieves comments for the given object IDs
func (r *MongoCommentRepository) GetCommentsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findComments(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoCommentRepository) findComments(ctx context.Context, filter bson.M) ([]models.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateComment replaces the content of an existing comment
func (r *MongoCommentRepository) UpdateComment(ctx context.Context, id string, content string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid comment ID format: %w", err)
	}

	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}

// DeleteComment deletes a comment by ID
func (r *MongoCommentRepository) DeleteComment(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid comment ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}
