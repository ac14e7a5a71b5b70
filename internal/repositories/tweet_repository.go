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

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet *models.Tweet) error
	GetTweetByID(ctx context.Context, id string) (*models.Tweet, error)
	GetTweets(ctx context.Context) ([]models.Tweet, error)
	GetTweetsByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error)
	GetTweetsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tweet, error)
	UpdateTweet(ctx context.Context, id string, content string) error
	DeleteTweet(ctx context.Context, id string) error
}

// MongoTweetRepository implements TweetRepository for MongoDB
type MongoTweetRepository struct {
	collection *mongo.Collection
}

// NewMongoTweetRepository creates a new MongoTweetRepository
func NewMongoTweetRepository(db *mongo.Database) *MongoTweetRepository {
	return &MongoTweetRepository{collection: db.Collection("tweets")}
}

// CreateTweet creates a new tweet document
func (r *MongoTweetRepository) CreateTweet(ctx context.Context, tweet *models.Tweet) error {
	tweet.ID = primitive.NewObjectID()
	tweet.CreatedAt = time.Now()
	tweet.UpdatedAt = tweet.CreatedAt
	_, err := r.collection.InsertOne(ctx, tweet)
	return err
}

// GetTweetByID retrieves a tweet by its hex ID
func (r *MongoTweetRepository) GetTweetByID(ctx context.Context, id string) (*models.Tweet, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tweet ID format: %w", err)
	}

	var tweet models.Tweet
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&tweet)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("tweet not found")
		}
		return nil, err
	}
	return &tweet, nil
}

// GetTweets retrieves every tweet document
func (r *MongoTweetRepository) GetTweets(ctx context.Context) ([]models.Tweet, error) {
	return r.findTweets(ctx, bson.M{})
}

// GetTweetsByOwner retrieves all tweets by a user
func (r *MongoTweetRepository) GetTweetsByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error) {
	return r.findTweets(ctx, bson.M{"owner_id": ownerID})
}

// GetTweetsByIDs retrieves tweets for the given object IDs
func (r *MongoTweetRepository) GetTweetsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tweet, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findTweets(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoTweetRepository) findTweets(ctx context.Context, filter bson.M) ([]models.Tweet, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tweets []models.Tweet
	if err = cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// UpdateTweet replaces the content of an existing tweet
func (r *MongoTweetRepository) UpdateTweet(ctx context.Context, id string, content string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid tweet ID format: %w", err)
	}

	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("tweet not found")
	}
	return nil
}

// DeleteTweet deletes a tweet by ID
func (r *MongoTweetRepository) DeleteTweet(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid tweet ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("tweet not found")
	}
	return nil
}
