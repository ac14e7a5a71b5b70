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

// PlaylistRepository defines the interface for playlist data operations
type PlaylistRepository interface {
	CreatePlaylist(ctx context.Context, playlist *models.Playlist) error
	GetPlaylistByID(ctx context.Context, id string) (*models.Playlist, error)
	GetPlaylists(ctx context.Context) ([]models.Playlist, error)
	GetPlaylistsByOwner(ctx context.Context, ownerID uint) ([]models.Playlist, error)
	UpdatePlaylist(ctx context.Context, id string, fields map[string]interface{}) error
	AddVideo(ctx context.Context, id string, videoID primitive.ObjectID) error
	RemoveVideo(ctx context.Context, id string, videoID primitive.ObjectID) error
	DeletePlaylist(ctx context.Context, id string) error
}

// MongoPlaylistRepository implements PlaylistRepository for MongoDB
type MongoPlaylistRepository struct {
	collection *mongo.Collection
}

// NewMongoPlaylistRepository creates a new MongoPlaylistRepository
func NewMongoPlaylistRepository(db *mongo.Database) *MongoPlaylistRepository {
	return &MongoPlaylistRepository{collection: db.Collection("playlists")}
}

// CreatePlaylist creates a new, empty playlist
func (r *MongoPlaylistRepository) CreatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	playlist.ID = primitive.NewObjectID()
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []primitive.ObjectID{}
	}
	playlist.CreatedAt = time.Now()
	playlist.UpdatedAt = playlist.CreatedAt
	_, err := r.collection.InsertOne(ctx, playlist)
	return err
}

// GetPlaylistByID retrieves a playlist by its hex ID
func (r *MongoPlaylistRepository) GetPlaylistByID(ctx context.Context, id string) (*models.Playlist, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid playlist ID format: %w", err)
	}

	var playlist models.Playlist
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&playlist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("playlist not found")
		}
		return nil, err
	}
	return &playlist, nil
}

// GetPlaylists retrieves every playlist document
func (r *MongoPlaylistRepository) GetPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return r.findPlaylists(ctx, bson.M{})
}

// GetPlaylistsByOwner retrieves all playlists owned by a user
func (r *MongoPlaylistRepository) GetPlaylistsByOwner(ctx context.Context, ownerID uint) ([]models.Playlist, error) {
	return r.findPlaylists(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoPlaylistRepository) findPlaylists(ctx context.Context, filter bson.M) ([]models.Playlist, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var playlists []models.Playlist
	if err = cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// UpdatePlaylist applies the given field updates to a playlist
func (r *MongoPlaylistRepository) UpdatePlaylist(ctx context.Context, id string, fields map[string]interface{}) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid playlist ID format: %w", err)
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
		return fmt.Errorf("playlist not found")
	}
	return nil
}

// AddVideo appends a video reference. $addToSet keeps the member list
// deduplicated even under concurrent adds; callers surface the duplicate
// case before getting here.
func (r *MongoPlaylistRepository) AddVideo(ctx context.Context, id string, videoID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid playlist ID format: %w", err)
	}

	update := bson.M{
		"$addToSet": bson.M{"video_ids": videoID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("playlist not found")
	}
	return nil
}

// RemoveVideo removes a video reference from the playlist
func (r *MongoPlaylistRepository) RemoveVideo(ctx context.Context, id string, videoID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid playlist ID format: %w", err)
	}

	update := bson.M{
		"$pull": bson.M{"video_ids": videoID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("playlist not found")
	}
	return nil
}

// DeletePlaylist deletes a playlist by ID
func (r *MongoPlaylistRepository) DeletePlaylist(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid playlist ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("playlist not found")
	}
	return nil
}
