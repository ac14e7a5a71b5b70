package views

import (
	"context"
	"math/rand"
	"time"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The pipeline reads normalized records through narrow source interfaces,
// satisfied by the repositories in production and by in-memory fakes in
// tests. Viewer identity is always an explicit parameter; the stages never
// read it from ambient state.

type UserSource interface {
	GetUserByID(id uint) (*models.User, error)
	GetUsersByIDs(ids []uint) (map[uint]models.User, error)
}

type VideoSource interface {
	GetVideos(ctx context.Context) ([]models.Video, error)
	GetVideoByID(ctx context.Context, id string) (*models.Video, error)
	GetVideosByOwner(ctx context.Context, ownerID uint) ([]models.Video, error)
	GetVideosByOwners(ctx context.Context, ownerIDs []uint) ([]models.Video, error)
	GetVideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error)
}

type CommentSource interface {
	GetCommentByID(ctx context.Context, id string) (*models.Comment, error)
	GetCommentsByVideo(ctx context.Context, videoID primitive.ObjectID) ([]models.Comment, error)
	GetCommentsByVideos(ctx context.Context, videoIDs []primitive.ObjectID) ([]models.Comment, error)
	GetCommentsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Comment, error)
}

type TweetSource interface {
	GetTweetByID(ctx context.Context, id string) (*models.Tweet, error)
	GetTweets(ctx context.Context) ([]models.Tweet, error)
	GetTweetsByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error)
	GetTweetsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tweet, error)
}

type LikeSource interface {
	Toggle(userID uint, target models.LikeTarget) (bool, error)
	GetLikesByTargets(kind models.LikeTargetKind, targetIDs []string) ([]models.Like, error)
	GetLikesByUser(userID uint, kind models.LikeTargetKind) ([]models.Like, error)
	CountByUser(userID uint) (map[models.LikeTargetKind]int64, error)
}

type SubscriptionSource interface {
	Toggle(subscriberID, channelID uint) (bool, error)
	IsSubscribed(subscriberID, channelID uint) (bool, error)
	GetByChannel(channelID uint) ([]models.Subscription, error)
	GetByChannels(channelIDs []uint) ([]models.Subscription, error)
	GetBySubscriber(subscriberID uint) ([]models.Subscription, error)
}

type PlaylistSource interface {
	GetPlaylistByID(ctx context.Context, id string) (*models.Playlist, error)
	GetPlaylists(ctx context.Context) ([]models.Playlist, error)
	GetPlaylistsByOwner(ctx context.Context, ownerID uint) ([]models.Playlist, error)
}

// Sources bundles every collection the pipelines can join against.
type Sources struct {
	Users         UserSource
	Videos        VideoSource
	Comments      CommentSource
	Tweets        TweetSource
	Likes         LikeSource
	Subscriptions SubscriptionSource
	Playlists     PlaylistSource
}

// Service is the view-composition engine: it joins normalized records into
// viewer-relative read models, computes derived scores, filters, sorts and
// paginates. It holds no per-request state; every call recomputes from the
// sources.
type Service struct {
	src   Sources
	noise func() float64   // uniform [0,1), feeds recommendationScore
	now   func() time.Time // injectable clock for window filters
}

// Option customizes a Service, mainly for tests.
type Option func(*Service)

// WithNoise replaces the recommendation noise source.
func WithNoise(f func() float64) Option {
	return func(s *Service) { s.noise = f }
}

// WithClock replaces the time source used by date-window filters.
func WithClock(f func() time.Time) Option {
	return func(s *Service) { s.now = f }
}

// NewService creates the engine over the given sources.
func NewService(src Sources, opts ...Option) *Service {
	s := &Service{
		src:   src,
		noise: rand.Float64,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ownerProfile projects a joined user record; nil when the join found
// nothing, so a dangling owner reference degrades instead of failing.
func ownerProfile(users map[uint]models.User, id uint) *OwnerProfile {
	u, ok := users[id]
	if !ok {
		return nil
	}
	return &OwnerProfile{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}
