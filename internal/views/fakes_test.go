package views

import (
	"context"
	"errors"
	"time"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// In-memory sources backing the pipeline tests.

var errFakeNotFound = errors.New("not found")

type fakeUsers struct {
	users map[uint]models.User
}

func (f *fakeUsers) GetUserByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return &u, nil
}

func (f *fakeUsers) GetUsersByIDs(ids []uint) (map[uint]models.User, error) {
	out := make(map[uint]models.User)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeVideos struct {
	videos []models.Video
}

func (f *fakeVideos) GetVideos(ctx context.Context) ([]models.Video, error) {
	return append([]models.Video(nil), f.videos...), nil
}

func (f *fakeVideos) GetVideoByID(ctx context.Context, id string) (*models.Video, error) {
	for _, v := range f.videos {
		if v.ID.Hex() == id {
			video := v
			return &video, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeVideos) GetVideosByOwner(ctx context.Context, ownerID uint) ([]models.Video, error) {
	var out []models.Video
	for _, v := range f.videos {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVideos) GetVideosByOwners(ctx context.Context, ownerIDs []uint) ([]models.Video, error) {
	owners := make(map[uint]bool, len(ownerIDs))
	for _, id := range ownerIDs {
		owners[id] = true
	}
	var out []models.Video
	for _, v := range f.videos {
		if owners[v.OwnerID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVideos) GetVideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error) {
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.Video
	for _, v := range f.videos {
		if wanted[v.ID] {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeComments struct {
	comments []models.Comment
}

func (f *fakeComments) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	for _, c := range f.comments {
		if c.ID.Hex() == id {
			comment := c
			return &comment, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeComments) GetCommentsByVideo(ctx context.Context, videoID primitive.ObjectID) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.VideoID == videoID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComments) GetCommentsByVideos(ctx context.Context, videoIDs []primitive.ObjectID) ([]models.Comment, error) {
	wanted := make(map[primitive.ObjectID]bool, len(videoIDs))
	for _, id := range videoIDs {
		wanted[id] = true
	}
	var out []models.Comment
	for _, c := range f.comments {
		if wanted[c.VideoID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComments) GetCommentsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Comment, error) {
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.Comment
	for _, c := range f.comments {
		if wanted[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeTweets struct {
	tweets []models.Tweet
}

func (f *fakeTweets) GetTweetByID(ctx context.Context, id string) (*models.Tweet, error) {
	for _, t := range f.tweets {
		if t.ID.Hex() == id {
			tweet := t
			return &tweet, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeTweets) GetTweets(ctx context.Context) ([]models.Tweet, error) {
	return append([]models.Tweet(nil), f.tweets...), nil
}

func (f *fakeTweets) GetTweetsByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error) {
	var out []models.Tweet
	for _, t := range f.tweets {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTweets) GetTweetsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tweet, error) {
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.Tweet
	for _, t := range f.tweets {
		if wanted[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeLikes struct {
	likes []models.Like
}

func (f *fakeLikes) Toggle(userID uint, target models.LikeTarget) (bool, error) {
	for i, l := range f.likes {
		if l.UserID == userID && l.TargetKind == target.Kind && l.TargetID == target.ID {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			return false, nil
		}
	}
	f.likes = append(f.likes, models.Like{
		Model:      gorm.Model{CreatedAt: time.Now()},
		UserID:     userID,
		TargetKind: target.Kind,
		TargetID:   target.ID,
	})
	return true, nil
}

func (f *fakeLikes) GetLikesByTargets(kind models.LikeTargetKind, targetIDs []string) ([]models.Like, error) {
	wanted := make(map[string]bool, len(targetIDs))
	for _, id := range targetIDs {
		wanted[id] = true
	}
	var out []models.Like
	for _, l := range f.likes {
		if l.TargetKind == kind && wanted[l.TargetID] {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLikes) GetLikesByUser(userID uint, kind models.LikeTargetKind) ([]models.Like, error) {
	var out []models.Like
	for _, l := range f.likes {
		if l.UserID == userID && l.TargetKind == kind {
			out = append(out, l)
		}
	}
	// Recency order, newest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (f *fakeLikes) CountByUser(userID uint) (map[models.LikeTargetKind]int64, error) {
	out := make(map[models.LikeTargetKind]int64)
	for _, l := range f.likes {
		if l.UserID == userID {
			out[l.TargetKind]++
		}
	}
	return out, nil
}

type fakeSubscriptions struct {
	subs []models.Subscription
}

func (f *fakeSubscriptions) Toggle(subscriberID, channelID uint) (bool, error) {
	for i, s := range f.subs {
		if s.SubscriberID == subscriberID && s.ChannelID == channelID {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return false, nil
		}
	}
	f.subs = append(f.subs, models.Subscription{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    time.Now(),
	})
	return true, nil
}

func (f *fakeSubscriptions) IsSubscribed(subscriberID, channelID uint) (bool, error) {
	for _, s := range f.subs {
		if s.SubscriberID == subscriberID && s.ChannelID == channelID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubscriptions) GetByChannel(channelID uint) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range f.subs {
		if s.ChannelID == channelID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubscriptions) GetByChannels(channelIDs []uint) ([]models.Subscription, error) {
	wanted := make(map[uint]bool, len(channelIDs))
	for _, id := range channelIDs {
		wanted[id] = true
	}
	var out []models.Subscription
	for _, s := range f.subs {
		if wanted[s.ChannelID] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubscriptions) GetBySubscriber(subscriberID uint) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range f.subs {
		if s.SubscriberID == subscriberID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakePlaylists struct {
	playlists []models.Playlist
}

func (f *fakePlaylists) GetPlaylistByID(ctx context.Context, id string) (*models.Playlist, error) {
	for _, p := range f.playlists {
		if p.ID.Hex() == id {
			playlist := p
			return &playlist, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakePlaylists) GetPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return append([]models.Playlist(nil), f.playlists...), nil
}

func (f *fakePlaylists) GetPlaylistsByOwner(ctx context.Context, ownerID uint) ([]models.Playlist, error) {
	var out []models.Playlist
	for _, p := range f.playlists {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fixture struct {
	users         *fakeUsers
	videos        *fakeVideos
	comments      *fakeComments
	tweets        *fakeTweets
	likes         *fakeLikes
	subscriptions *fakeSubscriptions
	playlists     *fakePlaylists
}

func newFixture() *fixture {
	return &fixture{
		users:         &fakeUsers{users: make(map[uint]models.User)},
		videos:        &fakeVideos{},
		comments:      &fakeComments{},
		tweets:        &fakeTweets{},
		likes:         &fakeLikes{},
		subscriptions: &fakeSubscriptions{},
		playlists:     &fakePlaylists{},
	}
}

func (f *fixture) sources() Sources {
	return Sources{
		Users:         f.users,
		Videos:        f.videos,
		Comments:      f.comments,
		Tweets:        f.tweets,
		Likes:         f.likes,
		Subscriptions: f.subscriptions,
		Playlists:     f.playlists,
	}
}

func (f *fixture) service(opts ...Option) *Service {
	return NewService(f.sources(), opts...)
}

func (f *fixture) addUser(id uint, username string) {
	f.users.users[id] = models.User{ID: id, Username: username, DisplayName: username}
}

func (f *fixture) addVideo(owner uint, title string, published bool, createdAt time.Time) models.Video {
	v := models.Video{
		ID:          primitive.NewObjectID(),
		OwnerID:     owner,
		Title:       title,
		IsPublished: published,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	f.videos.videos = append(f.videos.videos, v)
	return v
}

func (f *fixture) addLike(user uint, kind models.LikeTargetKind, targetID string, at time.Time) {
	f.likes.likes = append(f.likes.likes, models.Like{
		Model:      gorm.Model{CreatedAt: at},
		UserID:     user,
		TargetKind: kind,
		TargetID:   targetID,
	})
}
