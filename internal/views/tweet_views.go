package views

import (
	"context"
	"fmt"
	"time"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var tweetSortFields = map[string]fieldCmp[TweetView]{
	"createdAt":  {cmp: func(a, b TweetView) int { return a.CreatedAt.Compare(b.CreatedAt) }},
	"likesCount": {cmp: func(a, b TweetView) int { return compareInt(a.LikesCount, b.LikesCount) }, score: true},
}

// ListTweets is the global tweet timeline with optional text search.
func (s *Service) ListTweets(ctx context.Context, viewer uint, f Filters, srt Sort, page, limit int) (Page[TweetView], error) {
	tweets, err := s.src.Tweets.GetTweets(ctx)
	if err != nil {
		return Page[TweetView]{}, err
	}
	items, err := s.tweetViews(viewer, filterTweets(tweets, f, s.now()))
	if err != nil {
		return Page[TweetView]{}, err
	}

	if srt.Key == "" {
		srt.Key = "createdAt"
	}
	if err := applySort(items, srt, tweetSortFields, func(t TweetView) time.Time { return t.CreatedAt }); err != nil {
		return Page[TweetView]{}, err
	}
	return Paginate(items, page, limit)
}

// UserTweets lists one author's tweets, newest first.
func (s *Service) UserTweets(ctx context.Context, viewer, ownerID uint, page, limit int) (Page[TweetView], error) {
	if _, err := s.src.Users.GetUserByID(ownerID); err != nil {
		return Page[TweetView]{}, fmt.Errorf("%w: user", ErrNotFound)
	}
	tweets, err := s.src.Tweets.GetTweetsByOwner(ctx, ownerID)
	if err != nil {
		return Page[TweetView]{}, err
	}
	items, err := s.tweetViews(viewer, tweets)
	if err != nil {
		return Page[TweetView]{}, err
	}
	return Paginate(items, page, limit)
}

// TweetByID resolves a single tweet with its like join.
func (s *Service) TweetByID(ctx context.Context, viewer uint, id string) (*TweetView, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: invalid tweet ID", ErrInvalidInput)
	}
	tweet, err := s.src.Tweets.GetTweetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: tweet", ErrNotFound)
	}
	items, err := s.tweetViews(viewer, []models.Tweet{*tweet})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// TweetStatsByID reports a tweet's raw like count.
func (s *Service) TweetStatsByID(ctx context.Context, id string) (*TweetStats, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: invalid tweet ID", ErrInvalidInput)
	}
	tweet, err := s.src.Tweets.GetTweetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: tweet", ErrNotFound)
	}
	likes, err := s.src.Likes.GetLikesByTargets(models.LikeTargetTweet, []string{tweet.ID.Hex()})
	if err != nil {
		return nil, err
	}
	return &TweetStats{
		ID:         tweet.ID.Hex(),
		Content:    tweet.Content,
		TotalLikes: len(likes),
		CreatedAt:  tweet.CreatedAt,
	}, nil
}

// tweetViews joins author profiles and like aggregates onto raw tweets,
// preserving input order.
func (s *Service) tweetViews(viewer uint, tweets []models.Tweet) ([]TweetView, error) {
	ids := make([]string, len(tweets))
	owners := make([]uint, len(tweets))
	for i, t := range tweets {
		ids[i] = t.ID.Hex()
		owners[i] = t.OwnerID
	}

	likes, err := s.src.Likes.GetLikesByTargets(models.LikeTargetTweet, ids)
	if err != nil {
		return nil, err
	}
	users, err := s.src.Users.GetUsersByIDs(dedup(owners))
	if err != nil {
		return nil, err
	}

	idx := buildLikeIndex(likes, viewer)
	items := make([]TweetView, len(tweets))
	for i, t := range tweets {
		hexID := ids[i]
		items[i] = TweetView{
			ID:         hexID,
			Content:    t.Content,
			Owner:      ownerProfile(users, t.OwnerID),
			LikesCount: idx.counts[hexID],
			IsLiked:    idx.byViewer[hexID],
			CreatedAt:  t.CreatedAt,
			UpdatedAt:  t.UpdatedAt,
		}
	}
	return items, nil
}
