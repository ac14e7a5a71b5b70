package views

import (
	"context"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Liked-content listings walk the viewer's like rows in recency order and
// join the targets back in. A like whose target has since been deleted is
// dropped silently; the dangling row does not surface as a hole or error.
// Videos that went back to draft after the like disappear the same way.

func (s *Service) LikedVideos(ctx context.Context, viewer uint, page, limit int) (Page[LikedVideo], error) {
	likes, err := s.src.Likes.GetLikesByUser(viewer, models.LikeTargetVideo)
	if err != nil {
		return Page[LikedVideo]{}, err
	}

	videos, err := s.src.Videos.GetVideosByIDs(ctx, targetObjectIDs(likes))
	if err != nil {
		return Page[LikedVideo]{}, err
	}
	published := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.IsPublished {
			published = append(published, v)
		}
	}
	base, err := s.videoViews(ctx, viewer, published)
	if err != nil {
		return Page[LikedVideo]{}, err
	}
	byID := indexBy(base, func(v VideoView) string { return v.ID })

	items := make([]LikedVideo, 0, len(likes))
	for _, l := range likes {
		v, ok := byID[l.TargetID]
		if !ok {
			continue
		}
		items = append(items, LikedVideo{LikedAt: l.CreatedAt, Video: v})
	}
	return Paginate(items, page, limit)
}

// LikedComments nests a second join level: each liked comment carries a
// teaser of the video it was posted on.
func (s *Service) LikedComments(ctx context.Context, viewer uint, page, limit int) (Page[LikedComment], error) {
	likes, err := s.src.Likes.GetLikesByUser(viewer, models.LikeTargetComment)
	if err != nil {
		return Page[LikedComment]{}, err
	}

	comments, err := s.src.Comments.GetCommentsByIDs(ctx, targetObjectIDs(likes))
	if err != nil {
		return Page[LikedComment]{}, err
	}
	base, err := s.commentViews(comments)
	if err != nil {
		return Page[LikedComment]{}, err
	}
	byID := indexBy(base, func(c CommentView) string { return c.ID })

	videoIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, c := range comments {
		videoIDs = append(videoIDs, c.VideoID)
	}
	videos, err := s.src.Videos.GetVideosByIDs(ctx, dedup(videoIDs))
	if err != nil {
		return Page[LikedComment]{}, err
	}
	teasers := make(map[string]*VideoTeaser, len(videos))
	for _, v := range videos {
		teasers[v.ID.Hex()] = &VideoTeaser{
			ID:           v.ID.Hex(),
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			CreatedAt:    v.CreatedAt,
		}
	}

	items := make([]LikedComment, 0, len(likes))
	for _, l := range likes {
		c, ok := byID[l.TargetID]
		if !ok {
			continue
		}
		items = append(items, LikedComment{
			LikedAt: l.CreatedAt,
			Comment: CommentWithVideo{CommentView: c, Video: teasers[c.VideoID]},
		})
	}
	return Paginate(items, page, limit)
}

func (s *Service) LikedTweets(ctx context.Context, viewer uint, page, limit int) (Page[LikedTweet], error) {
	likes, err := s.src.Likes.GetLikesByUser(viewer, models.LikeTargetTweet)
	if err != nil {
		return Page[LikedTweet]{}, err
	}

	tweets, err := s.src.Tweets.GetTweetsByIDs(ctx, targetObjectIDs(likes))
	if err != nil {
		return Page[LikedTweet]{}, err
	}
	base, err := s.tweetViews(viewer, tweets)
	if err != nil {
		return Page[LikedTweet]{}, err
	}
	byID := indexBy(base, func(t TweetView) string { return t.ID })

	items := make([]LikedTweet, 0, len(likes))
	for _, l := range likes {
		t, ok := byID[l.TargetID]
		if !ok {
			continue
		}
		items = append(items, LikedTweet{LikedAt: l.CreatedAt, Tweet: t})
	}
	return Paginate(items, page, limit)
}

// LikeStatsFor summarizes the viewer's likes per target kind.
func (s *Service) LikeStatsFor(viewer uint) (*LikeStats, error) {
	counts, err := s.src.Likes.CountByUser(viewer)
	if err != nil {
		return nil, err
	}
	stats := &LikeStats{
		VideosLiked:   counts[models.LikeTargetVideo],
		CommentsLiked: counts[models.LikeTargetComment],
		TweetsLiked:   counts[models.LikeTargetTweet],
	}
	stats.TotalLikes = stats.VideosLiked + stats.CommentsLiked + stats.TweetsLiked
	return stats, nil
}

// targetObjectIDs collects the parseable target IDs off like rows. Rows
// whose target ID no longer parses are skipped rather than failing the
// whole listing.
func targetObjectIDs(likes []models.Like) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(likes))
	for _, l := range likes {
		objID, err := primitive.ObjectIDFromHex(l.TargetID)
		if err != nil {
			continue
		}
		ids = append(ids, objID)
	}
	return ids
}
