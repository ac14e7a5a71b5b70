package views

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var videoSortFields = map[string]fieldCmp[VideoView]{
	"createdAt": {cmp: func(a, b VideoView) int { return a.CreatedAt.Compare(b.CreatedAt) }},
	"views":     {cmp: func(a, b VideoView) int { return compareInt64(a.Views, b.Views) }},
	"duration":  {cmp: func(a, b VideoView) int { return compareFloat(a.Duration, b.Duration) }},
	"title":     {cmp: func(a, b VideoView) int { return strings.Compare(a.Title, b.Title) }},
}

var ownerVideoSortFields = map[string]fieldCmp[OwnerVideoView]{
	"createdAt":     {cmp: func(a, b OwnerVideoView) int { return a.CreatedAt.Compare(b.CreatedAt) }},
	"views":         {cmp: func(a, b OwnerVideoView) int { return compareInt64(a.Views, b.Views) }},
	"duration":      {cmp: func(a, b OwnerVideoView) int { return compareFloat(a.Duration, b.Duration) }},
	"title":         {cmp: func(a, b OwnerVideoView) int { return strings.Compare(a.Title, b.Title) }},
	"likesCount":    {cmp: func(a, b OwnerVideoView) int { return compareInt(a.LikesCount, b.LikesCount) }},
	"commentsCount": {cmp: func(a, b OwnerVideoView) int { return compareInt(a.CommentsCount, b.CommentsCount) }},
	"engagementScore": {
		cmp:   func(a, b OwnerVideoView) int { return compareFloat(a.EngagementScore, b.EngagementScore) },
		score: true,
	},
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ListVideos is the public catalogue: published videos only, optional text
// search and owner scoping, sortable by stored fields.
func (s *Service) ListVideos(ctx context.Context, viewer uint, f Filters, srt Sort, page, limit int) (Page[VideoView], error) {
	f.PublishedOnly = true

	videos, err := s.src.Videos.GetVideos(ctx)
	if err != nil {
		return Page[VideoView]{}, err
	}
	items, err := s.videoViews(ctx, viewer, filterVideos(videos, f, s.now()))
	if err != nil {
		return Page[VideoView]{}, err
	}

	if srt.Key == "" {
		srt.Key = "createdAt"
	}
	if err := applySort(items, srt, videoSortFields, func(v VideoView) time.Time { return v.CreatedAt }); err != nil {
		return Page[VideoView]{}, err
	}
	return Paginate(items, page, limit)
}

// VideoByID assembles the watch-page view: owner with nested subscriber
// join, like count and viewer flags. The caller records the view hit.
func (s *Service) VideoByID(ctx context.Context, viewer uint, id string) (*VideoDetailView, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: invalid video ID", ErrInvalidInput)
	}
	video, err := s.src.Videos.GetVideoByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: video", ErrNotFound)
	}

	hexID := video.ID.Hex()
	likes, err := s.src.Likes.GetLikesByTargets(models.LikeTargetVideo, []string{hexID})
	if err != nil {
		return nil, err
	}
	idx := buildLikeIndex(likes, viewer)

	detail := &VideoDetailView{
		ID:           hexID,
		Title:        video.Title,
		Description:  video.Description,
		MediaURL:     video.MediaURL,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		Views:        video.Views,
		LikesCount:   idx.counts[hexID],
		IsLiked:      idx.byViewer[hexID],
		IsPublished:  video.IsPublished,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}

	users, err := s.src.Users.GetUsersByIDs([]uint{video.OwnerID})
	if err != nil {
		return nil, err
	}
	if owner := ownerProfile(users, video.OwnerID); owner != nil {
		subs, err := s.src.Subscriptions.GetByChannel(video.OwnerID)
		if err != nil {
			return nil, err
		}
		profile := &ChannelProfile{OwnerProfile: *owner, SubscribersCount: len(subs)}
		for _, sub := range subs {
			if viewer != 0 && sub.SubscriberID == viewer {
				profile.IsSubscribed = true
				break
			}
		}
		detail.Owner = profile
	}
	return detail, nil
}

// OwnerVideos lists a channel owner's uploads, unpublished included, with
// comment counts and engagement attached. Backs both the "my videos" page
// and the studio dashboard listing.
func (s *Service) OwnerVideos(ctx context.Context, ownerID uint, srt Sort, page, limit int) (Page[OwnerVideoView], error) {
	videos, err := s.src.Videos.GetVideosByOwner(ctx, ownerID)
	if err != nil {
		return Page[OwnerVideoView]{}, err
	}
	items, err := s.ownerVideoViews(ctx, videos)
	if err != nil {
		return Page[OwnerVideoView]{}, err
	}

	if srt.Key == "" {
		srt.Key = "createdAt"
	}
	if err := applySort(items, srt, ownerVideoSortFields, func(v OwnerVideoView) time.Time { return v.CreatedAt }); err != nil {
		return Page[OwnerVideoView]{}, err
	}
	return Paginate(items, page, limit)
}

// TrendingVideos ranks the last week's published uploads by views and
// likes. The window is a hard filter: an older video never appears, no
// matter its score.
func (s *Service) TrendingVideos(ctx context.Context, viewer uint, page, limit int) (Page[TrendingVideoView], error) {
	videos, err := s.src.Videos.GetVideos(ctx)
	if err != nil {
		return Page[TrendingVideoView]{}, err
	}

	cutoff := s.now().Add(-trendingWindow)
	recent := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.IsPublished && !v.CreatedAt.Before(cutoff) {
			recent = append(recent, v)
		}
	}

	base, err := s.videoViews(ctx, viewer, recent)
	if err != nil {
		return Page[TrendingVideoView]{}, err
	}
	items := make([]TrendingVideoView, len(base))
	for i, v := range base {
		items[i] = TrendingVideoView{VideoView: v, TrendingScore: trendingScore(v.Views, v.LikesCount)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TrendingScore != items[j].TrendingScore {
			return items[i].TrendingScore > items[j].TrendingScore
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return Paginate(items, page, limit)
}

// RecommendedVideos ranks published videos from other channels by
// popularity plus a noise term, so near-equal candidates reshuffle between
// requests. The score itself stays internal.
func (s *Service) RecommendedVideos(ctx context.Context, viewer uint, page, limit int) (Page[VideoView], error) {
	videos, err := s.src.Videos.GetVideos(ctx)
	if err != nil {
		return Page[VideoView]{}, err
	}

	candidates := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.IsPublished && v.OwnerID != viewer {
			candidates = append(candidates, v)
		}
	}

	base, err := s.videoViews(ctx, viewer, candidates)
	if err != nil {
		return Page[VideoView]{}, err
	}

	type scored struct {
		view  VideoView
		score float64
	}
	ranked := make([]scored, len(base))
	for i, v := range base {
		ranked[i] = scored{view: v, score: recommendationScore(v.Views, v.LikesCount, s.noise())}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].view.CreatedAt.After(ranked[j].view.CreatedAt)
	})

	items := make([]VideoView, len(ranked))
	for i, r := range ranked {
		items[i] = r.view
	}
	return Paginate(items, page, limit)
}

// VideoStatsByID reports a single video's raw engagement numbers.
func (s *Service) VideoStatsByID(ctx context.Context, id string) (*VideoStats, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: invalid video ID", ErrInvalidInput)
	}
	video, err := s.src.Videos.GetVideoByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: video", ErrNotFound)
	}

	hexID := video.ID.Hex()
	likes, err := s.src.Likes.GetLikesByTargets(models.LikeTargetVideo, []string{hexID})
	if err != nil {
		return nil, err
	}
	comments, err := s.src.Comments.GetCommentsByVideo(ctx, video.ID)
	if err != nil {
		return nil, err
	}

	return &VideoStats{
		ID:            hexID,
		Title:         video.Title,
		Views:         video.Views,
		TotalLikes:    len(likes),
		TotalComments: len(comments),
		IsPublished:   video.IsPublished,
		CreatedAt:     video.CreatedAt,
	}, nil
}

// videoViews joins owner profiles and like aggregates onto raw videos,
// preserving input order.
func (s *Service) videoViews(ctx context.Context, viewer uint, videos []models.Video) ([]VideoView, error) {
	ids := make([]string, len(videos))
	owners := make([]uint, len(videos))
	for i, v := range videos {
		ids[i] = v.ID.Hex()
		owners[i] = v.OwnerID
	}

	likes, err := s.src.Likes.GetLikesByTargets(models.LikeTargetVideo, ids)
	if err != nil {
		return nil, err
	}
	users, err := s.src.Users.GetUsersByIDs(dedup(owners))
	if err != nil {
		return nil, err
	}

	idx := buildLikeIndex(likes, viewer)
	items := make([]VideoView, len(videos))
	for i, v := range videos {
		hexID := ids[i]
		items[i] = VideoView{
			ID:           hexID,
			Title:        v.Title,
			Description:  v.Description,
			MediaURL:     v.MediaURL,
			ThumbnailURL: v.ThumbnailURL,
			Duration:     v.Duration,
			Views:        v.Views,
			Owner:        ownerProfile(users, v.OwnerID),
			LikesCount:   idx.counts[hexID],
			IsLiked:      idx.byViewer[hexID],
			CreatedAt:    v.CreatedAt,
		}
	}
	return items, nil
}

// ownerVideoViews joins like and comment counts onto an owner's videos.
func (s *Service) ownerVideoViews(ctx context.Context, videos []models.Video) ([]OwnerVideoView, error) {
	ids := make([]string, len(videos))
	objIDs := make([]primitive.ObjectID, len(videos))
	for i, v := range videos {
		ids[i] = v.ID.Hex()
		objIDs[i] = v.ID
	}

	likes, err := s.src.Likes.GetLikesByTargets(models.LikeTargetVideo, ids)
	if err != nil {
		return nil, err
	}
	comments, err := s.src.Comments.GetCommentsByVideos(ctx, objIDs)
	if err != nil {
		return nil, err
	}

	idx := buildLikeIndex(likes, 0)
	commentsByVideo := groupBy(comments, func(c models.Comment) string { return c.VideoID.Hex() })

	items := make([]OwnerVideoView, len(videos))
	for i, v := range videos {
		hexID := ids[i]
		likesCount := idx.counts[hexID]
		commentsCount := len(commentsByVideo[hexID])
		items[i] = OwnerVideoView{
			ID:              hexID,
			Title:           v.Title,
			Description:     v.Description,
			MediaURL:        v.MediaURL,
			ThumbnailURL:    v.ThumbnailURL,
			Duration:        v.Duration,
			Views:           v.Views,
			LikesCount:      likesCount,
			CommentsCount:   commentsCount,
			EngagementScore: engagementScore(v.Views, likesCount, commentsCount),
			IsPublished:     v.IsPublished,
			CreatedAt:       v.CreatedAt,
			UpdatedAt:       v.UpdatedAt,
		}
	}
	return items, nil
}
