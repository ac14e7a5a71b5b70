package views

import (
	"context"
	"sort"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Studio dashboard aggregations. Everything here is computed per request
// from the channel's own records; nothing is cached or persisted.

// ChannelStatsFor totals a channel's videos, views, likes and subscribers.
func (s *Service) ChannelStatsFor(ctx context.Context, channelID uint) (*ChannelStats, error) {
	videos, err := s.src.Videos.GetVideosByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.ID.Hex()
	}
	likes, err := s.src.Likes.GetLikesByTargets(models.LikeTargetVideo, ids)
	if err != nil {
		return nil, err
	}
	subs, err := s.src.Subscriptions.GetByChannel(channelID)
	if err != nil {
		return nil, err
	}

	stats := &ChannelStats{
		TotalVideos:      len(videos),
		TotalLikes:       len(likes),
		TotalSubscribers: len(subs),
	}
	for _, v := range videos {
		stats.TotalViews += v.Views
	}
	return stats, nil
}

// ChannelAnalytics buckets the channel's uploads of the trailing N days by
// publish date. Days without an upload are omitted; buckets come back in
// ascending date order.
func (s *Service) ChannelAnalytics(ctx context.Context, channelID uint, days int) ([]DailyAnalytics, error) {
	videos, err := s.src.Videos.GetVideosByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	recent := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if withinWindow(v.CreatedAt, now, days) {
			recent = append(recent, v)
		}
	}

	ids := make([]string, len(recent))
	objIDs := make([]primitive.ObjectID, len(recent))
	for i, v := range recent {
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

	buckets := make(map[string]*DailyAnalytics)
	for _, v := range recent {
		day := v.CreatedAt.Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &DailyAnalytics{Date: day}
			buckets[day] = b
		}
		hexID := v.ID.Hex()
		b.VideosPublished++
		b.TotalViews += v.Views
		b.TotalLikes += idx.counts[hexID]
		b.TotalComments += len(commentsByVideo[hexID])
	}

	out := make([]DailyAnalytics, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// TopPerformingVideos ranks the channel's uploads by engagement.
func (s *Service) TopPerformingVideos(ctx context.Context, channelID uint, limit int) ([]OwnerVideoView, error) {
	videos, err := s.src.Videos.GetVideosByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}
	items, err := s.ownerVideoViews(ctx, videos)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].EngagementScore != items[j].EngagementScore {
			return items[i].EngagementScore > items[j].EngagementScore
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// RecentActivity merges the latest comments on the channel's videos with
// its latest subscribers, capped at limit entries per list.
func (s *Service) RecentActivity(ctx context.Context, channelID uint, limit int) (*RecentActivity, error) {
	if limit <= 0 {
		limit = 10
	}

	videos, err := s.src.Videos.GetVideosByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}
	objIDs := make([]primitive.ObjectID, len(videos))
	titles := make(map[string]string, len(videos))
	for i, v := range videos {
		objIDs[i] = v.ID
		titles[v.ID.Hex()] = v.Title
	}

	comments, err := s.src.Comments.GetCommentsByVideos(ctx, objIDs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	if len(comments) > limit {
		comments = comments[:limit]
	}

	subs, err := s.src.Subscriptions.GetByChannel(channelID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	if len(subs) > limit {
		subs = subs[:limit]
	}

	userIDs := make([]uint, 0, len(comments)+len(subs))
	for _, c := range comments {
		userIDs = append(userIDs, c.OwnerID)
	}
	for _, sub := range subs {
		userIDs = append(userIDs, sub.SubscriberID)
	}
	users, err := s.src.Users.GetUsersByIDs(dedup(userIDs))
	if err != nil {
		return nil, err
	}

	activity := &RecentActivity{
		RecentComments:    make([]ActivityComment, 0, len(comments)),
		RecentSubscribers: make([]ActivitySubscriber, 0, len(subs)),
	}
	for _, c := range comments {
		entry := ActivityComment{
			Content:    c.Content,
			VideoTitle: titles[c.VideoID.Hex()],
			CreatedAt:  c.CreatedAt,
		}
		if u, ok := users[c.OwnerID]; ok {
			entry.CommenterName = u.Username
		}
		activity.RecentComments = append(activity.RecentComments, entry)
	}
	for _, sub := range subs {
		entry := ActivitySubscriber{SubscribedAt: sub.CreatedAt}
		if u, ok := users[sub.SubscriberID]; ok {
			entry.SubscriberName = u.Username
			entry.SubscriberAvatar = u.AvatarURL
		}
		activity.RecentSubscribers = append(activity.RecentSubscribers, entry)
	}
	return activity, nil
}
