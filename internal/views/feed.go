package views

import (
	"context"
	"sort"

	"github.com/vidhive/backend/internal/models"
)

// SubscriptionFeed is the home feed: the published uploads of every
// channel the viewer subscribes to, merged into one timeline sorted newest
// first. Flattening happens before pagination, so the page totals count
// videos, not channels.
func (s *Service) SubscriptionFeed(ctx context.Context, viewer uint, page, limit int) (Page[VideoView], error) {
	subs, err := s.src.Subscriptions.GetBySubscriber(viewer)
	if err != nil {
		return Page[VideoView]{}, err
	}

	channelIDs := make([]uint, len(subs))
	for i, sub := range subs {
		channelIDs[i] = sub.ChannelID
	}

	videos, err := s.src.Videos.GetVideosByOwners(ctx, dedup(channelIDs))
	if err != nil {
		return Page[VideoView]{}, err
	}
	published := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.IsPublished {
			published = append(published, v)
		}
	}

	items, err := s.videoViews(ctx, viewer, published)
	if err != nil {
		return Page[VideoView]{}, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return Paginate(items, page, limit)
}
