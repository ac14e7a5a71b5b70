package views

import (
	"context"
	"fmt"

	"github.com/vidhive/backend/internal/models"
)

// ChannelSubscribers lists who subscribes to a channel, newest first.
func (s *Service) ChannelSubscribers(channelID uint, page, limit int) (Page[SubscriberView], error) {
	if _, err := s.src.Users.GetUserByID(channelID); err != nil {
		return Page[SubscriberView]{}, fmt.Errorf("%w: channel", ErrNotFound)
	}
	subs, err := s.src.Subscriptions.GetByChannel(channelID)
	if err != nil {
		return Page[SubscriberView]{}, err
	}

	ids := make([]uint, len(subs))
	for i, sub := range subs {
		ids[i] = sub.SubscriberID
	}
	users, err := s.src.Users.GetUsersByIDs(dedup(ids))
	if err != nil {
		return Page[SubscriberView]{}, err
	}

	items := make([]SubscriberView, len(subs))
	for i, sub := range subs {
		items[i] = SubscriberView{
			Subscriber:   ownerProfile(users, sub.SubscriberID),
			SubscribedAt: sub.CreatedAt,
		}
	}
	return Paginate(items, page, limit)
}

// SubscribedChannels lists the channels a user subscribes to, each joined
// with its own subscriber and published-video counts.
func (s *Service) SubscribedChannels(ctx context.Context, subscriberID uint, page, limit int) (Page[SubscribedChannel], error) {
	if _, err := s.src.Users.GetUserByID(subscriberID); err != nil {
		return Page[SubscribedChannel]{}, fmt.Errorf("%w: user", ErrNotFound)
	}
	subs, err := s.src.Subscriptions.GetBySubscriber(subscriberID)
	if err != nil {
		return Page[SubscribedChannel]{}, err
	}

	channelIDs := make([]uint, len(subs))
	for i, sub := range subs {
		channelIDs[i] = sub.ChannelID
	}
	channelIDs = dedup(channelIDs)

	users, err := s.src.Users.GetUsersByIDs(channelIDs)
	if err != nil {
		return Page[SubscribedChannel]{}, err
	}
	channelSubs, err := s.src.Subscriptions.GetByChannels(channelIDs)
	if err != nil {
		return Page[SubscribedChannel]{}, err
	}
	subsByChannel := groupBy(channelSubs, func(sub models.Subscription) uint { return sub.ChannelID })

	videos, err := s.src.Videos.GetVideosByOwners(ctx, channelIDs)
	if err != nil {
		return Page[SubscribedChannel]{}, err
	}
	publishedByOwner := make(map[uint]int)
	for _, v := range videos {
		if v.IsPublished {
			publishedByOwner[v.OwnerID]++
		}
	}

	items := make([]SubscribedChannel, len(subs))
	for i, sub := range subs {
		var card *ChannelCard
		if u, ok := users[sub.ChannelID]; ok {
			card = &ChannelCard{
				ID:               u.ID,
				Username:         u.Username,
				DisplayName:      u.DisplayName,
				AvatarURL:        u.AvatarURL,
				CoverURL:         u.CoverURL,
				SubscribersCount: len(subsByChannel[sub.ChannelID]),
				VideosCount:      publishedByOwner[sub.ChannelID],
			}
		}
		items[i] = SubscribedChannel{Channel: card, SubscribedAt: sub.CreatedAt}
	}
	return Paginate(items, page, limit)
}

// MySubscriptions backs the subscriptions sidebar: each channel with its
// subscriber count and latest published upload.
func (s *Service) MySubscriptions(ctx context.Context, viewer uint, page, limit int) (Page[MySubscription], error) {
	subs, err := s.src.Subscriptions.GetBySubscriber(viewer)
	if err != nil {
		return Page[MySubscription]{}, err
	}

	channelIDs := make([]uint, len(subs))
	for i, sub := range subs {
		channelIDs[i] = sub.ChannelID
	}
	channelIDs = dedup(channelIDs)

	users, err := s.src.Users.GetUsersByIDs(channelIDs)
	if err != nil {
		return Page[MySubscription]{}, err
	}
	channelSubs, err := s.src.Subscriptions.GetByChannels(channelIDs)
	if err != nil {
		return Page[MySubscription]{}, err
	}
	subsByChannel := groupBy(channelSubs, func(sub models.Subscription) uint { return sub.ChannelID })

	videos, err := s.src.Videos.GetVideosByOwners(ctx, channelIDs)
	if err != nil {
		return Page[MySubscription]{}, err
	}
	latestByOwner := make(map[uint]*VideoTeaser)
	for _, v := range videos {
		if !v.IsPublished {
			continue
		}
		cur := latestByOwner[v.OwnerID]
		if cur == nil || v.CreatedAt.After(cur.CreatedAt) {
			latestByOwner[v.OwnerID] = &VideoTeaser{
				ID:           v.ID.Hex(),
				Title:        v.Title,
				ThumbnailURL: v.ThumbnailURL,
				CreatedAt:    v.CreatedAt,
			}
		}
	}

	items := make([]MySubscription, len(subs))
	for i, sub := range subs {
		var summary *ChannelSummary
		if u, ok := users[sub.ChannelID]; ok {
			summary = &ChannelSummary{
				ID:               u.ID,
				Username:         u.Username,
				DisplayName:      u.DisplayName,
				AvatarURL:        u.AvatarURL,
				SubscribersCount: len(subsByChannel[sub.ChannelID]),
				LatestVideo:      latestByOwner[sub.ChannelID],
			}
		}
		items[i] = MySubscription{Channel: summary, SubscribedAt: sub.CreatedAt}
	}
	return Paginate(items, page, limit)
}

// SubscriptionStatus reports whether the viewer subscribes to the channel.
func (s *Service) SubscriptionStatus(viewer, channelID uint) (bool, error) {
	if _, err := s.src.Users.GetUserByID(channelID); err != nil {
		return false, fmt.Errorf("%w: channel", ErrNotFound)
	}
	return s.src.Subscriptions.IsSubscribed(viewer, channelID)
}
