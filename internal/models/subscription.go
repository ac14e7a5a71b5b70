package models

import "time"

// Subscription is a directed edge between users: subscriber follows channel.
// Self-subscription is rejected before the row is written; the unique pair
// index keeps concurrent toggles from creating duplicates.
type Subscription struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SubscriberID uint      `json:"subscriber_id" gorm:"index;uniqueIndex:idx_subscriber_channel"`
	ChannelID    uint      `json:"channel_id" gorm:"index;uniqueIndex:idx_subscriber_channel"`
	CreatedAt    time.Time `json:"created_at"`
}
