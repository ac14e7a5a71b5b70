package repositories

import (
	"errors"

	"github.com/vidhive/backend/internal/models"
	"gorm.io/gorm"
)

// SubscriptionRepository manages channel subscriptions. Rows are created and
// removed through Toggle only.
type SubscriptionRepository interface {
	Toggle(subscriberID, channelID uint) (active bool, err error)
	IsSubscribed(subscriberID, channelID uint) (bool, error)
	GetByChannel(channelID uint) ([]models.Subscription, error)
	GetByChannels(channelIDs []uint) ([]models.Subscription, error)
	GetBySubscriber(subscriberID uint) ([]models.Subscription, error)
	CountByChannel(channelID uint) (int64, error)
}

// PostgresSubscriptionRepository implements SubscriptionRepository
type PostgresSubscriptionRepository struct {
	db *gorm.DB
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository
func NewPostgresSubscriptionRepository(db *gorm.DB) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{db: db}
}

// Toggle flips the subscription state for (subscriber, channel). Duplicate
// key on a racing create resolves to "already subscribed". Self-subscription
// is rejected by the caller before it gets here.
func (r *PostgresSubscriptionRepository) Toggle(subscriberID, channelID uint) (bool, error) {
	var existing models.Subscription
	err := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).First(&existing).Error
	if err == nil {
		if err := r.db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	sub := models.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := r.db.Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// IsSubscribed reports whether subscriber currently follows channel
func (r *PostgresSubscriptionRepository) IsSubscribed(subscriberID, channelID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).Count(&count).Error
	return count > 0, err
}

// GetByChannel retrieves all subscriptions to a channel, newest first
func (r *PostgresSubscriptionRepository) GetByChannel(channelID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("channel_id = ?", channelID).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

// GetByChannels retrieves all subscriptions to any of the given channels
func (r *PostgresSubscriptionRepository) GetByChannels(channelIDs []uint) ([]models.Subscription, error) {
	if len(channelIDs) == 0 {
		return nil, nil
	}
	var subs []models.Subscription
	err := r.db.Where("channel_id IN ?", channelIDs).Find(&subs).Error
	return subs, err
}

// GetBySubscriber retrieves all subscriptions made by a user, newest first
func (r *PostgresSubscriptionRepository) GetBySubscriber(subscriberID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("subscriber_id = ?", subscriberID).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

// CountByChannel counts a channel's subscribers
func (r *PostgresSubscriptionRepository) CountByChannel(channelID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}
