package views

import (
	"context"
	"fmt"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToggleResult reports the state after a toggle call.
type ToggleResult struct {
	Active bool `json:"active"`
}

// ToggleLike flips the viewer's like on the target. The target must exist;
// toggling a like on a deleted document would otherwise leave an orphan row
// that inflates counts forever.
func (s *Service) ToggleLike(ctx context.Context, viewer uint, target models.LikeTarget) (*ToggleResult, error) {
	if _, err := primitive.ObjectIDFromHex(target.ID); err != nil {
		return nil, fmt.Errorf("%w: invalid target ID", ErrInvalidInput)
	}

	switch target.Kind {
	case models.LikeTargetVideo:
		if _, err := s.src.Videos.GetVideoByID(ctx, target.ID); err != nil {
			return nil, fmt.Errorf("%w: video", ErrNotFound)
		}
	case models.LikeTargetComment:
		if _, err := s.src.Comments.GetCommentByID(ctx, target.ID); err != nil {
			return nil, fmt.Errorf("%w: comment", ErrNotFound)
		}
	case models.LikeTargetTweet:
		if _, err := s.src.Tweets.GetTweetByID(ctx, target.ID); err != nil {
			return nil, fmt.Errorf("%w: tweet", ErrNotFound)
		}
	default:
		return nil, fmt.Errorf("%w: unknown like target kind %q", ErrInvalidInput, target.Kind)
	}

	active, err := s.src.Likes.Toggle(viewer, target)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Active: active}, nil
}

// ToggleSubscription flips the viewer's subscription to the channel.
// Subscribing to yourself is rejected.
func (s *Service) ToggleSubscription(viewer, channelID uint) (*ToggleResult, error) {
	if viewer == channelID {
		return nil, fmt.Errorf("%w: cannot subscribe to your own channel", ErrInvalidInput)
	}
	if _, err := s.src.Users.GetUserByID(channelID); err != nil {
		return nil, fmt.Errorf("%w: channel", ErrNotFound)
	}

	active, err := s.src.Subscriptions.Toggle(viewer, channelID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Active: active}, nil
}
