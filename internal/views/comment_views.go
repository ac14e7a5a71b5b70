package views

import (
	"context"
	"fmt"

	"github.com/vidhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoComments lists a video's comment thread newest first, each comment
// joined with its author.
func (s *Service) VideoComments(ctx context.Context, viewer uint, videoID string, page, limit int) (Page[CommentView], error) {
	objID, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return Page[CommentView]{}, fmt.Errorf("%w: invalid video ID", ErrInvalidInput)
	}
	if _, err := s.src.Videos.GetVideoByID(ctx, videoID); err != nil {
		return Page[CommentView]{}, fmt.Errorf("%w: video", ErrNotFound)
	}

	comments, err := s.src.Comments.GetCommentsByVideo(ctx, objID)
	if err != nil {
		return Page[CommentView]{}, err
	}
	items, err := s.commentViews(comments)
	if err != nil {
		return Page[CommentView]{}, err
	}
	return Paginate(items, page, limit)
}

// commentViews joins author profiles onto raw comments, preserving input
// order.
func (s *Service) commentViews(comments []models.Comment) ([]CommentView, error) {
	owners := make([]uint, len(comments))
	for i, c := range comments {
		owners[i] = c.OwnerID
	}
	users, err := s.src.Users.GetUsersByIDs(dedup(owners))
	if err != nil {
		return nil, err
	}

	items := make([]CommentView, len(comments))
	for i, c := range comments {
		items[i] = CommentView{
			ID:        c.ID.Hex(),
			VideoID:   c.VideoID.Hex(),
			Content:   c.Content,
			Owner:     ownerProfile(users, c.OwnerID),
			CreatedAt: c.CreatedAt,
		}
	}
	return items, nil
}
