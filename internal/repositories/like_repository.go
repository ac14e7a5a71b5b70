package repositories

import (
	"errors"

	"github.com/vidhive/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository manages like existence-flags. Likes are only ever created
// or removed through Toggle; there are no separate like/unlike operations.
type LikeRepository interface {
	Toggle(userID uint, target models.LikeTarget) (active bool, err error)
	HasLiked(userID uint, target models.LikeTarget) (bool, error)
	GetLikesByTargets(kind models.LikeTargetKind, targetIDs []string) ([]models.Like, error)
	GetLikesByUser(userID uint, kind models.LikeTargetKind) ([]models.Like, error)
	CountByUser(userID uint) (map[models.LikeTargetKind]int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// Toggle flips the like state for (user, target). If a row exists it is
// deleted and false is returned; otherwise one is created and true is
// returned. A duplicate-key error from a racing create means the row is
// already there, so that race resolves to "already active" rather than
// surfacing an error. The unique index keeps at most one row per pair no
// matter how calls interleave.
func (r *PostgresLikeRepository) Toggle(userID uint, target models.LikeTarget) (bool, error) {
	var existing models.Like
	err := r.db.Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, target.Kind, target.ID).First(&existing).Error
	if err == nil {
		if err := r.db.Unscoped().Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like := models.Like{UserID: userID, TargetKind: target.Kind, TargetID: target.ID}
	if err := r.db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// HasLiked reports whether the user currently likes the target
func (r *PostgresLikeRepository) HasLiked(userID uint, target models.LikeTarget) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, target.Kind, target.ID).Count(&count).Error
	return count > 0, err
}

// GetLikesByTargets bulk-loads likes for the given targets of one kind.
// The view pipelines turn the result into count and viewer-flag maps.
func (r *PostgresLikeRepository) GetLikesByTargets(kind models.LikeTargetKind, targetIDs []string) ([]models.Like, error) {
	if len(targetIDs) == 0 {
		return nil, nil
	}
	var likes []models.Like
	err := r.db.Where("target_kind = ? AND target_id IN ?", kind, targetIDs).Find(&likes).Error
	return likes, err
}

// GetLikesByUser retrieves the user's likes of one target kind, newest first
func (r *PostgresLikeRepository) GetLikesByUser(userID uint, kind models.LikeTargetKind) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Where("user_id = ? AND target_kind = ?", userID, kind).Order("created_at DESC").Find(&likes).Error
	return likes, err
}

// CountByUser returns how many targets of each kind the user has liked
func (r *PostgresLikeRepository) CountByUser(userID uint) (map[models.LikeTargetKind]int64, error) {
	type row struct {
		TargetKind models.LikeTargetKind
		Total      int64
	}
	var rows []row
	err := r.db.Model(&models.Like{}).
		Select("target_kind, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("target_kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[models.LikeTargetKind]int64, len(rows))
	for _, r := range rows {
		result[r.TargetKind] = r.Total
	}
	return result, nil
}
