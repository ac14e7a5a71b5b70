package models

import "gorm.io/gorm"

// LikeTargetKind discriminates what a like points at. A like references
// exactly one target; the kind+ID pair replaces three nullable columns so an
// invalid multi-target row cannot be represented.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// LikeTarget is the tagged reference passed through toggle and lookup calls.
type LikeTarget struct {
	Kind LikeTargetKind
	ID   string // MongoDB ObjectID hex of the target document
}

// Like is an existence flag between a user and a target. The composite
// unique index enforces at most one row per (user, target) pair, which is
// what makes concurrent toggles safe.
type Like struct {
	gorm.Model
	UserID     uint           `json:"user_id" gorm:"index;uniqueIndex:idx_like_user_target"`
	TargetKind LikeTargetKind `json:"target_kind" gorm:"size:16;uniqueIndex:idx_like_user_target"`
	TargetID   string         `json:"target_id" gorm:"size:32;index;uniqueIndex:idx_like_user_target"`
}
