package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// User is the identity anchor for ownership and engagement. Content
// documents reference users by their numeric ID.
type User struct {
	gorm.Model  `json:"-"`
	ID          uint   `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"uniqueIndex"` // stored lowercased
	DisplayName string `json:"display_name"`
	Email       string `json:"email" gorm:"uniqueIndex"`
	Password    string `json:"-"` // bcrypt hash
	AvatarURL   string `json:"avatar_url"`
	CoverURL    string `json:"cover_url,omitempty"`
	FirebaseUID string `json:"firebase_uid,omitempty" gorm:"uniqueIndex"`
}

type SignupRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=30"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
	CoverURL    string `json:"cover_url" validate:"omitempty,url"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,min=2,max=50"`
	AvatarURL   string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	CoverURL    string `json:"cover_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
