package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents an account row. Accounts are never deleted by this
// service; only profile fields are mutable.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:30"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// UserProfile is a user with follower/following cardinalities attached.
// The counts come from two independent queries, so a concurrent writer can
// produce a profile whose counts are not from exactly the same instant.
type UserProfile struct {
	User
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// RegisterRequest defines the request body for creating a new account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=80"`
}

// SignInRequest defines the request body for signing in
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the request body for updating the own profile.
// Empty fields are left untouched.
type UpdateUserRequest struct {
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,min=2,max=80"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
