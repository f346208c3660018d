package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a social media post. Deleting a post is a soft delete:
// the row stays in place, default reads exclude it and Unscoped reads
// still see it. UpdatedAt stays null until the first edit.
type Post struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"index"`
	Content         string         `json:"content"`
	MediaURL        string         `json:"media_url,omitempty"`
	CommentsEnabled bool           `json:"comments_enabled"`
	CreatedAt       time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt       *time.Time     `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// FeedPost is a post annotated with aggregate counts for feed rendering.
// The comment count covers non-deleted comments only and the like count
// covers live likes only, matching what the listing endpoints return.
type FeedPost struct {
	Post
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content         string `json:"content" validate:"required,min=1,max=2000"`
	MediaURL        string `json:"media_url,omitempty" validate:"omitempty,url"`
	CommentsEnabled *bool  `json:"comments_enabled,omitempty"`
}

// UpdatePostRequest defines a partial update; nil fields are left untouched.
type UpdatePostRequest struct {
	Content         *string `json:"content,omitempty" validate:"omitempty,min=1,max=2000"`
	MediaURL        *string `json:"media_url,omitempty" validate:"omitempty,url"`
	CommentsEnabled *bool   `json:"comments_enabled,omitempty"`
}
