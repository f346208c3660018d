package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. Comments follow the same soft
// delete lifecycle as posts. A comment keeps referencing its post id even
// after the post itself is soft-deleted; there is no cascade.
type Comment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	PostID    uint           `json:"post_id" gorm:"index"`
	UserID    uint           `json:"user_id" gorm:"index"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
