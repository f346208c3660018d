package models

import "time"

// Like is a set-membership fact: at most one row per (post, user) pair,
// enforced by the composite unique index. Likes carry no payload and are
// hard-deleted on unlike so the pair can be reused by a later like.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`
}
