package repositories

import (
	"github.com/rezwan-dev/feedstack/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	LikePost(userID, postID uint) (*models.Like, bool, error)
	UnlikePost(userID, postID uint) (bool, error)
	GetPostLikerIDs(postID uint, limit, offset int) ([]uint, error)
	GetUserLikedPostIDs(userID uint) ([]uint, error)
	GetLikesCount(postID uint) (int64, error)
	HasUserLikedPost(userID, postID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// LikePost records the like if it is absent. The second return value is
// false when the user already liked the post; that is a no-op, not an
// error. Uniqueness under concurrent calls is enforced by the composite
// unique index, not by application locking.
func (r *PostgresLikeRepository) LikePost(userID, postID uint) (*models.Like, bool, error) {
	like := &models.Like{PostID: postID, UserID: userID}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(like)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return like, true, nil
}

// UnlikePost removes the like. Returns true iff a like existed and was
// removed.
func (r *PostgresLikeRepository) UnlikePost(userID, postID uint) (bool, error) {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetPostLikerIDs returns the ids of users who liked the post, newest
// first. Likes carry no payload beyond the fact, so only ids are returned.
func (r *PostgresLikeRepository) GetPostLikerIDs(postID uint, limit, offset int) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Like{}).
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Pluck("user_id", &ids).Error
	return ids, err
}

// GetUserLikedPostIDs returns the ids of posts the user has liked
func (r *PostgresLikeRepository) GetUserLikedPostIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Like{}).Where("user_id = ?", userID).Pluck("post_id", &ids).Error
	return ids, err
}

// GetLikesCount returns the number of live likes on the post
func (r *PostgresLikeRepository) GetLikesCount(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
