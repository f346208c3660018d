package repositories

import (
	"time"

	"github.com/rezwan-dev/feedstack/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentByIDAny(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID uint, limit, offset int) ([]models.Comment, error)
	GetCommentsCount(postID uint) (int64, error)
	UpdateComment(commentID, actingUserID uint, content string) (*models.Comment, error)
	DeleteComment(commentID, actingUserID uint) (bool, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a non-deleted comment by ID
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentByIDAny retrieves a comment by ID regardless of deletion state.
// Administrative use only; every public read path goes through the
// filtered variant.
func (r *PostgresCommentRepository) GetCommentByIDAny(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Unscoped().First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID retrieves non-deleted comments for a post, newest
// first. Offset pagination may shift page boundaries under concurrent
// inserts.
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

// GetCommentsCount returns the number of non-deleted comments on the post
func (r *PostgresCommentRepository) GetCommentsCount(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// UpdateComment replaces the content of a comment in one statement scoped
// to owner and non-deleted rows. Zero rows touched collapses to
// ErrNotFoundOrNotOwned regardless of why.
func (r *PostgresCommentRepository) UpdateComment(commentID, actingUserID uint, content string) (*models.Comment, error) {
	res := r.db.Model(&models.Comment{}).
		Where("id = ? AND user_id = ?", commentID, actingUserID).
		Updates(map[string]interface{}{"content": content, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFoundOrNotOwned
	}
	var comment models.Comment
	if err := r.db.First(&comment, commentID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment soft-deletes a comment owned by actingUserID. Returns true
// iff a non-deleted owned row existed; the row is never physically erased.
func (r *PostgresCommentRepository) DeleteComment(commentID, actingUserID uint) (bool, error) {
	res := r.db.Where("user_id = ?", actingUserID).Delete(&models.Comment{}, commentID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
