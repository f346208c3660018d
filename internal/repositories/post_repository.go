package repositories

import (
	"strings"
	"time"

	"github.com/rezwan-dev/feedstack/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations, including
// feed assembly and content search
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostByIDAny(id uint) (*models.Post, error)
	GetUserPosts(userID uint, limit, offset int) ([]models.Post, error)
	UpdatePost(postID, actingUserID uint, updates models.UpdatePostRequest) (*models.Post, error)
	DeletePost(postID, actingUserID uint) (bool, error)
	GetFeed(userID uint, limit, offset int) ([]models.FeedPost, error)
	SearchPosts(term string, limit, offset int) ([]models.Post, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a non-deleted post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostByIDAny retrieves a post by ID regardless of deletion state.
// Administrative use only.
func (r *PostgresPostRepository) GetPostByIDAny(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Unscoped().First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetUserPosts retrieves a single user's non-deleted posts, newest first
func (r *PostgresPostRepository) GetUserPosts(userID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

// UpdatePost applies the present fields of a partial update in one
// statement scoped to owner and non-deleted rows; absent fields are left
// untouched. Zero rows touched collapses to ErrNotFoundOrNotOwned. The
// caller is expected to reject an update with no fields set.
func (r *PostgresPostRepository) UpdatePost(postID, actingUserID uint, updates models.UpdatePostRequest) (*models.Post, error) {
	fields := map[string]interface{}{"updated_at": time.Now()}
	if updates.Content != nil {
		fields["content"] = *updates.Content
	}
	if updates.MediaURL != nil {
		fields["media_url"] = *updates.MediaURL
	}
	if updates.CommentsEnabled != nil {
		fields["comments_enabled"] = *updates.CommentsEnabled
	}

	res := r.db.Model(&models.Post{}).
		Where("id = ? AND user_id = ?", postID, actingUserID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFoundOrNotOwned
	}
	var post models.Post
	if err := r.db.First(&post, postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost soft-deletes a post owned by actingUserID. Returns true iff a
// non-deleted owned row existed. Comments and likes under the post are not
// cascaded; they simply become unreachable through feed and listing paths.
func (r *PostgresPostRepository) DeletePost(postID, actingUserID uint) (bool, error) {
	res := r.db.Where("user_id = ?", actingUserID).Delete(&models.Post{}, postID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetFeed assembles the paginated feed for a user: non-deleted posts owned
// by the user or by anyone the user follows, ordered by created_at
// descending with id descending as tie-break, each annotated with live
// like and non-deleted comment counts.
func (r *PostgresPostRepository) GetFeed(userID uint, limit, offset int) ([]models.FeedPost, error) {
	following := r.db.Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", userID)

	var feed []models.FeedPost
	err := r.db.Model(&models.Post{}).
		Select(`posts.*,
			(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count,
			(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) AS comment_count`).
		Where("posts.user_id = ? OR posts.user_id IN (?)", userID, following).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).Offset(offset).
		Scan(&feed).Error
	return feed, err
}

// SearchPosts matches non-deleted posts whose content or media URL
// contains the term, case-insensitively. Search is global; it is not
// scoped by the social graph.
func (r *PostgresPostRepository) SearchPosts(term string, limit, offset int) ([]models.Post, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var posts []models.Post
	err := r.db.Where("LOWER(content) LIKE ? OR LOWER(media_url) LIKE ?", pattern, pattern).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}
