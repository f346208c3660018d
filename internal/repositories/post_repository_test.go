package repositories

import (
	"testing"
	"time"

	"github.com/rezwan-dev/feedstack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFeedScenario(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	followRepo := NewPostgresFollowRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	u1 := createTestUser(t, db, "u1")
	u2 := createTestUser(t, db, "u2")
	u3 := createTestUser(t, db, "u3")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p1 := createTestPost(t, db, u1.ID, "first post", base)
	p2 := createTestPost(t, db, u1.ID, "second post", base.Add(time.Minute))

	_, _, err := followRepo.Follow(u2.ID, u1.ID)
	require.NoError(t, err)

	feed, err := postRepo.GetFeed(u2.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, p2.ID, feed[0].ID)
	assert.Equal(t, p1.ID, feed[1].ID)
	assert.Equal(t, int64(0), feed[0].LikeCount)
	assert.Equal(t, int64(0), feed[0].CommentCount)
	assert.Equal(t, int64(0), feed[1].LikeCount)
	assert.Equal(t, int64(0), feed[1].CommentCount)

	_, _, err = likeRepo.LikePost(u3.ID, p2.ID)
	require.NoError(t, err)

	feed, err = postRepo.GetFeed(u2.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, int64(1), feed[0].LikeCount)
	assert.Equal(t, int64(0), feed[1].LikeCount)
}

func TestFeedVisibilityPredicate(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	followRepo := NewPostgresFollowRepository(db)

	me := createTestUser(t, db, "me")
	friend := createTestUser(t, db, "friend")
	stranger := createTestUser(t, db, "stranger")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mine := createTestPost(t, db, me.ID, "mine", base)
	theirs := createTestPost(t, db, friend.ID, "theirs", base.Add(time.Minute))
	createTestPost(t, db, stranger.ID, "invisible", base.Add(2*time.Minute))

	_, _, err := followRepo.Follow(me.ID, friend.ID)
	require.NoError(t, err)

	feed, err := postRepo.GetFeed(me.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, theirs.ID, feed[0].ID)
	assert.Equal(t, mine.ID, feed[1].ID)
}

func TestFeedPaginationIsContiguous(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)

	me := createTestUser(t, db, "me")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 5; i++ {
		p := createTestPost(t, db, me.ID, "post", base.Add(time.Duration(i)*time.Minute))
		ids = append(ids, p.ID)
	}

	first, err := postRepo.GetFeed(me.ID, 2, 0)
	require.NoError(t, err)
	second, err := postRepo.GetFeed(me.ID, 2, 2)
	require.NoError(t, err)
	third, err := postRepo.GetFeed(me.ID, 2, 4)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	require.Len(t, third, 1)

	// Disjoint, contiguous, reverse-chronological slices
	assert.Equal(t, ids[4], first[0].ID)
	assert.Equal(t, ids[3], first[1].ID)
	assert.Equal(t, ids[2], second[0].ID)
	assert.Equal(t, ids[1], second[1].ID)
	assert.Equal(t, ids[0], third[0].ID)
}

func TestFeedCountsExcludeDeletedComments(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	commentRepo := NewPostgresCommentRepository(db)

	me := createTestUser(t, db, "me")
	post := createTestPost(t, db, me.ID, "hello", time.Now())

	createTestComment(t, db, me.ID, post.ID, "kept")
	dropped := createTestComment(t, db, me.ID, post.ID, "dropped")

	removed, err := commentRepo.DeleteComment(dropped.ID, me.ID)
	require.NoError(t, err)
	require.True(t, removed)

	feed, err := postRepo.GetFeed(me.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, int64(1), feed[0].CommentCount)
}

func TestSoftDeletedPostDisappearsFromReads(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	followRepo := NewPostgresFollowRepository(db)

	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p1 := createTestPost(t, db, author.ID, "doomed", base)
	p2 := createTestPost(t, db, author.ID, "kept", base.Add(time.Minute))

	_, _, err := followRepo.Follow(reader.ID, author.ID)
	require.NoError(t, err)

	deleted, err := postRepo.DeletePost(p1.ID, author.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	feed, err := postRepo.GetFeed(reader.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, p2.ID, feed[0].ID)

	posts, err := postRepo.GetUserPosts(author.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, p2.ID, posts[0].ID)

	_, err = postRepo.GetPostByID(p1.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Administrative path still sees the row, flagged as deleted
	row, err := postRepo.GetPostByIDAny(p1.ID)
	require.NoError(t, err)
	assert.True(t, row.DeletedAt.Valid)
}

func TestDeletePostMergedFailure(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	post := createTestPost(t, db, author.ID, "hello", time.Now())

	deleted, err := postRepo.DeletePost(post.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = postRepo.DeletePost(99999, author.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = postRepo.DeletePost(post.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = postRepo.DeletePost(post.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUpdatePostPartialFields(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "author")
	post := &models.Post{
		UserID:          author.ID,
		Content:         "original",
		MediaURL:        "https://cdn.example.com/a.jpg",
		CommentsEnabled: true,
	}
	require.NoError(t, db.Create(post).Error)

	newContent := "edited"
	updated, err := postRepo.UpdatePost(post.ID, author.ID, models.UpdatePostRequest{Content: &newContent})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	// Absent fields stay untouched
	assert.Equal(t, "https://cdn.example.com/a.jpg", updated.MediaURL)
	assert.True(t, updated.CommentsEnabled)
	assert.NotNil(t, updated.UpdatedAt)

	disabled := false
	updated, err = postRepo.UpdatePost(post.ID, author.ID, models.UpdatePostRequest{CommentsEnabled: &disabled})
	require.NoError(t, err)
	assert.False(t, updated.CommentsEnabled)
	assert.Equal(t, "edited", updated.Content)
}

func TestUpdatePostMergedFailure(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	post := createTestPost(t, db, author.ID, "hello", time.Now())

	content := "hijack"
	_, err := postRepo.UpdatePost(post.ID, other.ID, models.UpdatePostRequest{Content: &content})
	assert.ErrorIs(t, err, ErrNotFoundOrNotOwned)

	_, err = postRepo.UpdatePost(99999, author.ID, models.UpdatePostRequest{Content: &content})
	assert.ErrorIs(t, err, ErrNotFoundOrNotOwned)

	_, err = postRepo.DeletePost(post.ID, author.ID)
	require.NoError(t, err)

	_, err = postRepo.UpdatePost(post.ID, author.ID, models.UpdatePostRequest{Content: &content})
	assert.ErrorIs(t, err, ErrNotFoundOrNotOwned)
}

func TestSearchPosts(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "author")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	match := createTestPost(t, db, author.ID, "Hello world", base)
	createTestPost(t, db, author.ID, "unrelated", base.Add(time.Minute))
	doomed := createTestPost(t, db, author.ID, "hello again", base.Add(2*time.Minute))

	media := &models.Post{
		UserID:    author.ID,
		Content:   "look at this",
		MediaURL:  "https://cdn.example.com/hello.png",
		CreatedAt: base.Add(3 * time.Minute),
	}
	require.NoError(t, db.Create(media).Error)

	_, err := postRepo.DeletePost(doomed.ID, author.ID)
	require.NoError(t, err)

	// Case-insensitive over content and media URL, deleted rows excluded
	results, err := postRepo.SearchPosts("hello", 20, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, media.ID, results[0].ID)
	assert.Equal(t, match.ID, results[1].ID)
}
