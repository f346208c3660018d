package repositories

import (
	"testing"
	"time"

	"github.com/rezwan-dev/feedstack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePostTwiceLeavesOneLike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "hello", time.Now())

	like, created, err := repo.LikePost(alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, like)

	again, created, err := repo.LikePost(alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, again)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnlikeThenUnlikeAgain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "hello", time.Now())

	_, _, err := repo.LikePost(alice.ID, post.ID)
	require.NoError(t, err)

	removed, err := repo.UnlikePost(alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.UnlikePost(alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRelikeAfterUnlike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "hello", time.Now())

	_, _, err := repo.LikePost(alice.ID, post.ID)
	require.NoError(t, err)
	_, err = repo.UnlikePost(alice.ID, post.ID)
	require.NoError(t, err)

	_, created, err := repo.LikePost(alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestGetPostLikerIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	post := createTestPost(t, db, alice.ID, "hello", time.Now())

	for _, u := range []uint{alice.ID, bob.ID, carol.ID} {
		_, _, err := repo.LikePost(u, post.ID)
		require.NoError(t, err)
	}

	ids, err := repo.GetPostLikerIDs(post.ID, 20, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{alice.ID, bob.ID, carol.ID}, ids)

	page, err := repo.GetPostLikerIDs(post.ID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	count, err := repo.GetLikesCount(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGetUserLikedPostIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	p1 := createTestPost(t, db, bob.ID, "one", time.Now())
	p2 := createTestPost(t, db, bob.ID, "two", time.Now())

	_, _, err := repo.LikePost(alice.ID, p1.ID)
	require.NoError(t, err)
	_, _, err = repo.LikePost(alice.ID, p2.ID)
	require.NoError(t, err)

	ids, err := repo.GetUserLikedPostIDs(alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{p1.ID, p2.ID}, ids)

	liked, err := repo.HasUserLikedPost(alice.ID, p1.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasUserLikedPost(bob.ID, p1.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}
