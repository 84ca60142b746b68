package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

func TestPostReadRepository_ListByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "user_id", "content", "word_count", "created_at", "liked", "shared"}).
		AddRow(uuid.New(), userID, "newest post", 120, time.Now(), true, false).
		AddRow(uuid.New(), userID, "older post", 300, time.Now().Add(-time.Hour), false, false)
	mock.ExpectQuery("SELECT id, user_id, content, word_count, created_at, liked, shared").
		WithArgs(userID).
		WillReturnRows(rows)

	posts, err := repo.ListByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "newest post", posts[0].Content)
	assert.True(t, posts[0].Liked)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostReadRepository_CountByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db)
	ctx := context.Background()

	post := models.PostDB{
		PostID:    uuid.New(),
		UserID:    uuid.New(),
		Content:   "generated text",
		WordCount: 42,
	}

	mock.ExpectExec("INSERT INTO posts").
		WithArgs(post.PostID, post.UserID, post.Content, post.WordCount).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(ctx, post)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostWriteRepository_SetFlag(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db)
	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()

	t.Run("OwnedPost", func(t *testing.T) {
		mock.ExpectExec("UPDATE posts").
			WithArgs(postID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.SetFlag(ctx, postID, userID, "liked")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NotOwned", func(t *testing.T) {
		mock.ExpectExec("UPDATE posts").
			WithArgs(postID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.SetFlag(ctx, postID, userID, "shared")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("UnknownFlagRejected", func(t *testing.T) {
		ok, err := repo.SetFlag(ctx, postID, userID, "pinned")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
