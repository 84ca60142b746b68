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

func TestMetricsReadRepository_GetByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMetricsReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "posts_generated", "likes_count", "shares_count", "last_updated"}).
			AddRow(uuid.New(), userID, 5, 3, 1, time.Now())
		mock.ExpectQuery("SELECT id, user_id, posts_generated, likes_count, shares_count, last_updated").
			WithArgs(userID).
			WillReturnRows(rows)

		m, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 5, m.PostsGenerated)
		assert.Equal(t, 3, m.LikesCount)
		assert.Equal(t, 1, m.SharesCount)
	})

	t.Run("NoRowYieldsZeroes", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, posts_generated, likes_count, shares_count, last_updated").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		m, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, m)
		assert.Equal(t, userID, m.UserID)
		assert.Equal(t, 0, m.PostsGenerated)
		assert.Equal(t, 0, m.LikesCount)
		assert.Equal(t, 0, m.SharesCount)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricsWriteRepository_Increment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMetricsWriteRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("KnownMetric", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO metrics").
			WithArgs(userID, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Increment(ctx, userID, models.MetricLikes, 1)
		assert.NoError(t, err)
	})

	t.Run("UnknownMetricRejected", func(t *testing.T) {
		err := repo.Increment(ctx, userID, "posts_generated; DROP TABLE metrics", 1)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
