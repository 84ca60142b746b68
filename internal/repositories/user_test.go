package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

func TestUserReadRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "access_code", "created_at", "country", "timezone", "is_subscribed"}).
			AddRow(userID, "jane@example.com", "LINKY2026A", time.Now(), "us", "America/New_York", true)
		mock.ExpectQuery("SELECT id, email, access_code, created_at, country, timezone, is_subscribed").
			WithArgs(userID).
			WillReturnRows(rows)

		user, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.True(t, user.IsSubscribed)
		assert.Equal(t, "us", *user.Country)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, access_code, created_at, country, timezone, is_subscribed").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	email := "jane@example.com"
	code := "LINKY2026A"
	country := "us"
	tz := "America/New_York"
	user := models.UserDB{
		UserID:       uuid.New(),
		Email:        &email,
		AccessCode:   &code,
		Country:      &country,
		Timezone:     &tz,
		IsSubscribed: true,
	}

	t.Run("Insert", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.UserID, email, code, country, tz, true).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(ctx, user)
		assert.NoError(t, err)
	})

	t.Run("ExecError", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.UserID, email, code, country, tz, true).
			WillReturnError(errors.New("connection reset"))

		err := repo.Save(ctx, user)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
