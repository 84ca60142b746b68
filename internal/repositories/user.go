package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// Get returns the user record, or nil when no user with that ID exists.
func (r *UserReadRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT id, email, access_code, created_at, country, timezone, is_subscribed
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts the user, or updates the mutable fields of an existing row.
// The subscription flag only transitions false to true.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	query := `
		INSERT INTO users (id, email, access_code, created_at, country, timezone, is_subscribed)
		VALUES ($1, $2, $3, NOW(), $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET email = COALESCE(EXCLUDED.email, users.email),
		    access_code = COALESCE(EXCLUDED.access_code, users.access_code),
		    is_subscribed = users.is_subscribed OR EXCLUDED.is_subscribed
	`
	args := []any{user.UserID, user.Email, user.AccessCode, user.Country, user.Timezone, user.IsSubscribed}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
