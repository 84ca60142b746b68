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

type AccessCodeReadRepository struct {
	db *sqlx.DB
}

func NewAccessCodeReadRepository(db *sqlx.DB) *AccessCodeReadRepository {
	return &AccessCodeReadRepository{db: db}
}

// Get returns the access code record, or nil when the code is not provisioned.
func (r *AccessCodeReadRepository) Get(ctx context.Context, code string) (*models.AccessCodeDB, error) {
	const query = `
		SELECT code, is_used, used_by, created_at
		FROM access_codes
		WHERE code = $1
	`

	var ac models.AccessCodeDB
	err := r.db.GetContext(ctx, &ac, query, code)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ac, nil
}

type AccessCodeWriteRepository struct {
	db *sqlx.DB
}

func NewAccessCodeWriteRepository(db *sqlx.DB) *AccessCodeWriteRepository {
	return &AccessCodeWriteRepository{db: db}
}

// Consume marks the code used by userID. The conditional update is the
// atomicity point: with concurrent callers on the same unused code, exactly
// one observes a row affected.
func (r *AccessCodeWriteRepository) Consume(ctx context.Context, code string, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE access_codes
		SET is_used = TRUE, used_by = $2
		WHERE code = $1 AND is_used = FALSE
	`
	args := []any{code, userID}

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

	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}
