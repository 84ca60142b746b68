package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// metricColumns whitelists counter column names for Increment.
var metricColumns = map[string]bool{
	models.MetricPostsGenerated: true,
	models.MetricLikes:          true,
	models.MetricShares:         true,
}

type MetricsReadRepository struct {
	db *sqlx.DB
}

func NewMetricsReadRepository(db *sqlx.DB) *MetricsReadRepository {
	return &MetricsReadRepository{db: db}
}

// GetByUserID returns the user's counters. A user with no metrics row yet
// gets a zero-valued result.
func (r *MetricsReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MetricsDB, error) {
	const query = `
		SELECT id, user_id, posts_generated, likes_count, shares_count, last_updated
		FROM metrics
		WHERE user_id = $1
	`

	var m models.MetricsDB
	err := r.db.GetContext(ctx, &m, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return &models.MetricsDB{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

type MetricsWriteRepository struct {
	db *sqlx.DB
}

func NewMetricsWriteRepository(db *sqlx.DB) *MetricsWriteRepository {
	return &MetricsWriteRepository{db: db}
}

// Increment adds delta to one counter, creating the metrics row on first use.
func (r *MetricsWriteRepository) Increment(ctx context.Context, userID uuid.UUID, metric string, delta int) error {
	if !metricColumns[metric] {
		return fmt.Errorf("unknown metric %q", metric)
	}

	query := fmt.Sprintf(`
		INSERT INTO metrics (id, user_id, %[1]s, last_updated)
		VALUES (gen_random_uuid(), $1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET %[1]s = metrics.%[1]s + $2,
		    last_updated = NOW()
	`, metric)
	args := []any{userID, delta}

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
