package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// flagColumns whitelists post flag column names for SetFlag.
var flagColumns = map[string]bool{
	"liked":  true,
	"shared": true,
}

type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// ListByUserID returns the user's posts, newest first.
func (r *PostReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PostDB, error) {
	const query = `
		SELECT id, user_id, content, word_count, created_at, liked, shared
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var posts []models.PostDB
	err := r.db.SelectContext(ctx, &posts, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// CountByUserID returns how many posts the user has generated.
func (r *PostReadRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM posts WHERE user_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}

type PostWriteRepository struct {
	db *sqlx.DB
}

func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

// Save inserts a fully generated post.
func (r *PostWriteRepository) Save(ctx context.Context, post models.PostDB) error {
	query := `
		INSERT INTO posts (id, user_id, content, word_count, created_at, liked, shared)
		VALUES ($1, $2, $3, $4, NOW(), FALSE, FALSE)
	`
	args := []any{post.PostID, post.UserID, post.Content, post.WordCount}

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

// SetFlag latches a post flag ("liked" or "shared") to true. The user ID
// guards against flagging another user's post; it reports whether the post
// belongs to the user.
func (r *PostWriteRepository) SetFlag(ctx context.Context, postID, userID uuid.UUID, flag string) (bool, error) {
	if !flagColumns[flag] {
		return false, fmt.Errorf("unknown post flag %q", flag)
	}

	query := fmt.Sprintf(`
		UPDATE posts
		SET %s = TRUE
		WHERE id = $1 AND user_id = $2
	`, flag)
	args := []any{postID, userID}

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
