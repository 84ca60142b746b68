package models

import (
	"time"

	"github.com/google/uuid"
)

// Metric names accepted by the metrics repositories.
const (
	MetricPostsGenerated = "posts_generated"
	MetricLikes          = "likes_count"
	MetricShares         = "shares_count"
)

// MetricsDB represents per-user engagement counters, one row per user
type MetricsDB struct {
	MetricsID      uuid.UUID `json:"id" db:"id"`                           // Primary key
	UserID         uuid.UUID `json:"user_id" db:"user_id"`                 // Owning user, unique
	PostsGenerated int       `json:"posts_generated" db:"posts_generated"` // Successful generations
	LikesCount     int       `json:"likes_count" db:"likes_count"`         // Like clicks, cumulative
	SharesCount    int       `json:"shares_count" db:"shares_count"`       // Share clicks, cumulative
	LastUpdated    time.Time `json:"last_updated" db:"last_updated"`       // Last counter change
}
