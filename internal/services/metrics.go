package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// ErrPostNotFound marks an engagement against a post the user does not own.
var ErrPostNotFound = errors.New("post not found")

// MetricsReader defines read operations for metrics.
type MetricsReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MetricsDB, error)
}

// PostFlagger latches engagement flags on a post.
type PostFlagger interface {
	SetFlag(ctx context.Context, postID, userID uuid.UUID, flag string) (bool, error)
}

// PostLister lists a user's posts.
type PostLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PostDB, error)
}

// MetricsService records engagement events and reads per-user counters.
// Likes and shares are cumulative: every click increments, while the
// per-post flag latches on the first one.
type MetricsService struct {
	metricsReader MetricsReader
	metricsWriter MetricsWriter
	postFlagger   PostFlagger
	postLister    PostLister
	kafkaWriter   KafkaWriter
}

// NewMetricsService creates a new MetricsService. kafkaWriter may be nil.
func NewMetricsService(
	metricsReader MetricsReader,
	metricsWriter MetricsWriter,
	postFlagger PostFlagger,
	postLister PostLister,
	kafkaWriter KafkaWriter,
) *MetricsService {
	return &MetricsService{
		metricsReader: metricsReader,
		metricsWriter: metricsWriter,
		postFlagger:   postFlagger,
		postLister:    postLister,
		kafkaWriter:   kafkaWriter,
	}
}

// RecordEngagement records one like or share click on a post owned by the
// user. The caller's ownership is enforced by the flag update.
func (s *MetricsService) RecordEngagement(ctx context.Context, userID, postID uuid.UUID, kind string) (*models.MetricsDB, error) {
	var metric string
	switch kind {
	case "like":
		metric = models.MetricLikes
	case "share":
		metric = models.MetricShares
	default:
		return nil, ErrValidation
	}

	flagged, err := s.postFlagger.SetFlag(ctx, postID, userID, kind+"d")
	if err != nil {
		logger.Log.Errorw("failed to flag post", "postID", postID, "kind", kind, "err", err)
		return nil, err
	}
	if !flagged {
		return nil, ErrPostNotFound
	}

	if err := s.metricsWriter.Increment(ctx, userID, metric, 1); err != nil {
		logger.Log.Errorw("failed to increment engagement counter", "userID", userID, "metric", metric, "err", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		PostID:    postID.String(),
		Kind:      kind,
	})

	return s.metricsReader.GetByUserID(ctx, userID)
}

// GetMetrics returns the user's counters, zeroes when no row exists yet.
func (s *MetricsService) GetMetrics(ctx context.Context, userID uuid.UUID) (*models.MetricsDB, error) {
	return s.metricsReader.GetByUserID(ctx, userID)
}

// ListPosts returns the user's generation history, newest first.
func (s *MetricsService) ListPosts(ctx context.Context, userID uuid.UUID) ([]models.PostDB, error) {
	return s.postLister.ListByUserID(ctx, userID)
}
