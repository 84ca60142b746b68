package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// EnrichmentCacheRepository caches enrichment bundles in Redis so repeated
// topics skip the news APIs
type EnrichmentCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached bundles
}

// NewEnrichmentCacheRepository creates a new repository instance with optional TTL
func NewEnrichmentCacheRepository(client *redis.Client, expiration time.Duration) *EnrichmentCacheRepository {
	return &EnrichmentCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetBundle fetches a cached enrichment bundle for a topic and region
func (r *EnrichmentCacheRepository) GetBundle(ctx context.Context, topic, region string) (*models.ContextBundle, error) {
	key := fmt.Sprintf("enrichment:%s:%s", region, topic)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("enrichment not found in cache for %s/%s", region, topic)
		}
		return nil, err
	}

	var bundle models.ContextBundle
	if err := json.Unmarshal([]byte(val), &bundle); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(bundle.Facts),
		"error", nil,
	)

	return &bundle, nil
}

// SetBundle caches an enrichment bundle in Redis with expiration
func (r *EnrichmentCacheRepository) SetBundle(ctx context.Context, topic, region string, bundle models.ContextBundle) error {
	key := fmt.Sprintf("enrichment:%s:%s", region, topic)

	data, err := json.Marshal(bundle)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"facts", len(bundle.Facts),
		"result", "ok",
		"error", err,
	)

	return err
}
