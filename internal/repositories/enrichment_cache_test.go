package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

func newCacheRepo(t *testing.T) (*EnrichmentCacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewEnrichmentCacheRepository(client, 15*time.Minute), mr
}

func TestEnrichmentCacheRepository_RoundTrip(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	bundle := models.ContextBundle{
		Facts: []string{"- AI hiring up 40% (TechCrunch)"},
		Sources: []models.SourceLink{
			{Title: "AI hiring up 40%", URL: "https://example.com/article"},
		},
	}

	err := repo.SetBundle(ctx, "AI recruiting", "Global (International)", bundle)
	assert.NoError(t, err)

	got, err := repo.GetBundle(ctx, "AI recruiting", "Global (International)")
	assert.NoError(t, err)
	assert.Equal(t, bundle.Facts, got.Facts)
	assert.Equal(t, bundle.Sources, got.Sources)
}

func TestEnrichmentCacheRepository_MissAndExpiry(t *testing.T) {
	repo, mr := newCacheRepo(t)
	ctx := context.Background()

	_, err := repo.GetBundle(ctx, "unseen topic", "Europe (EU/UK)")
	assert.Error(t, err)

	err = repo.SetBundle(ctx, "unseen topic", "Europe (EU/UK)", models.ContextBundle{Facts: []string{"f"}})
	assert.NoError(t, err)

	mr.FastForward(16 * time.Minute)

	_, err = repo.GetBundle(ctx, "unseen topic", "Europe (EU/UK)")
	assert.Error(t, err)
}

func TestEnrichmentCacheRepository_KeysScopedByRegion(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	err := repo.SetBundle(ctx, "AI", "Europe (EU/UK)", models.ContextBundle{Facts: []string{"eu fact"}})
	assert.NoError(t, err)

	_, err = repo.GetBundle(ctx, "AI", "Asia Pacific")
	assert.Error(t, err)

	got, err := repo.GetBundle(ctx, "AI", "Europe (EU/UK)")
	assert.NoError(t, err)
	assert.Equal(t, []string{"eu fact"}, got.Facts)
}
