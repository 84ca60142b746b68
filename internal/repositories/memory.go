package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// MemoryStore is the bypass-mode backend: all state lives in process memory
// and is lost on restart. Access codes validate by membership and are never
// marked used, so the same code unlocks any number of sessions. This is a
// deliberate relaxation for zero-setup trial use, not a bug.
//
// The per-table views (AccessCodes, Users, Metrics, Posts) expose the same
// method sets as the Postgres repositories, so services are wired
// identically in either mode.
type MemoryStore struct {
	mu      sync.Mutex
	codes   map[string]time.Time
	users   map[uuid.UUID]models.UserDB
	metrics map[uuid.UUID]models.MetricsDB
	posts   []models.PostDB
}

// NewMemoryStore creates a bypass-mode store pre-seeded with the given codes.
func NewMemoryStore(codes []string) *MemoryStore {
	s := &MemoryStore{
		codes:   make(map[string]time.Time, len(codes)),
		users:   make(map[uuid.UUID]models.UserDB),
		metrics: make(map[uuid.UUID]models.MetricsDB),
	}
	now := time.Now()
	for _, c := range codes {
		s.codes[c] = now
	}
	return s
}

// AccessCodes returns the access-code view of the store.
func (s *MemoryStore) AccessCodes() *MemoryAccessCodeRepository {
	return &MemoryAccessCodeRepository{s: s}
}

// Users returns the user view of the store.
func (s *MemoryStore) Users() *MemoryUserRepository {
	return &MemoryUserRepository{s: s}
}

// Metrics returns the metrics view of the store.
func (s *MemoryStore) Metrics() *MemoryMetricsRepository {
	return &MemoryMetricsRepository{s: s}
}

// Posts returns the post view of the store.
func (s *MemoryStore) Posts() *MemoryPostRepository {
	return &MemoryPostRepository{s: s}
}

type MemoryAccessCodeRepository struct {
	s *MemoryStore
}

// Get returns the access code record, or nil when the code is not seeded.
// IsUsed is always false in bypass mode.
func (r *MemoryAccessCodeRepository) Get(ctx context.Context, code string) (*models.AccessCodeDB, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created, ok := r.s.codes[code]
	if !ok {
		return nil, nil
	}
	return &models.AccessCodeDB{Code: code, IsUsed: false, CreatedAt: created}, nil
}

// Consume reports success without marking anything: codes stay reusable.
func (r *MemoryAccessCodeRepository) Consume(ctx context.Context, code string, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.codes[code]
	return ok, nil
}

type MemoryUserRepository struct {
	s *MemoryStore
}

// Get returns the user record, or nil when unknown.
func (r *MemoryUserRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Save inserts or updates the user record. The subscription flag only
// transitions false to true.
func (r *MemoryUserRepository) Save(ctx context.Context, user models.UserDB) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if existing, ok := r.s.users[user.UserID]; ok {
		if user.Email == nil {
			user.Email = existing.Email
		}
		if user.AccessCode == nil {
			user.AccessCode = existing.AccessCode
		}
		user.IsSubscribed = user.IsSubscribed || existing.IsSubscribed
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = time.Now()
	}
	r.s.users[user.UserID] = user
	return nil
}

type MemoryMetricsRepository struct {
	s *MemoryStore
}

// GetByUserID returns the user's counters, zero-valued when absent.
func (r *MemoryMetricsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MetricsDB, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.metrics[userID]
	if !ok {
		return &models.MetricsDB{UserID: userID}, nil
	}
	return &m, nil
}

// Increment adds delta to one counter, creating the entry on first use.
func (r *MemoryMetricsRepository) Increment(ctx context.Context, userID uuid.UUID, metric string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.metrics[userID]
	if !ok {
		m = models.MetricsDB{MetricsID: uuid.New(), UserID: userID}
	}

	switch metric {
	case models.MetricPostsGenerated:
		m.PostsGenerated += delta
	case models.MetricLikes:
		m.LikesCount += delta
	case models.MetricShares:
		m.SharesCount += delta
	default:
		return fmt.Errorf("unknown metric %q", metric)
	}

	m.LastUpdated = time.Now()
	r.s.metrics[userID] = m
	return nil
}

type MemoryPostRepository struct {
	s *MemoryStore
}

// Save appends a generated post.
func (r *MemoryPostRepository) Save(ctx context.Context, post models.PostDB) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	post.CreatedAt = time.Now()
	r.s.posts = append(r.s.posts, post)
	return nil
}

// ListByUserID returns the user's posts, newest first.
func (r *MemoryPostRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PostDB, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var posts []models.PostDB
	for _, p := range r.s.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// CountByUserID returns how many posts the user has generated.
func (r *MemoryPostRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for _, p := range r.s.posts {
		if p.UserID == userID {
			count++
		}
	}
	return count, nil
}

// SetFlag latches a post flag to true, reporting whether the post belongs
// to the user.
func (r *MemoryPostRepository) SetFlag(ctx context.Context, postID, userID uuid.UUID, flag string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.posts {
		if r.s.posts[i].PostID != postID || r.s.posts[i].UserID != userID {
			continue
		}
		switch flag {
		case "liked":
			r.s.posts[i].Liked = true
		case "shared":
			r.s.posts[i].Shared = true
		default:
			return false, fmt.Errorf("unknown post flag %q", flag)
		}
		return true, nil
	}
	return false, nil
}
