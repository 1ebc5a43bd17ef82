package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/db_models"
)

// CacheStore is the content-addressed itinerary cache. Writes are
// deliberately unsynchronized last-writer-wins: payloads are deterministic
// per normalized key, so concurrent duplicate computations overwriting each
// other is benign.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, payload []byte) error
}

// ---------- in-memory store ----------

type memoryCacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

type memoryCacheStore struct {
	mu   sync.RWMutex
	data map[string]memoryCacheEntry
	ttl  time.Duration
}

func NewMemoryCacheStore(ttl time.Duration) CacheStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &memoryCacheStore{
		data: make(map[string]memoryCacheEntry),
		ttl:  ttl,
	}
}

func (s *memoryCacheStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false, nil
	}
	return e.payload, true, nil
}

func (s *memoryCacheStore) Put(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = memoryCacheEntry{
		payload:   payload,
		expiresAt: time.Now().Add(s.ttl),
	}

	// Opportunistic cleanup once the map grows past a working-set bound.
	if len(s.data) > 1000 {
		now := time.Now()
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
	return nil
}

// ---------- postgres store ----------

type postgresCacheStore struct {
	db *gorm.DB
}

func NewPostgresCacheStore(db *gorm.DB) CacheStore {
	return &postgresCacheStore{db: db}
}

func (s *postgresCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row db_models.CachedItinerary
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Payload, true, nil
}

func (s *postgresCacheStore) Put(ctx context.Context, key string, payload []byte) error {
	row := db_models.CachedItinerary{Key: key, Payload: payload}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}
