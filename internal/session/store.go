package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
)

// Store holds in-flight enrichment sessions with a sliding TTL. Every
// successful Get refreshes the expiration, so a conversation stays alive as
// long as the caller keeps talking. Expired sessions are removed by a
// background sweep and simply vanish; callers see ErrSessionNotFound.
type Store struct {
	cache     *cache.Cache
	ttl       time.Duration
	sweepStop chan struct{}
	stopOnce  sync.Once
}

// NewStore builds a store and starts its sweep goroutine. Callers own the
// lifecycle and must call Stop on shutdown.
func NewStore(cfg config.SessionConfig) *Store {
	// The cache's own janitor is disabled; the store runs its sweep itself
	// so shutdown can stop it deterministically.
	s := &Store{
		cache:     cache.New(cfg.TTL, 0),
		ttl:       cfg.TTL,
		sweepStop: make(chan struct{}),
	}
	go s.sweep(cfg.SweepInterval)
	return s
}

func (s *Store) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cache.DeleteExpired()
		case <-s.sweepStop:
			return
		}
	}
}

// Stop terminates the sweep goroutine. Safe to call more than once. Entries
// already stored stay readable until they expire; Get still enforces TTLs
// lazily after Stop.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.sweepStop) })
}

// NewID mints a fresh session identifier.
func NewID() string {
	return "enrich_" + uuid.New().String()
}

// Create stores a new session and returns its identifier.
func (s *Store) Create(sess *entity.EnrichmentSession) string {
	id := NewID()
	now := time.Now()
	sess.CreatedAt = now
	sess.LastAccessedAt = now
	s.cache.Set(id, sess, cache.DefaultExpiration)
	return id
}

// Get returns the session and refreshes its TTL.
func (s *Store) Get(id string) (*entity.EnrichmentSession, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	sess := v.(*entity.EnrichmentSession)
	sess.LastAccessedAt = time.Now()
	// Re-set to slide the expiration window.
	s.cache.Set(id, sess, cache.DefaultExpiration)

	return sess, nil
}

// Update replaces the stored session state and refreshes its TTL.
func (s *Store) Update(id string, sess *entity.EnrichmentSession) error {
	if _, ok := s.cache.Get(id); !ok {
		return entity.ErrSessionNotFound
	}

	sess.LastAccessedAt = time.Now()
	s.cache.Set(id, sess, cache.DefaultExpiration)

	return nil
}

// Delete removes a session. Deleting an absent session is a no-op.
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Stats reports the current number of live sessions and the configured TTL.
func (s *Store) Stats() entity.SessionStats {
	return entity.SessionStats{
		ActiveSessions:    s.cache.ItemCount(),
		SessionTTLMinutes: s.ttl.Minutes(),
	}
}
