package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store := NewStore(config.SessionConfig{TTL: ttl, SweepInterval: 10 * time.Millisecond})
	t.Cleanup(store.Stop)
	return store
}

func newTestSession() *entity.EnrichmentSession {
	return &entity.EnrichmentSession{
		Transcript: []entity.ChatMessage{
			{Role: entity.RoleAssistant, Content: "What is your budget?"},
		},
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.True(t, strings.HasPrefix(id, "enrich_"))
	assert.NotEqual(t, id, NewID())
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t, time.Minute)

	id := store.Create(newTestSession())
	assert.True(t, strings.HasPrefix(id, "enrich_"))

	sess, err := store.Get(id)
	require.NoError(t, err)
	require.Len(t, sess.Transcript, 1)
	assert.False(t, sess.CreatedAt.IsZero())
	assert.False(t, sess.LastAccessedAt.IsZero())
}

func TestStore_GetUnknown(t *testing.T) {
	store := newTestStore(t, time.Minute)

	_, err := store.Get("enrich_00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestStore_Expiry(t *testing.T) {
	store := newTestStore(t, 50*time.Millisecond)
	id := store.Create(newTestSession())

	time.Sleep(120 * time.Millisecond)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestStore_GetSlidesExpiration(t *testing.T) {
	store := newTestStore(t, 100*time.Millisecond)
	id := store.Create(newTestSession())

	// Keep touching the session past the original TTL.
	for i := 0; i < 4; i++ {
		time.Sleep(60 * time.Millisecond)
		_, err := store.Get(id)
		require.NoError(t, err)
	}
}

func TestStore_SweepRemovesExpired(t *testing.T) {
	store := newTestStore(t, 30*time.Millisecond)
	store.Create(newTestSession())

	// The expired entry disappears from Stats without any Get touching it.
	assert.Eventually(t, func() bool {
		return store.Stats().ActiveSessions == 0
	}, time.Second, 10*time.Millisecond)
}

func TestStore_StopIsIdempotent(t *testing.T) {
	store := NewStore(config.SessionConfig{TTL: time.Minute, SweepInterval: 10 * time.Millisecond})
	id := store.Create(newTestSession())

	store.Stop()
	store.Stop()

	// TTLs are still enforced lazily after the sweep is gone.
	_, err := store.Get(id)
	require.NoError(t, err)
	_, err = store.Get("enrich_00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestStore_Update(t *testing.T) {
	store := newTestStore(t, time.Minute)
	id := store.Create(newTestSession())

	sess, err := store.Get(id)
	require.NoError(t, err)
	sess.Transcript = append(sess.Transcript,
		entity.ChatMessage{Role: entity.RoleUser, Content: "Around $50k"},
	)
	require.NoError(t, store.Update(id, sess))

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Len(t, got.Transcript, 2)
}

func TestStore_UpdateUnknown(t *testing.T) {
	store := newTestStore(t, time.Minute)

	err := store.Update("enrich_00000000-0000-0000-0000-000000000000", newTestSession())
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t, time.Minute)
	id := store.Create(newTestSession())

	store.Delete(id)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	// Deleting again is a no-op.
	store.Delete(id)
}

func TestStore_Stats(t *testing.T) {
	store := newTestStore(t, 30*time.Minute)

	assert.Equal(t, 0, store.Stats().ActiveSessions)

	id1 := store.Create(newTestSession())
	store.Create(newTestSession())

	stats := store.Stats()
	assert.Equal(t, 2, stats.ActiveSessions)
	assert.Equal(t, 30.0, stats.SessionTTLMinutes)

	store.Delete(id1)
	assert.Equal(t, 1, store.Stats().ActiveSessions)
}
