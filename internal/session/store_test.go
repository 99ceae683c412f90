package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(now *time.Time) *MemoryStore {
	m := NewMemoryStore()
	m.now = func() time.Time { return *now }
	return m
}

func TestMemoryStore_CreateGet(t *testing.T) {
	now := t0
	m := newTestStore(&now)
	ctx := context.Background()

	require.ErrorIs(t, m.Create(ctx, nil), ErrInvalidSession)
	require.ErrorIs(t, m.Create(ctx, &Session{}), ErrInvalidSession)

	s := New("tok", time.Hour, t0)
	require.NoError(t, m.Create(ctx, s))

	got, err := m.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// copies never alias the stored session
	got.Click("/rooms")
	again, err := m.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, again.Clicks)

	_, err = m.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_GetExpired(t *testing.T) {
	now := t0
	m := newTestStore(&now)
	ctx := context.Background()

	require.NoError(t, m.Create(ctx, New("tok", time.Minute, t0)))

	now = t0.Add(2 * time.Minute)
	_, err := m.Get(ctx, "tok")
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Zero(t, m.Len(), "expired session is dropped on read")
}

func TestMemoryStore_Modify(t *testing.T) {
	now := t0
	m := newTestStore(&now)
	ctx := context.Background()

	require.NoError(t, m.Create(ctx, New("tok", time.Minute, t0)))

	s, err := m.Modify(ctx, "tok", func(s *Session) { s.Click("/rooms/1") })
	require.NoError(t, err)
	assert.Equal(t, 1, s.Clicks["/rooms/1"])

	_, err = m.Modify(ctx, "missing", func(*Session) { t.Fatal("must not run") })
	require.ErrorIs(t, err, ErrSessionNotFound)

	now = t0.Add(time.Hour)
	_, err = m.Modify(ctx, "tok", func(*Session) { t.Fatal("must not run") })
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestMemoryStore_ModifyConcurrent(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, m.Create(ctx, New("tok", time.Hour, time.Now())))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Modify(ctx, "tok", func(s *Session) { s.Click("/rooms") })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	s, err := m.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 50, s.Clicks["/rooms"])
}

func TestMemoryStore_GetWhileModifying(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, m.Create(ctx, New("tok", time.Hour, time.Now())))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := m.Modify(ctx, "tok", func(s *Session) {
				s.Touch(time.Hour, time.Now())
				s.Click("/rooms")
			})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			s, err := m.Get(ctx, "tok")
			if assert.NoError(t, err) {
				assert.LessOrEqual(t, s.Clicks["/rooms"], 20)
			}
		}()
	}
	wg.Wait()

	s, err := m.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 20, s.Clicks["/rooms"])
}

func TestMemoryStore_GetExpiredThenRecreated(t *testing.T) {
	now := t0
	m := newTestStore(&now)
	ctx := context.Background()

	require.NoError(t, m.Create(ctx, New("tok", time.Minute, t0)))

	now = t0.Add(time.Hour)
	_, err := m.Get(ctx, "tok")
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Zero(t, m.Len())

	require.NoError(t, m.Create(ctx, New("tok", time.Hour, now)))
	s, err := m.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	now := t0
	m := newTestStore(&now)
	ctx := context.Background()

	require.NoError(t, m.Create(ctx, New("short", time.Minute, t0)))
	require.NoError(t, m.Create(ctx, New("long", time.Hour, t0)))

	now = t0.Add(10 * time.Minute)
	removed, err := m.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Delete(ctx, "long"))
	require.NoError(t, m.Delete(ctx, "long"))
	assert.Zero(t, m.Len())
}

func TestSession_Touch(t *testing.T) {
	s := New("tok", time.Minute, t0)
	later := t0.Add(30 * time.Second)

	s.Touch(time.Minute, later)

	assert.Equal(t, later, s.LastActivityAt)
	assert.Equal(t, later.Add(time.Minute), s.ExpiresAt)
	assert.False(t, s.IsExpired(t0.Add(80*time.Second)))
}
