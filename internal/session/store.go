package session

import (
	"context"
	"sync"
	"time"
)

//go:generate mockgen -source=store.go -destination=../mock/session_mock.go -package=mock

// Store persists sessions by token.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, s *Session) error

	// Get returns a copy of the session with the given token.
	Get(ctx context.Context, token string) (*Session, error)

	// Modify applies fn to the stored session atomically and returns a copy
	// of the result.
	Modify(ctx context.Context, token string, fn func(*Session)) (*Session, error)

	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every expired session and returns how many
	// were removed.
	DeleteExpired(ctx context.Context) (int, error)
}

// MemoryStore is a [Store] kept in process memory. Sessions are lost on
// restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(ctx context.Context, s *Session) error {
	if s == nil || s.Token == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.Token] = s.clone()
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	if !ok {
		m.mu.RUnlock()
		return nil, ErrSessionNotFound
	}
	if !s.IsExpired(m.now()) {
		c := s.clone()
		m.mu.RUnlock()
		return c, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// the session may have been replaced or deleted between the locks
	if s, ok = m.sessions[token]; ok && s.IsExpired(m.now()) {
		delete(m.sessions, token)
	}
	return nil, ErrSessionExpired
}

func (m *MemoryStore) Modify(ctx context.Context, token string, fn func(*Session)) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.IsExpired(m.now()) {
		delete(m.sessions, token)
		return nil, ErrSessionExpired
	}

	fn(s)
	return s.clone(), nil
}

func (m *MemoryStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

func (m *MemoryStore) DeleteExpired(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for token, s := range m.sessions {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if s.IsExpired(now) {
			delete(m.sessions, token)
			removed++
		}
	}

	return removed, nil
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
