package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// User is the identity attached to a session and echoed back to the client.
type User struct {
	ID     int    `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Session is server-side state referenced by an opaque cookie value. Only the
// session id travels to the client.
type Session struct {
	ID        string
	User      User
	ExpiresAt time.Time
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved. Expiry is the store's
// concern; callers only see live sessions.
type Store interface {
	Create(ctx context.Context, user User) (*Session, error)
	Get(ctx context.Context, id string) (*Session, bool)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in-process. Expired entries are dropped lazily on
// lookup.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (s *MemoryStore) Create(_ context.Context, user User) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		User:      user,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if sess.IsExpired() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, false
	}
	return sess, true
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
