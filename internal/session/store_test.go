package session

import (
	"context"
	"sync"
	"time"

	"github.com/ocopmarket/order-gateway/internal/domain"
)

// memStore is an in-memory stand-in for the Redis session store.
type memStore struct {
	mu         sync.Mutex
	sessions   map[string]*domain.Session
	activity   map[string]time.Time
	touchCount int
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[string]*domain.Session),
		activity: make(map[string]time.Time),
	}
}

func (s *memStore) Save(_ context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memStore) Get(_ context.Context, sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

func (s *memStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	delete(s.activity, sessionID)
	return nil
}

func (s *memStore) Touch(_ context.Context, sessionID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity[sessionID] = at
	s.touchCount++
	return nil
}

func (s *memStore) LastActivity(_ context.Context, sessionID string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activity[sessionID], nil
}

func (s *memStore) ListActive(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *memStore) touches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchCount
}

func (s *memStore) has(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionID]
	return ok
}
