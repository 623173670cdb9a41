package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/gridgames-go/internal/dependencies/clock"
	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/storage"
)

// Storage is an in-memory implementation of the session store
type Storage struct {
	mu sync.Mutex

	clock    clock.Clock
	ttl      time.Duration
	sessions map[model.SessionID]*session
}

type session struct {
	values   map[string]string
	lastSeen time.Time
}

// New creates a new in-memory storage instance. Sessions expire after ttl
// without activity.
func New(clk clock.Clock, ttl time.Duration) *Storage {
	if ttl <= 0 {
		ttl = storage.DefaultSessionTTL
	}
	return &Storage{
		clock:    clk,
		ttl:      ttl,
		sessions: make(map[model.SessionID]*session),
	}
}

// Ensure Storage implements the interface
var _ storage.SessionStore = (*Storage)(nil)

// live returns the session if it exists and has not expired, refreshing
// its timer. Callers must hold the lock.
func (s *Storage) live(id model.SessionID, now time.Time) (*session, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if now.Sub(sess.lastSeen) >= s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

func (s *Storage) Get(ctx context.Context, id model.SessionID, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.live(id, s.clock.Now())
	if !ok {
		return "", model.ErrSessionValueNotFound
	}
	value, ok := sess.values[key]
	if !ok {
		return "", model.ErrSessionValueNotFound
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, id model.SessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	s.purgeExpired(now)
	sess, ok := s.live(id, now)
	if !ok {
		sess = &session{values: make(map[string]string), lastSeen: now}
		s.sessions[id] = sess
	}
	sess.values[key] = value
	return nil
}

func (s *Storage) Remove(ctx context.Context, id model.SessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.live(id, s.clock.Now()); ok {
		delete(sess.values, key)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len returns the number of sessions held, expired or not
func (s *Storage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Storage) purgeExpired(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) >= s.ttl {
			delete(s.sessions, id)
		}
	}
}
