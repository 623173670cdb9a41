package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/mcoot/gridgames-go/internal/model"
)

// Session is a handle on one session's values
type Session struct {
	store SessionStore
	id    model.SessionID
}

// NewSession binds a session ID to a store
func NewSession(store SessionStore, id model.SessionID) *Session {
	return &Session{store: store, id: id}
}

// ID returns the session's ID
func (s *Session) ID() model.SessionID {
	return s.id
}

// Get returns a value, reporting false if it is not set
func (s *Session) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.store.Get(ctx, s.id, key)
	if errors.Is(err, model.ErrSessionValueNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// GetInt returns an integer value, reporting false if it is not set or is
// not a number
func (s *Session) GetInt(ctx context.Context, key string) (int, bool, error) {
	value, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (s *Session) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.id, key, value)
}

func (s *Session) SetInt(ctx context.Context, key string, value int) error {
	return s.store.Set(ctx, s.id, key, strconv.Itoa(value))
}

func (s *Session) Remove(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := s.store.Remove(ctx, s.id, key); err != nil {
			return err
		}
	}
	return nil
}

// Clear drops every value in the session
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, s.id)
}
