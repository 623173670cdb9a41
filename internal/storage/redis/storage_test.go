package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSetAndGet() {
	err := s.storage.Set(s.ctx, "session-1", "name", "Alice")
	s.Require().NoError(err)

	value, err := s.storage.Get(s.ctx, "session-1", "name")
	s.Require().NoError(err)
	s.Equal("Alice", value)
}

func (s *StorageSuite) TestStoredAsHash() {
	_ = s.storage.Set(s.ctx, "session-1", "name", "Alice")
	_ = s.storage.Set(s.ctx, "session-1", "moves_left", "21")

	s.Equal("Alice", s.mini.HGet(sessionKey("session-1"), "name"))
	s.Equal("21", s.mini.HGet(sessionKey("session-1"), "moves_left"))
}

func (s *StorageSuite) TestGetMissingKey() {
	_ = s.storage.Set(s.ctx, "session-1", "name", "Alice")

	_, err := s.storage.Get(s.ctx, "session-1", "board")
	s.ErrorIs(err, model.ErrSessionValueNotFound)
}

func (s *StorageSuite) TestGetMissingSession() {
	_, err := s.storage.Get(s.ctx, "nonexistent", "name")
	s.ErrorIs(err, model.ErrSessionValueNotFound)
	s.False(s.mini.Exists(sessionKey("nonexistent")))
}

func (s *StorageSuite) TestRemove() {
	_ = s.storage.Set(s.ctx, "session-1", "name", "Alice")
	_ = s.storage.Set(s.ctx, "session-1", "board", "{}")

	s.Require().NoError(s.storage.Remove(s.ctx, "session-1", "board"))

	_, err := s.storage.Get(s.ctx, "session-1", "board")
	s.ErrorIs(err, model.ErrSessionValueNotFound)
	value, err := s.storage.Get(s.ctx, "session-1", "name")
	s.Require().NoError(err)
	s.Equal("Alice", value)
}

func (s *StorageSuite) TestDelete() {
	_ = s.storage.Set(s.ctx, "session-1", "name", "Alice")

	s.Require().NoError(s.storage.Delete(s.ctx, "session-1"))

	s.False(s.mini.Exists(sessionKey("session-1")))
}

func (s *StorageSuite) TestSetAppliesTTL() {
	_ = s.storage.Set(s.ctx, "session-1", "name", "Alice")

	s.Equal(time.Hour, s.mini.TTL(sessionKey("session-1")))
}

func (s *StorageSuite) TestExpiresAfterInactivity() {
	_ = s.storage.Set(s.ctx, "session-1", "name", "Alice")

	s.mini.FastForward(time.Hour)

	_, err := s.storage.Get(s.ctx, "session-1", "name")
	s.ErrorIs(err, model.ErrSessionValueNotFound)
}

func (s *StorageSuite) TestActivityRefreshesExpiry() {
	_ = s.storage.Set(s.ctx, "session-1", "name", "Alice")

	s.mini.FastForward(45 * time.Minute)
	_, err := s.storage.Get(s.ctx, "session-1", "name")
	s.Require().NoError(err)
	s.Equal(time.Hour, s.mini.TTL(sessionKey("session-1")))

	s.mini.FastForward(45 * time.Minute)
	value, err := s.storage.Get(s.ctx, "session-1", "name")
	s.Require().NoError(err)
	s.Equal("Alice", value)
}

func (s *StorageSuite) TestDefaultTTLWhenUnset() {
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	store := NewWithClient(client, Config{})
	s.Equal(storage.DefaultSessionTTL, store.cfg.SessionTTL)
	_ = client.Close()
}

func (s *StorageSuite) TestSessionHandle() {
	sess := storage.NewSession(s.storage, "session-1")

	s.Require().NoError(sess.SetInt(s.ctx, "moves_left", 20))
	moves, ok, err := sess.GetInt(s.ctx, "moves_left")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(20, moves)

	s.Require().NoError(sess.Clear(s.ctx))
	_, ok, err = sess.Get(s.ctx, "moves_left")
	s.Require().NoError(err)
	s.False(ok)
}
