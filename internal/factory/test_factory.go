package factory

import (
	goredis "github.com/redis/go-redis/v9"

	"github.com/mcoot/gridgames-go/internal/dependencies/mocks"
	"github.com/mcoot/gridgames-go/internal/storage"
	"github.com/mcoot/gridgames-go/internal/storage/memory"
	redisstorage "github.com/mcoot/gridgames-go/internal/storage/redis"
	"github.com/mcoot/gridgames-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and in-memory sessions
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(testutil.FixedTime)
	mockRandom := mocks.NewMockRandom()
	store := memory.New(mockClock, storage.DefaultSessionTTL)

	return &TestApp{
		App:        newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger()),
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// NewRedisTestApp creates a TestApp whose sessions live in the Redis
// server at addr, usually a miniredis instance
func NewRedisTestApp(addr string) *TestApp {
	mockClock := mocks.NewMockClock(testutil.FixedTime)
	mockRandom := mocks.NewMockRandom()

	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + addr
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	store := redisstorage.NewWithClient(client, cfg)

	return &TestApp{
		App:        newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger()),
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueFleet scripts the battleship placement used by tests: length 2
// across row 0 from col 0, length 3 down col 0 from row 1, length 4
// across row 4 from col 3
func (t *TestApp) QueueFleet() {
	t.MockRandom.QueueIntn(0, 0, 0, 1, 1, 0, 0, 4, 3)
}
