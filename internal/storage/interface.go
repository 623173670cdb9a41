package storage

import (
	"context"
	"time"

	"github.com/mcoot/gridgames-go/internal/model"
)

// DefaultSessionTTL is how long a session survives without being touched
const DefaultSessionTTL = time.Hour

// SessionStore keeps named string values per browser session. Every read or
// write refreshes the session's inactivity timer.
type SessionStore interface {
	// Get returns model.ErrSessionValueNotFound when the key (or the whole
	// session) does not exist or has expired
	Get(ctx context.Context, id model.SessionID, key string) (string, error)
	Set(ctx context.Context, id model.SessionID, key, value string) error
	Remove(ctx context.Context, id model.SessionID, key string) error

	// Delete drops the whole session
	Delete(ctx context.Context, id model.SessionID) error
}
