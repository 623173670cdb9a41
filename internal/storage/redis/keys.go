package redis

import (
	"fmt"

	"github.com/mcoot/gridgames-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "gridgames"

// sessionKey returns the Redis key for the hash holding a session's values
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}
