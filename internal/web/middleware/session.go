package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/storage"
)

type contextKey string

const (
	sessionCookieName = "session"
	sessionContextKey = contextKey("session")
)

// GetSession retrieves the browser session from the request context
// Returns nil outside the Session middleware
func GetSession(ctx context.Context) *storage.Session {
	sess, _ := ctx.Value(sessionContextKey).(*storage.Session)
	return sess
}

// Session returns middleware that gives every browser a session ID cookie
// and puts a handle on its stored values in the request context. The
// cookie is re-issued on every request so it expires with the stored
// values after ttl of inactivity.
func Session(store storage.SessionStore, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sessionIDFromCookie(r)
			if id == "" {
				id = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			sess := storage.NewSession(store, model.SessionID(id))
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionIDFromCookie returns the cookie's session ID if it is a UUID
func sessionIDFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return cookie.Value
}
