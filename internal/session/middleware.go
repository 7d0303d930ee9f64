package session

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type contextKey struct{}

// RequireAuth gates protected routes. A request passes only when its cookie
// resolves to a live session carrying a non-empty user identifier.
func RequireAuth(store Store, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := Lookup(r, store, cookieName)
			if !ok || sess.User.UserID == "" {
				logger.Debug("rejected unauthenticated request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Authentication required"})
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, sess)))
		})
	}
}

// FromContext returns the session attached by RequireAuth.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(contextKey{}).(*Session)
	return sess, ok
}

// Lookup resolves the request's session cookie against the store.
func Lookup(r *http.Request, store Store, cookieName string) (*Session, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return store.Get(r.Context(), cookie.Value)
}
