package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCookie = "orderdesk_session"

func protectedHandler(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		sess, ok := FromContext(r.Context())
		require.True(t, ok)
		assert.NotEmpty(t, sess.User.UserID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_RejectsWithoutCookie(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	called := false
	handler := RequireAuth(store, testCookie, zap.NewNop())(protectedHandler(t, &called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, rec.Body.String())
	assert.False(t, called)
}

func TestRequireAuth_RejectsUnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	called := false
	handler := RequireAuth(store, testCookie, zap.NewNop())(protectedHandler(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "stale-id"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_RejectsSessionWithoutUserID(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	sess, _ := store.Create(context.Background(), User{ID: 1})

	called := false
	handler := RequireAuth(store, testCookie, zap.NewNop())(protectedHandler(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.ID})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_PassesValidSession(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	sess, _ := store.Create(context.Background(), User{ID: 1, UserID: "admin", Name: "Administrator"})

	called := false
	handler := RequireAuth(store, testCookie, zap.NewNop())(protectedHandler(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.ID})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
