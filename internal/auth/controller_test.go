package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orderdesk/internal/session"
)

const testCookie = "orderdesk_session"

func newTestController(t *testing.T) (*Controller, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	svc := NewService(NewDemoVerifier("admin", "admin"))
	return NewController(svc, store, testCookie, time.Hour, zap.NewNop()), store
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLogin_Success(t *testing.T) {
	ctrl, store := newTestController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin"}`))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User    session.User `json:"user"`
		Message string       `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, 1, resp.User.ID)
	assert.Equal(t, "admin", resp.User.UserID)
	assert.Equal(t, "Administrator", resp.User.Name)

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)

	sess, ok := store.Get(req.Context(), cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "admin", sess.User.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl, _ := newTestController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	ctrl, _ := newTestController(t)

	for _, body := range []string{`{}`, `{"username":"admin"}`, `{"password":"admin"}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"Username and password required"}`, rec.Body.String())
	}
}

func TestLogout_DestroysSession(t *testing.T) {
	ctrl, store := newTestController(t)

	sess, _ := store.Create(httptest.NewRequest(http.MethodPost, "/", nil).Context(),
		session.User{ID: 1, UserID: "admin"})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.ID})
	rec := httptest.NewRecorder()
	ctrl.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())

	_, ok := store.Get(req.Context(), sess.ID)
	assert.False(t, ok)

	cookie := sessionCookie(t, rec)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestLogout_WithoutSessionStillSucceeds(t *testing.T) {
	ctrl, _ := newTestController(t)

	rec := httptest.NewRecorder()
	ctrl.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe_ReturnsSessionUser(t *testing.T) {
	ctrl, store := newTestController(t)

	sess, _ := store.Create(httptest.NewRequest(http.MethodGet, "/", nil).Context(),
		session.User{ID: 1, UserID: "admin", Name: "Administrator"})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.ID})
	rec := httptest.NewRecorder()
	ctrl.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{"id":1,"userId":"admin","name":"Administrator"}}`, rec.Body.String())
}

func TestMe_Unauthenticated(t *testing.T) {
	ctrl, _ := newTestController(t)

	rec := httptest.NewRecorder()
	ctrl.Me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Not authenticated"}`, rec.Body.String())
}
