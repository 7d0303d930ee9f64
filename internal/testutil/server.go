package testutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"orderdesk/internal/auth"
	"orderdesk/internal/domain"
	"orderdesk/internal/order"
	orderrepo "orderdesk/internal/order/repository"
	"orderdesk/internal/server"
	"orderdesk/internal/session"
)

const CookieName = "orderdesk_session"

// NewServer builds a fully wired test server with the demo admin/admin login.
// Metrics are left out so repeated test runs do not fight over the default
// prometheus registry.
func NewServer(t *testing.T, seed []domain.Order) (*httptest.Server, *orderrepo.MemoryOrderRepository) {
	t.Helper()

	logger := zap.NewNop()
	repo := orderrepo.NewMemoryOrderRepository()
	if seed != nil {
		repo.Seed(seed)
	}

	sessions := session.NewMemoryStore(time.Hour)
	authSvc := auth.NewService(auth.NewDemoVerifier("admin", "admin"))
	authCtrl := auth.NewController(authSvc, sessions, CookieName, time.Hour, logger)
	ordersCtrl := order.NewModule(repo, logger)
	gate := session.RequireAuth(sessions, CookieName, logger)

	ts := httptest.NewServer(server.NewRouter(authCtrl, ordersCtrl, gate, nil, logger))
	t.Cleanup(ts.Close)

	return ts, repo
}

// Login authenticates against the test server and returns the session cookie.
func Login(t *testing.T, ts *httptest.Server) *http.Cookie {
	t.Helper()

	resp, err := http.Post(ts.URL+"/api/auth/login", "application/json",
		bytes.NewBufferString(`{"username":"admin","password":"admin"}`))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned status %d", resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}
