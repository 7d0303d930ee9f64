package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"orderdesk/internal/dto"
	"orderdesk/internal/session"
)

type Controller struct {
	service    *Service
	sessions   session.Store
	cookieName string
	cookieTTL  time.Duration
	logger     *zap.Logger
}

func NewController(service *Service, sessions session.Store, cookieName string, cookieTTL time.Duration, logger *zap.Logger) *Controller {
	return &Controller{
		service:    service,
		sessions:   sessions,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
		logger:     logger,
	}
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "Username and password required")
		return
	}
	if req.Username == "" || req.Password == "" {
		c.writeError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := c.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		c.logger.Error("login failed", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	sess, err := c.sessions.Create(r.Context(), *user)
	if err != nil {
		c.logger.Error("creating session", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(c.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.logger.Info("user logged in", zap.String("userId", user.UserID))
	c.writeJSON(w, http.StatusOK, dto.LoginResponse{
		User:    *user,
		Message: "Login successful",
	})
}

func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(c.cookieName); err == nil && cookie.Value != "" {
		if err := c.sessions.Delete(r.Context(), cookie.Value); err != nil {
			c.logger.Error("destroying session", zap.Error(err))
			c.writeError(w, http.StatusInternalServerError, "Could not log out")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (c *Controller) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.Lookup(r, c.sessions, c.cookieName)
	if !ok || sess.User.UserID == "" {
		c.writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]session.User{"user": sess.User})
}

func (c *Controller) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]string{"error": message})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
