package dto

import "orderdesk/internal/session"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User    session.User `json:"user"`
	Message string       `json:"message"`
}
