package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"orderdesk/internal/domain"
	"orderdesk/internal/session"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks a username/password pair and returns the authenticated
// identity. Implementations must return ErrInvalidCredentials on mismatch.
type Verifier interface {
	Verify(username, password string) (*session.User, error)
}

// UserListVerifier checks credentials against registered users by comparing
// bcrypt hashes.
type UserListVerifier struct {
	users map[string]domain.User
}

func NewUserListVerifier(users []domain.User) *UserListVerifier {
	byName := make(map[string]domain.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &UserListVerifier{users: byName}
}

func (v *UserListVerifier) Verify(username, password string) (*session.User, error) {
	user, ok := v.users[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &session.User{ID: user.ID, UserID: user.Username, Name: user.Name}, nil
}

// HashPassword produces a bcrypt hash for a registered user entry.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// DemoVerifier accepts one fixed username/password pair. Demo escape hatch,
// enabled only through config and never part of UserListVerifier.
type DemoVerifier struct {
	username string
	password string
}

func NewDemoVerifier(username, password string) *DemoVerifier {
	return &DemoVerifier{username: username, password: password}
}

func (v *DemoVerifier) Verify(username, password string) (*session.User, error) {
	if username != v.username || password != v.password {
		return nil, ErrInvalidCredentials
	}
	return &session.User{ID: 1, UserID: v.username, Name: "Administrator"}, nil
}

// Service tries each verifier in order; the first success wins.
type Service struct {
	verifiers []Verifier
}

func NewService(verifiers ...Verifier) *Service {
	return &Service{verifiers: verifiers}
}

func (s *Service) Login(username, password string) (*session.User, error) {
	for _, v := range s.verifiers {
		user, err := v.Verify(username, password)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, ErrInvalidCredentials) {
			return nil, err
		}
	}
	return nil, ErrInvalidCredentials
}
