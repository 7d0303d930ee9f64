package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/domain"
)

func registeredUser(t *testing.T, username, password string) domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return domain.User{ID: 7, Username: username, PasswordHash: hash, Name: "Ops"}
}

func TestUserListVerifier_AcceptsCorrectPassword(t *testing.T) {
	v := NewUserListVerifier([]domain.User{registeredUser(t, "ops", "s3cret")})

	user, err := v.Verify("ops", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "ops", user.UserID)
	assert.Equal(t, "Ops", user.Name)
}

func TestUserListVerifier_RejectsWrongPassword(t *testing.T) {
	v := NewUserListVerifier([]domain.User{registeredUser(t, "ops", "s3cret")})

	_, err := v.Verify("ops", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserListVerifier_RejectsUnknownUser(t *testing.T) {
	v := NewUserListVerifier(nil)

	_, err := v.Verify("ghost", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDemoVerifier(t *testing.T) {
	v := NewDemoVerifier("admin", "admin")

	user, err := v.Verify("admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.UserID)
	assert.Equal(t, "Administrator", user.Name)

	_, err = v.Verify("admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_FirstSuccessWins(t *testing.T) {
	svc := NewService(
		NewUserListVerifier([]domain.User{registeredUser(t, "ops", "s3cret")}),
		NewDemoVerifier("admin", "admin"),
	)

	user, err := svc.Login("admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", user.Name)

	user, err = svc.Login("ops", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Ops", user.Name)
}

func TestService_AllVerifiersReject(t *testing.T) {
	svc := NewService(NewDemoVerifier("admin", "admin"))

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
