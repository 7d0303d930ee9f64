package domain

// User is a registered account checked at login. PasswordHash is a bcrypt
// hash; the plaintext password is never stored.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	Name         string
}
