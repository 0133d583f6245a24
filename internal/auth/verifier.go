package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a username and password pair.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier accepts exactly one configured username and password.
type StaticVerifier struct {
	username     string
	passwordHash []byte
}

var _ CredentialVerifier = (*StaticVerifier)(nil)

// NewStaticVerifier creates a verifier from a bcrypt password hash.
func NewStaticVerifier(username, passwordHash string) (*StaticVerifier, error) {
	if username == "" {
		return nil, errors.New("auth: username is required")
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, err
	}
	return &StaticVerifier{
		username:     username,
		passwordHash: []byte(passwordHash),
	}, nil
}

// NewStaticVerifierFromPassword hashes a plain text password and creates a verifier for it.
func NewStaticVerifierFromPassword(username, password string) (*StaticVerifier, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return NewStaticVerifier(username, hash)
}

func (v *StaticVerifier) Verify(username, password string) bool {
	usernameMatches := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passwordMatches := VerifyPassword(string(v.passwordHash), password) == nil
	return usernameMatches && passwordMatches
}

// HashPassword hashes a plain text password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a plain text password matches the hashed password
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
