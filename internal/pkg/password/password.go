package password

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// IsHash reports whether the configured secret is stored as a bcrypt hash.
func IsHash(secret string) bool {
	return strings.HasPrefix(secret, "$2a$") ||
		strings.HasPrefix(secret, "$2b$") ||
		strings.HasPrefix(secret, "$2y$")
}

// Verify checks a presented credential against the configured secret, which
// may be either a bcrypt hash or a plain value.
func Verify(secret, presented string) error {
	if secret == "" || presented == "" {
		return ErrInvalidPassword
	}

	if !IsHash(secret) {
		if subtle.ConstantTimeCompare([]byte(secret), []byte(presented)) != 1 {
			return ErrComparisonFailed
		}
		return nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(secret), []byte(presented))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
