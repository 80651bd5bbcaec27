// Package crypto implements the password-hashing primitive of the blog
// backend on top of bcrypt. Hashes embed their own random salt and cost
// factor, so no extra bookkeeping is needed at the persistence layer.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied when hashing new passwords.
// Matches the cost existing production hashes were created with, so
// stored credentials keep verifying after redeploys.
const bcryptCost = 10

type bcryptHasher struct{}

// NewPasswordHasher returns a bcrypt-backed [PasswordHasher].
// The returned value is stateless and safe for concurrent use.
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{}
}

// Hash derives a salted bcrypt hash from password.
func (b *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches hash.
//
// bcrypt.CompareHashAndPassword performs the comparison in constant time.
// Any error, including a truncated or corrupted hash, is reported as a
// plain false so callers treat all failures as "verification failed".
func (b *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
