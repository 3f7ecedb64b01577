// Package auth provides password hashing for the user service.
//
// bcrypt is used rather than a general-purpose hash: it generates a random
// salt per password, embeds that salt in the output string (no separate salt
// column), and its cost parameter keeps brute-forcing expensive. The stored
// value is the full self-contained hash string, e.g.
//
//	$2a$12$N9qo8uLOickgx2ZMRZoMye...
//
// Verification with bcrypt.CompareHashAndPassword is constant-time, so login
// responses do not leak how much of the password matched.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor for new hashes. Roughly 250ms per
// hash on current server hardware — negligible at login, brutal for attackers.
const defaultCost = 12

// PasswordService hashes and verifies passwords. It is a struct rather than
// free functions so the cost can be lowered in tests (bcrypt at cost 12 makes
// a test suite crawl).
type PasswordService struct {
	cost int
}

// NewPasswordService returns a PasswordService with the production cost.
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: defaultCost}
}

// NewPasswordServiceWithCost returns a PasswordService with a custom bcrypt
// cost. Tests use bcrypt.MinCost; production code should not call this.
func NewPasswordServiceWithCost(cost int) *PasswordService {
	return &PasswordService{cost: cost}
}

// Hash returns the bcrypt hash of plaintext, salt included.
//
// bcrypt silently truncates inputs over 72 bytes; reject them explicitly so
// callers aren't surprised.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. Returns nil on a
// match, a non-nil error otherwise.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("auth: invalid password")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
