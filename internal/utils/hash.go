package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a bcrypt digest of the given plain-text password
// using the library's default cost.
//
// The returned digest embeds its own salt and cost parameters, so it can be
// verified later with [CheckPassword] without any additional state.
//
// Parameters:
//
//	password - plain-text password to be hashed
//
// Returns:
//
//	string - bcrypt digest suitable for persistence
//	error  - non-nil if hashing fails (e.g. password longer than 72 bytes)
//
// Example usage:
//
//	digest, err := utils.HashPassword("s3cret-pass")
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether the plain-text password matches the given
// bcrypt digest.
//
// Any verification failure — mismatch, malformed digest, empty input —
// yields false; callers never need to distinguish the cause.
//
// Example usage:
//
//	if !utils.CheckPassword(candidate, storedDigest) {
//	    // reject credentials
//	}
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
