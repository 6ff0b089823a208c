// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/bookworm-social/bookworm-server/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActingUserCtxKey is the key used to store the authenticated user in the
// request context. The auth middleware resolves the bearer token's subject
// against the user repository and attaches the full user record so that
// downstream handlers never re-parse the token or re-query the store.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ActingUserCtxKey, user)
var ActingUserCtxKey = contextKey("actingUser")

// GetActingUser retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct models.User type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetActingUser(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetActingUser(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(ActingUserCtxKey).(models.User)
	return user, ok
}
