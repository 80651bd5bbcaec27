// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/Sanagocat/My-blog-back-end/models"
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

// SessionClaimsCtxKey is the key used to store the authenticated session's
// claims in the request context. The auth middleware writes the value; any
// protected handler reads it back via GetSessionClaimsFromContext.
var SessionClaimsCtxKey = contextKey("sessionClaims")

// GetSessionClaimsFromContext retrieves the authenticated session claims
// from the context.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetSessionClaimsFromContext(ctx context.Context) (models.SessionClaims, bool) {
	claims, ok := ctx.Value(SessionClaimsCtxKey).(models.SessionClaims)
	return claims, ok
}
