package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT with convenience accessors for authentication flows.
//
// SessionClaims is the claim set embedded in the token; SignedString holds the
// compact serialized form (header.payload.signature) ready to be transmitted
// in HTTP headers or stored on the client side. The token itself is the only
// durable session artifact; no server-side session table exists.
type Token struct {
	// SessionClaims is the decoded claim set of the token.
	SessionClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// SessionClaims is the identity claim set carried by a session token.
//
// It embeds [jwt.RegisteredClaims] for the standard iat/exp handling and adds
// the two custom claims the published wire format requires. Claims are produced
// only on successful login and consumed only during token verification.
type SessionClaims struct {
	jwt.RegisteredClaims

	// UserID is the login identifier of the authenticated user.
	UserID string `json:"userid"`

	// Username is the display name captured at token issuance.
	Username string `json:"username"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
