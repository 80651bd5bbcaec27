package models

// AuthResponse is the JSON envelope returned by the register and login
// endpoints. The field set and wording are part of the public wire contract
// and must stay byte-compatible with existing clients.
type AuthResponse struct {
	// Result is "success" or "fail".
	Result string `json:"result"`

	// Message is the human-readable outcome description
	// (e.g. "LOGIN SUCCESS!!", "UNKNOWN ID!!").
	Message string `json:"message"`

	// Username is the display name of the affected account,
	// empty on every failure branch.
	Username string `json:"username"`

	// Token is the signed session JWT. Present only on successful login.
	Token string `json:"token,omitempty"`
}

// MeResponse is returned by the protected /me endpoint and echoes the
// identity claims of the presented token.
type MeResponse struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
}

// MessageResponse is the body used by the auth middleware rejections
// (403 "No token provided", 401 "Invalid or expired token").
type MessageResponse struct {
	Message string `json:"message"`
}

// ResultResponse is the minimal envelope returned by post create, update
// and delete operations.
type ResultResponse struct {
	Result string `json:"result"`
}

// PostListResponse wraps a page of the post feed.
type PostListResponse struct {
	Posts []Post `json:"posts"`
}

// PostDetailResponse wraps a single fully populated post.
type PostDetailResponse struct {
	Data Post `json:"data"`
}
