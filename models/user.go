package models

import "time"

// User represents an account record used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique login identifier chosen by the user at
	// registration time. It is immutable once created.
	UserID string `json:"userId"`

	// Password carries the plaintext password on inbound requests only.
	// It is hashed before the record ever reaches the persistence layer
	// and is excluded from all server responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// Never serialized and never logged.
	PasswordHash string `json:"-"`

	// Username is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Username string `json:"username"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "userdata"
}
