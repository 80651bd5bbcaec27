package crypto

// PasswordHasher is the one-way credential hashing primitive used by the
// auth service. It knows nothing about users, storage, or transport; its
// only job is turning plaintext passwords into verifiable opaque hashes.
type PasswordHasher interface {
	// Hash derives a salted, computationally expensive hash from a
	// plaintext password. The salt is embedded in the returned value.
	Hash(password string) (string, error)

	// Verify reports whether password matches the previously produced
	// hash. The comparison is delegated to a vetted constant-time
	// primitive; a malformed hash yields false, never a panic.
	Verify(password, hash string) bool
}
