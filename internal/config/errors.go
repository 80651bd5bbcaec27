package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrNoTokenSignKey indicates that no token signing secret was supplied
	// by any configuration source. Starting without one would make every
	// issued token unverifiable after a restart with a different random key,
	// so the server refuses to boot instead.
	ErrNoTokenSignKey = errors.New("no token sign key provided")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
