package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSecrets indicates that at least one of the access,
	// verification or reset token secrets is empty.
	ErrMissingTokenSecrets = errors.New("token secrets are not configured")
	// ErrSharedTokenSecrets indicates that two token classes share a secret.
	ErrSharedTokenSecrets = errors.New("token secrets must differ per token class")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, empty issuer, non-positive token lifetime or empty role names).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero mail queue size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
