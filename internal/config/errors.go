package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrUnknownBackend indicates an unsupported ADAPTER_KIND.
	ErrUnknownBackend = errors.New("unknown backend kind")
	// ErrInvalidAdapterConfigs indicates missing backend identifiers
	// (endpoint, project, database, collections or bucket).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates missing store connection settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
