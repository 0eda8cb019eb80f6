package config

import "errors"

// Validation errors returned by [Config.Validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid account-level settings
	// (for example, a missing local user uid).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidChatConfigs indicates invalid chat-transport settings
	// (for example, missing base URL, API key, or request timeout).
	ErrInvalidChatConfigs = errors.New("invalid chat configuration")
	// ErrInvalidEngineConfigs indicates invalid encryption-engine settings
	// (for example, an empty data directory).
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
)
