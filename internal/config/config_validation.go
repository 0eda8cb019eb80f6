// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Validate checks that the final merged [Config] satisfies all library
// invariants before it is used to construct an SDK instance.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *Config) Validate() error {
	if cfg.App.UID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Chat.BaseURL == "" || cfg.Chat.APIKey == "" || cfg.Chat.RequestTimeout <= 0 {
		return ErrInvalidChatConfigs
	}

	if cfg.Engine.DataDir == "" {
		return ErrInvalidEngineConfigs
	}

	return nil
}
