// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration container for the go-chat-seal
// library. It aggregates all sub-configurations and is populated by merging
// values from environment variables, an optional JSON file, and built-in
// defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds account-level settings for the local chat user.
	App App `envPrefix:"APP_"`

	// Chat holds connection settings for the chat-transport service.
	Chat Chat `envPrefix:"CHAT_"`

	// Engine holds settings for the local encryption engine, including
	// where its encrypted state database lives.
	Engine Engine `envPrefix:"ENGINE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables.
	// Populated via the CONFIG environment variable.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings describing the local chat account the SDK instance is
// bound to.
type App struct {
	// UID is the chat-service uid of the local user. Required.
	// Env: APP_UID
	UID string `env:"UID"`

	// DeviceName labels the identity provisioned for this device. When
	// empty a random device name is generated at account setup.
	// Env: APP_DEVICE_NAME
	DeviceName string `env:"DEVICE_NAME"`
}

// Chat holds network settings for the outbound chat-transport adapter.
type Chat struct {
	// BaseURL is the chat service REST endpoint
	// (e.g. "https://api.chat.example.com"). Required.
	// Env: CHAT_ADDRESS
	BaseURL string `env:"ADDRESS"`

	// APIKey authenticates the application against the chat service.
	// Required.
	// Env: CHAT_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the default timeout for outbound chat requests
	// (e.g. "15s"). Defaults to 15 seconds.
	// Env: CHAT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Engine holds settings for the local encryption engine.
type Engine struct {
	// DataDir is the directory holding the per-user engine databases.
	// Defaults to "chatseal-data" relative to the working directory.
	// Env: ENGINE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// SignupKey is the optional HMAC secret used to verify signup JWTs
	// handed to account setup. When empty, signup tokens are accepted
	// after claim inspection only.
	// Env: ENGINE_SIGNUP_KEY
	SignupKey string `env:"SIGNUP_KEY"`

	// SessionCacheTTL bounds how long the engine keeps unwrapped session
	// keys in memory. Zero means no expiry.
	// Env: ENGINE_SESSION_CACHE_TTL
	SessionCacheTTL time.Duration `env:"SESSION_CACHE_TTL"`

	// WarmInterval is the period of the background session-cache refresh
	// job. Zero means warm once at startup without periodic refresh.
	// Env: ENGINE_WARM_INTERVAL
	WarmInterval time.Duration `env:"WARM_INTERVAL"`
}

// defaults returns the built-in configuration baseline merged under all
// other sources.
func defaults() *Config {
	return &Config{
		Chat: Chat{
			RequestTimeout: 15 * time.Second,
		},
		Engine: Engine{
			DataDir: "chatseal-data",
		},
	}
}

// GetConfig loads, merges, and validates the library configuration from all
// available sources in the following priority order (first source wins for
// non-zero fields):
//  1. Environment variables
//  2. JSON file (path resolved from source 1)
//  3. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
