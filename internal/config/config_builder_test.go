package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result with earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{App: App{UID: "alice"}, Chat: Chat{BaseURL: "https://env.example.com", APIKey: "env-key"}},
		&Config{Chat: Chat{BaseURL: "https://json.example.com", RequestTimeout: 20 * time.Second}},
		defaults(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.App.UID)
	// first source wins for non-zero fields
	assert.Equal(t, "https://env.example.com", cfg.Chat.BaseURL)
	assert.Equal(t, "env-key", cfg.Chat.APIKey)
	// gaps are filled from later sources
	assert.Equal(t, 20*time.Second, cfg.Chat.RequestTimeout)
	assert.Equal(t, "chatseal-data", cfg.Engine.DataDir)
}

// TestBuild_ValidationFailure verifies that a merged config missing required
// fields fails validation.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_LoadsFileWhenPathPresent verifies the JSON file named by an
// earlier source is parsed and appended.
func TestWithJSON_LoadsFileWhenPathPresent(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"chat": map[string]any{
			"address":         "https://json.example.com",
			"api_key":         "json-key",
			"request_timeout": "45s",
		},
		"app": map[string]any{"uid": "alice"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{JSONFilePath: path})
	b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://json.example.com", cfg.Chat.BaseURL)
	assert.Equal(t, "json-key", cfg.Chat.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Chat.RequestTimeout)
	assert.Equal(t, "alice", cfg.App.UID)
}

// TestWithJSON_NoPath verifies that withJSON is a no-op when no earlier
// source provided a file path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

// TestWithJSON_BadFile verifies that an unreadable file surfaces as a build
// error.
func TestWithJSON_BadFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── Validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := Config{
		App:    App{UID: "alice"},
		Chat:   Chat{BaseURL: "https://api.chat.example.com", APIKey: "k", RequestTimeout: time.Second},
		Engine: Engine{DataDir: "data"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}, wantErr: nil},
		{name: "missing uid", mutate: func(c *Config) { c.App.UID = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing base url", mutate: func(c *Config) { c.Chat.BaseURL = "" }, wantErr: ErrInvalidChatConfigs},
		{name: "missing api key", mutate: func(c *Config) { c.Chat.APIKey = "" }, wantErr: ErrInvalidChatConfigs},
		{name: "zero timeout", mutate: func(c *Config) { c.Chat.RequestTimeout = 0 }, wantErr: ErrInvalidChatConfigs},
		{name: "missing data dir", mutate: func(c *Config) { c.Engine.DataDir = "" }, wantErr: ErrInvalidEngineConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
