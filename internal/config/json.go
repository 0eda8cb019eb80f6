package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [Config] with JSON tags and string-friendly durations.
type jsonConfig struct {
	App struct {
		UID        string `json:"uid"`
		DeviceName string `json:"device_name"`
	} `json:"app,omitempty"`

	Chat struct {
		BaseURL        string   `json:"address"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"chat,omitempty"`

	Engine struct {
		DataDir         string   `json:"data_dir"`
		SignupKey       string   `json:"signup_key"`
		SessionCacheTTL Duration `json:"session_cache_ttl"`
		WarmInterval    Duration `json:"warm_interval"`
	} `json:"engine,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			UID:        jsonCfg.App.UID,
			DeviceName: jsonCfg.App.DeviceName,
		},
		Chat: Chat{
			BaseURL:        jsonCfg.Chat.BaseURL,
			APIKey:         jsonCfg.Chat.APIKey,
			RequestTimeout: time.Duration(jsonCfg.Chat.RequestTimeout),
		},
		Engine: Engine{
			DataDir:         jsonCfg.Engine.DataDir,
			SignupKey:       jsonCfg.Engine.SignupKey,
			SessionCacheTTL: time.Duration(jsonCfg.Engine.SessionCacheTTL),
			WarmInterval:    time.Duration(jsonCfg.Engine.WarmInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
