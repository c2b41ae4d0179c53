// Package config loads the API credential and service settings. The
// credential is carried in an explicit Config value rather than read from
// ambient process state by the collaborators, so tests can construct fake
// credentials directly.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultModel   = "gpt-4o"
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultTimeout = 120 * time.Second
)

// Config carries everything the chat collaborators need for one run.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Load reads settings from an optional mdtranslate.yaml (working directory
// or $HOME) and the environment. The API key comes from OPENAI_API_KEY or
// the api_key config entry; without it the process refuses to start.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("mdtranslate")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetDefault("model", DefaultModel)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)

	if err := v.BindEnv("api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		APIKey:  v.GetString("api_key"),
		Model:   v.GetString("model"),
		BaseURL: v.GetString("base_url"),
		Timeout: v.GetDuration("timeout"),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set (set the environment variable or api_key in mdtranslate.yaml)")
	}

	return cfg, nil
}
