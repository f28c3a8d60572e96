package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a cinemood session.
// Values are populated from .cinemood.yaml, CINEMOOD_* env vars, and CLI
// flags. The API base address is resolved once here at startup.
type Config struct {
	APIBase        string        `mapstructure:"api_base"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	PageSize       int           `mapstructure:"page_size"`
	SearchLimit    int           `mapstructure:"search_limit"`
	GenreLimit     int           `mapstructure:"genre_limit"`
	DataDir        string        `mapstructure:"data_dir"`
	FeedbackAck    string        `mapstructure:"feedback_ack"`
	HideWatched    bool          `mapstructure:"hide_watched"`
	Telemetry      bool          `mapstructure:"telemetry"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("api_base", "http://127.0.0.1:8000")
	viper.SetDefault("request_timeout", "10s")
	viper.SetDefault("page_size", 20)
	viper.SetDefault("search_limit", 100)
	viper.SetDefault("genre_limit", 50)
	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("feedback_ack", "optimistic")
	viper.SetDefault("hide_watched", false)
	viper.SetDefault("telemetry", true)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// DBPath is the list database location under the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "lists.db")
}

// TelemetryPath is the JSONL event log location under the data directory.
func (c Config) TelemetryPath() string {
	return filepath.Join(c.DataDir, "events.jsonl")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cinemood"
	}
	return filepath.Join(home, ".cinemood")
}
