// Package config handles application configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/tenagusami-ms/exp/internal/platform"
)

// Config holds all application configuration
type Config struct {
	// Flags
	Quiet       bool `ignored:"true"`
	Debug       bool `ignored:"true"`
	UNCFallback bool `envconfig:"UNC_FALLBACK" default:"false"`

	// Paths
	ExplorerPath string `envconfig:"EXPLORER_PATH" default:"/mnt/c/Windows/explorer.exe"`
	MountRoot    string `envconfig:"MOUNT_ROOT" default:"/mnt"`
	HistoryFile  string `envconfig:"HISTORY_FILE"`

	// Limits
	HistoryLimit int `envconfig:"HISTORY_LIMIT" default:"50"`

	// Host state captured at startup
	Host platform.Info `ignored:"true"`
}

// Load loads configuration from EXP_* environment variables and captures the
// host environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("exp", &cfg); err != nil {
		return nil, err
	}

	if cfg.HistoryFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "/tmp"
		}
		cfg.HistoryFile = filepath.Join(home, ".config", "exp", "history.json")
	}

	cfg.Host = platform.Detect()
	return &cfg, nil
}

func (c *Config) SetQuiet(v bool)       { c.Quiet = v }
func (c *Config) SetDebug(v bool)       { c.Debug = v }
func (c *Config) SetUNCFallback(v bool) { c.UNCFallback = c.UNCFallback || v }
