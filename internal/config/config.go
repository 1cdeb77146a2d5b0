// Package config resolves inkrypt settings from defaults, an optional TOML
// file and INKRYPT_* environment variables.
//
// Precedence, highest first: explicit overrides (CLI flags), environment,
// config file, defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// EnvPrefix is prepended to every environment variable name
	EnvPrefix = "INKRYPT_"
	// ConfigFileName is looked up inside the data directory when no path is given
	ConfigFileName = "config.toml"
	appDirName     = "inkrypt"
)

// Defaults for the watcher pipeline
const (
	DefaultDebounce   = 200 * time.Millisecond
	DefaultPendingTTL = 500 * time.Millisecond
	DefaultBufferSize = 100
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"
)

// Config is the resolved application configuration.
//   - toml tags map keys of the config file.
//   - env tags map INKRYPT_* variables (caarlos0/env).
type Config struct {
	DataDir   string  `toml:"data_dir" env:"DATA_DIR"`
	LogLevel  string  `toml:"log_level" env:"LOG_LEVEL"`
	LogFormat string  `toml:"log_format" env:"LOG_FORMAT"`
	Watcher   Watcher `toml:"watcher" envPrefix:"WATCHER_"`

	// File is the config file that was read, or INKRYPT_CONFIG.
	File string `toml:"-" env:"CONFIG"`
}

// Watcher tunes debouncing and self-change suppression
type Watcher struct {
	Debounce   time.Duration `toml:"debounce" env:"DEBOUNCE"`
	PendingTTL time.Duration `toml:"pending_ttl" env:"PENDING_TTL"`
	BufferSize int           `toml:"buffer_size" env:"BUFFER_SIZE"`
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	dataDir, err := DefaultDataDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DataDir:   dataDir,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Watcher: Watcher{
			Debounce:   DefaultDebounce,
			PendingTTL: DefaultPendingTTL,
			BufferSize: DefaultBufferSize,
		},
	}, nil
}

// DefaultDataDir follows XDG: $XDG_DATA_HOME/inkrypt, else ~/.local/share/inkrypt
func DefaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// RegistryPath returns the vault registry location inside the data directory
func (c *Config) RegistryPath(fileName string) string {
	return filepath.Join(c.DataDir, fileName)
}

// IndexDir returns the directory holding per-vault search indexes
func (c *Config) IndexDir() string {
	return filepath.Join(c.DataDir, "index")
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log_format %q must be json or console", ErrInvalidConfig, c.LogFormat)
	}
	if c.Watcher.Debounce <= 0 {
		return fmt.Errorf("%w: watcher.debounce must be positive", ErrInvalidWatcherConfig)
	}
	if c.Watcher.PendingTTL <= 0 {
		return fmt.Errorf("%w: watcher.pending_ttl must be positive", ErrInvalidWatcherConfig)
	}
	if c.Watcher.BufferSize <= 0 {
		return fmt.Errorf("%w: watcher.buffer_size must be positive", ErrInvalidWatcherConfig)
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
