// ABOUTME: Configuration loading from an optional JSON file with environment overrides
// ABOUTME: Loading is read-only; a missing file yields defaults

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config stores fetch-feed configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `json:"log_level,omitempty" env:"FETCH_FEED_LOG_LEVEL, overwrite"`

	// LogFile enables a rotated log file in addition to stderr.
	// Supports ~ expansion for home directory.
	LogFile string `json:"log_file,omitempty" env:"FETCH_FEED_LOG_FILE, overwrite"`

	// UserAgent overrides the User-Agent sent with feed requests.
	UserAgent string `json:"user_agent,omitempty" env:"FETCH_FEED_USER_AGENT, overwrite"`
}

// GetLogLevel returns the configured log level, defaulting to info.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return strings.ToLower(c.LogLevel)
}

// GetLogFile returns the configured log file with ~ expanded.
func (c *Config) GetLogFile() string {
	return ExpandPath(c.LogFile)
}

// GetUserAgent returns the configured User-Agent, defaulting to DefaultUserAgent.
func (c *Config) GetUserAgent() string {
	if c.UserAgent == "" {
		return DefaultUserAgent
	}
	return c.UserAgent
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fetch-feed", "config.json")
}

// Load reads config from the default path and applies environment overrides.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, GetConfigPath(), envconfig.OsLookuper())
}

// LoadFrom reads config from path, if it exists, then applies overrides
// found through lookuper.
func LoadFrom(ctx context.Context, path string, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}
	return &cfg, nil
}
