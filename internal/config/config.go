// Package config handles loading the mailtm configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the mailtm configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Account AccountConfig `toml:"account"`
	Output  OutputConfig  `toml:"output"`

	// Computed home directory, not from the config file.
	HomeDir string `toml:"-"`
}

// APIConfig holds remote service settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`        // API base (default: https://api.mail.tm)
	TimeoutSeconds int    `toml:"timeout_seconds"` // Per-call timeout (default: 20)
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	IntroWidth int `toml:"intro_width"` // Inbox preview budget in terminal cells (default: 120)
}

// AccountConfig holds the default account for authenticated commands.
// The password never lives in the config file; it comes from a flag,
// the environment, or the keyring.
type AccountConfig struct {
	Address string `toml:"address"`
}

// DefaultHome returns the default mailtm home directory. Respects the
// MAILTM_HOME environment variable.
func DefaultHome() string {
	if h := os.Getenv("MAILTM_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mailtm"
	}
	return filepath.Join(home, ".mailtm")
}

// Load reads the configuration. An empty path means
// <home>/config.toml; an empty homeDir means DefaultHome(). The file
// is optional and defaults apply when it is absent.
func Load(path, homeDir string) (*Config, error) {
	if homeDir == "" {
		homeDir = DefaultHome()
	}
	if path == "" {
		path = filepath.Join(homeDir, "config.toml")
	}

	cfg := &Config{
		HomeDir: homeDir,
		API: APIConfig{
			TimeoutSeconds: 20,
		},
		Output: OutputConfig{
			IntroWidth: 120,
		},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 20
	}
	if cfg.Output.IntroWidth <= 0 {
		cfg.Output.IntroWidth = 120
	}
	return cfg, nil
}

// Timeout returns the per-call timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// ConfigFilePath returns the path of the config file in use.
func (c *Config) ConfigFilePath() string {
	return filepath.Join(c.HomeDir, "config.toml")
}
