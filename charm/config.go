// ABOUTME: Configuration for the Charm identity backend connection
// ABOUTME: Host selection persisted as a small JSON file under XDG data
package charm

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// DefaultCharmHost is the self-hosted 2389 research server.
	DefaultCharmHost = "charm.2389.dev"

	// AppName is the application name for local Charm state.
	AppName = "coldcall"

	// ConfigFileName is where we store local config.
	ConfigFileName = "charm-config.json"
)

// Config holds charm connection settings.
type Config struct {
	// Host is the charm server hostname (default: charm.2389.dev)
	Host string `json:"host,omitempty"`
}

// DefaultConfig returns a new config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host: DefaultCharmHost,
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigFileName), nil
}

// LoadConfig loads config from disk, or returns defaults if not found.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		// Can't determine config path, use defaults
		return DefaultConfig(), nil //nolint:nilerr // Intentionally returning defaults on path error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Invalid config, use defaults
		return DefaultConfig(), nil //nolint:nilerr // Intentionally returning defaults on parse error
	}

	if cfg.Host == "" {
		cfg.Host = DefaultCharmHost
	}

	return &cfg, nil
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// SetHost sets the charm server host and saves.
func (c *Config) SetHost(host string) error {
	c.Host = host
	return c.Save()
}
