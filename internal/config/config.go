// Package config loads compatscan settings from .compatscan.yaml and the
// environment. The environment override has the highest priority; a
// missing config file falls back to defaults and is not an error.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// ConfigFile is the configuration file looked up in the working directory.
const ConfigFile = ".compatscan.yaml"

// DefaultRequestDelay is the pause inserted between store lookups, a crude
// self-imposed rate limit against the store endpoint.
const DefaultRequestDelay = 200 * time.Millisecond

// Config is the main configuration structure for compatscan.
type Config struct {
	// SteamPath overrides Steam root detection when set.
	SteamPath string `yaml:"steam-path,omitempty"`

	// CatalogURL overrides the store endpoint base URL.
	CatalogURL string `yaml:"catalog-url,omitempty"`

	// RequestDelay is the pause between store lookups (e.g. "200ms").
	RequestDelay time.Duration `yaml:"request-delay,omitempty"`

	// Runtimes adds or overrides known compatibility-runtime names.
	Runtimes map[uint32]string `yaml:"runtimes,omitempty"`
}

// LoadConfigFn is kept as a variable so tests can substitute the loader.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	cfg := &Config{RequestDelay: DefaultRequestDelay}

	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = DefaultRequestDelay
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv applies environment overrides on top of file values.
// COMPATSCAN_STEAM_PATH has the highest priority for the Steam root.
func applyEnv(cfg *Config) {
	if envPath := os.Getenv("COMPATSCAN_STEAM_PATH"); envPath != "" {
		cfg.SteamPath = filepath.Clean(envPath)
	}
}

// Validate rejects obviously unusable configuration values.
func (c *Config) Validate() error {
	if c.SteamPath != "" && strings.Contains(filepath.Clean(c.SteamPath), "..") {
		return fmt.Errorf("invalid steam-path: path traversal not allowed, use an absolute path instead")
	}
	return nil
}
