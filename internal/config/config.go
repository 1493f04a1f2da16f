// Package config loads service configuration from YAML over built-in
// defaults, so a missing file or a partial file both work.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr    string  `yaml:"addr"`
	Storage Storage `yaml:"storage"`
	Search  Search  `yaml:"search"`
	Words   Words   `yaml:"words"`
}

// Storage selects and locates the persistence backend.
type Storage struct {
	Backend string `yaml:"backend"` // "fs" or "badger"
	Path    string `yaml:"path"`
}

// Search bounds every solver run the service performs.
type Search struct {
	MaxDepth int           `yaml:"max_depth"`
	MaxNodes int           `yaml:"max_nodes"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Words configures the word ladder dictionary.
type Words struct {
	Path  string `yaml:"path"`  // empty uses the embedded list
	Watch bool   `yaml:"watch"` // reload the file on change
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:    ":8080",
		Storage: Storage{Backend: "badger", Path: "data"},
		Search:  Search{MaxNodes: 2_000_000, Timeout: 30 * time.Second},
	}
}

// Load reads the file at path over Default. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Backend {
	case "fs", "badger":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Search.MaxDepth < 0 || c.Search.MaxNodes < 0 {
		return fmt.Errorf("search bounds must not be negative")
	}
	return nil
}
