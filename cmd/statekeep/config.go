package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/statekeep/statekeep/snapshot"
)

// Config holds CLI initialization parameters.
type Config struct {
	Snapshot snapshot.Config `json:"snapshot" yaml:"snapshot"`
	Journal  string          `json:"journal,omitempty" yaml:"journal,omitempty"`   // Journal file; empty disables recording.
	Observer string          `json:"observer,omitempty" yaml:"observer,omitempty"` // Observer registry name.
}

// DefaultConfig returns a Config with defaults for all sections.
func DefaultConfig() Config {
	return Config{
		Snapshot: snapshot.DefaultConfig(),
		Observer: "slog",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Snapshot.Merge(&source.Snapshot)

	if source.Journal != "" {
		c.Journal = source.Journal
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a JSON or YAML config file (by extension), merges it over
// defaults, and returns the result. An empty filename returns defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var loaded Config
	switch ext := filepath.Ext(filename); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
