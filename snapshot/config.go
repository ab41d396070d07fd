package snapshot

// Config holds snapshot persistence parameters.
type Config struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`       // Snapshot location; empty disables persistence.
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"` // Registry name; defaults to "file".
}

// DefaultConfig returns the default snapshot configuration (disabled).
func DefaultConfig() Config {
	return Config{Backend: "file"}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Path != "" {
		c.Path = source.Path
	}
	if source.Backend != "" {
		c.Backend = source.Backend
	}
}

// New creates a Store from configuration. Returns a nil Store when Path is
// empty, indicating persistence is disabled.
func New(cfg *Config) (Store, error) {
	if cfg.Path == "" {
		return nil, nil
	}

	backend := cfg.Backend
	if backend == "" {
		backend = "file"
	}
	opener, err := GetOpener(backend)
	if err != nil {
		return nil, err
	}
	return opener(cfg.Path), nil
}
