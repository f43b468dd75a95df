package web

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the dashboard server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// MaxUploadBytes limits the accepted upload size.
	MaxUploadBytes int64 `yaml:"maxUploadBytes"`

	// DefaultWindow is the moving-average window used when the request does
	// not specify one.
	DefaultWindow int `yaml:"defaultWindow"`

	// DefaultBins is the histogram bin count used when the request does not
	// specify one.
	DefaultBins int `yaml:"defaultBins"`

	// MaxScatterPoints caps the 3D payload size.
	MaxScatterPoints int `yaml:"maxScatterPoints"`

	// SessionTTL is how long an idle session keeps its dataset.
	SessionTTL time.Duration `yaml:"sessionTTL"`
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:             ":8080",
		MaxUploadBytes:   32 << 20,
		DefaultWindow:    5,
		DefaultBins:      30,
		MaxScatterPoints: 5000,
		SessionTTL:       30 * time.Minute,
	}
}

// LoadConfig reads a YAML config file. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("web: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("web: parse config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("web: config: addr must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("web: config: maxUploadBytes must be positive")
	}
	if c.DefaultWindow < 1 {
		return fmt.Errorf("web: config: defaultWindow must be at least 1")
	}
	if c.DefaultBins < 1 {
		return fmt.Errorf("web: config: defaultBins must be at least 1")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("web: config: sessionTTL must be positive")
	}
	return nil
}
