package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the few knobs the journal has. The only credential, the
// provider API key, is read from the environment by the coach and never lives
// in this file.
type Config struct {
	StoreDir   string `yaml:"store_dir"`
	CoachModel string `yaml:"coach_model"`
}

// DefaultConfigPath returns the default location of the config file.
func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "qej.yaml"
	}
	return filepath.Join(base, "qej", "config.yaml")
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return Config{
		StoreDir:   filepath.Join(base, "qej"),
		CoachModel: DefaultCoachModel,
	}
}

// LoadConfig reads the YAML config at path, falling back to defaults when the
// file does not exist. Fields left empty in the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.StoreDir == "" {
		cfg.StoreDir = DefaultConfig().StoreDir
	}
	if cfg.CoachModel == "" {
		cfg.CoachModel = DefaultCoachModel
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if c.StoreDir == "" {
		return fmt.Errorf("store_dir is required")
	}
	if c.CoachModel == "" {
		return fmt.Errorf("coach_model is required")
	}
	return nil
}
