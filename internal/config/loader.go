package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when CONFIG_PATH is unset.
const DefaultPath = "./config.yaml"

// Load reads the configuration: defaults, then the YAML file at CONFIG_PATH
// (or DefaultPath when it exists), then environment overrides. A missing
// file is an error only when CONFIG_PATH names it.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	if path == "" {
		path, explicit = DefaultPath, false
	}

	cfg := defaultConfig()
	if err := read(path, explicit, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// defaultConfig holds the defaults cleanenv cannot express for booleans.
func defaultConfig() Config {
	return Config{
		Glossary: GlossaryConfig{
			Decompose:           true,
			UseUploadedGlossary: true,
			PreferUploaded:      true,
		},
	}
}

func read(path string, explicit bool, cfg *Config) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, err)
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
