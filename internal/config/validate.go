package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	glossary "github.com/hihighsh/glossary-app"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Auth.PasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(c.Auth.PasswordHash)); err != nil {
			return fmt.Errorf("auth.password_hash is not a bcrypt hash: %w", err)
		}
	}

	if err := c.Glossary.validate(); err != nil {
		return fmt.Errorf("glossary: %w", err)
	}

	return nil
}

func (g *GlossaryConfig) validate() error {
	if err := g.Options().Validate(); err != nil {
		return err
	}
	if g.MaxTextBytes <= 0 {
		return fmt.Errorf("max_text_bytes must be > 0 (got %d)", g.MaxTextBytes)
	}
	if g.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", g.CacheSize)
	}
	return nil
}

// Options returns the configured pipeline defaults.
func (g GlossaryConfig) Options() glossary.Options {
	return glossary.Options{
		MinMarkedTokens:     g.MinMarkedTokens,
		Decompose:           g.Decompose,
		UseUploadedGlossary: g.UseUploadedGlossary,
		PreferUploaded:      g.PreferUploaded,
		NormalizeWidth:      g.NormalizeWidth,
	}
}
