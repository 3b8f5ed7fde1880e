package app

import (
	"fmt"
	"log/slog"
	"os"

	glossary "github.com/hihighsh/glossary-app"
	"github.com/hihighsh/glossary-app/internal/config"
)

// NewGenerator builds the glossary generator. When cfg.BasePath is set the
// built-in base glossary is replaced by the meanings read from that CSV.
func NewGenerator(cfg config.GlossaryConfig, logger *slog.Logger) (*glossary.Generator, error) {
	if cfg.BasePath == "" {
		return glossary.New(), nil
	}

	f, err := os.Open(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("open base glossary: %w", err)
	}
	defer f.Close()

	src, err := glossary.ReadSource(f)
	if err != nil {
		return nil, fmt.Errorf("read base glossary %s: %w", cfg.BasePath, err)
	}

	logger.Info("base glossary loaded",
		slog.String("path", cfg.BasePath),
		slog.Int("entries", len(src.Meanings)),
	)
	return glossary.New(glossary.WithBase(src.Meanings)), nil
}
