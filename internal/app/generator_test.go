package app

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	glossary "github.com/hihighsh/glossary-app"
	"github.com/hihighsh/glossary-app/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewGenerator_BuiltinBase(t *testing.T) {
	g, err := NewGenerator(config.GlossaryConfig{}, discardLogger())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if g.Base()["ACC"] != "accusative" {
		t.Errorf("built-in base missing ACC: %v", g.Base())
	}
}

func TestNewGenerator_BasePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.csv")
	if err := os.WriteFile(path, []byte("Abbreviation,Meaning\nFOC,focus\nACC,object\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	g, err := NewGenerator(config.GlossaryConfig{BasePath: path}, discardLogger())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	base := g.Base()
	if len(base) != 2 || base["FOC"] != "focus" || base["ACC"] != "object" {
		t.Errorf("base = %v", base)
	}
}

func TestNewGenerator_BadBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.csv")
	if err := os.WriteFile(path, []byte("Abbreviation\nFOC\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := NewGenerator(config.GlossaryConfig{BasePath: path}, discardLogger())
	if !errors.Is(err, glossary.ErrMalformedSource) {
		t.Errorf("err = %v, want ErrMalformedSource", err)
	}

	_, err = NewGenerator(config.GlossaryConfig{BasePath: filepath.Join(t.TempDir(), "missing.csv")}, discardLogger())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}
