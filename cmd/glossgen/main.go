// Command glossgen builds an abbreviation glossary CSV from interlinear
// glossed text.
//
//	glossgen [flags] [input-file|-]
//
// Input is read from the file argument or, when it is absent or "-", from
// standard input. The table is written to --output ("-" for stdout).
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	glossary "github.com/hihighsh/glossary-app"
	"github.com/hihighsh/glossary-app/internal/app"
	"github.com/hihighsh/glossary-app/internal/config"
)

type flags struct {
	glossary       string
	base           string
	output         string
	minMarked      int
	noDecompose    bool
	preferBase     bool
	ignoreGlossary bool
	normalizeWidth bool
	showGlossLines bool
	logLevel       string
	logFormat      string
}

func (f *flags) options() glossary.Options {
	return glossary.Options{
		MinMarkedTokens:     f.minMarked,
		Decompose:           !f.noDecompose,
		UseUploadedGlossary: !f.ignoreGlossary,
		PreferUploaded:      !f.preferBase,
		NormalizeWidth:      f.normalizeWidth,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var f flags

	return &cli.App{
		Name:      "glossgen",
		Usage:     "Build an abbreviation glossary from interlinear glossed text.",
		UsageText: "glossgen --glossary mine.csv paper.txt",
		Version:   app.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "glossary",
				Aliases:     []string{"g"},
				Usage:       "Read a user glossary CSV from `file`",
				Destination: &f.glossary,
			},
			&cli.StringFlag{
				Name:        "base",
				Usage:       "Replace the built-in base glossary with `file`",
				EnvVars:     []string{"GLOSSARY_BASE_PATH"},
				Destination: &f.base,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Value:       glossary.ExportFileName,
				Usage:       "Write the glossary CSV to `file` (\"-\" for stdout)",
				Destination: &f.output,
			},
			&cli.IntFlag{
				Name:        "min-marked",
				Value:       glossary.DefaultMinMarkedTokens,
				Usage:       "Minimum hyphen/equals-marked tokens for a gloss line",
				Destination: &f.minMarked,
			},
			&cli.BoolFlag{
				Name:        "no-decompose",
				Usage:       "Count compound abbreviations only as written",
				Destination: &f.noDecompose,
			},
			&cli.BoolFlag{
				Name:        "prefer-base",
				Usage:       "Let the base glossary win over the user glossary",
				Destination: &f.preferBase,
			},
			&cli.BoolFlag{
				Name:        "ignore-glossary",
				Usage:       "Do not use the --glossary file",
				Destination: &f.ignoreGlossary,
			},
			&cli.BoolFlag{
				Name:        "normalize-width",
				Usage:       "Fold full-width letters and digits before extraction",
				Destination: &f.normalizeWidth,
			},
			&cli.BoolFlag{
				Name:        "show-gloss-lines",
				Usage:       "Print the detected gloss lines to stderr",
				Destination: &f.showGlossLines,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "warn",
				Usage:       "Log level: debug, info, warn, error",
				Destination: &f.logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Value:       "text",
				Usage:       "Log format: text or json",
				Destination: &f.logFormat,
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, &f)
		},
	}
}

func run(c *cli.Context, f *flags) error {
	logger := app.NewLogger(config.LogConfig{Level: f.logLevel, Format: f.logFormat})

	opts := f.options()
	if err := opts.Validate(); err != nil {
		return err
	}

	text, err := readInput(c)
	if err != nil {
		return err
	}

	gen, err := app.NewGenerator(config.GlossaryConfig{BasePath: f.base}, logger)
	if err != nil {
		return err
	}

	req := glossary.Request{Text: text, Options: opts}
	if f.glossary != "" && opts.UseUploadedGlossary {
		gf, err := os.Open(f.glossary)
		if err != nil {
			return fmt.Errorf("open glossary: %w", err)
		}
		defer gf.Close()
		req.Glossary = gf
	}

	res, err := gen.Generate(req)
	if res != nil && res.SourceErr != nil {
		logger.Warn(glossary.Hint(res.SourceErr),
			slog.String("file", f.glossary),
			slog.String("error", res.SourceErr.Error()),
		)
	}
	if res != nil && f.showGlossLines {
		for _, line := range res.GlossLines {
			fmt.Fprintln(c.App.ErrWriter, line)
		}
	}
	switch {
	case err == nil:
	case errors.Is(err, glossary.ErrNoGlossLines), errors.Is(err, glossary.ErrNoAbbreviations):
		logger.Warn(glossary.Hint(err))
		return nil
	default:
		return err
	}

	if err := writeOutput(c, f.output, res.Rows); err != nil {
		return err
	}

	logger.Info("glossary written",
		slog.String("output", f.output),
		slog.Int("rows", res.Summary.Distinct),
		slog.Int("occurrences", res.Summary.Occurrences),
		slog.Int("missing_meaning", res.Summary.MissingMeaning),
	)
	return nil
}

func readInput(c *cli.Context) (string, error) {
	path := c.Args().First()
	if path == "" || path == "-" {
		b, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func writeOutput(c *cli.Context, path string, rows []glossary.Row) error {
	if path == "-" {
		return glossary.WriteCSV(c.App.Writer, rows)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := glossary.WriteCSV(out, rows); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
