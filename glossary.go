// Package glossary extracts interlinear-gloss abbreviations (ACC, 3SG,
// PTCP.PAST, ...) from pasted linguistic text and builds a frequency-sorted,
// categorized glossary table merged against a base dictionary and an optional
// user-supplied override set.
package glossary

import (
	"bytes"
	"errors"
	"io"
)

// Generator holds the base glossary and runs the extraction pipeline.
// A Generator is immutable after New and safe for concurrent use.
type Generator struct {
	// base maps abbreviation → meaning for the built-in (or configured) set.
	base map[string]string
}

// Option configures a Generator.
type Option func(*Generator)

// WithBase replaces the built-in base glossary with meanings.
// The map is copied.
func WithBase(meanings map[string]string) Option {
	return func(g *Generator) {
		g.base = copyMap(meanings)
	}
}

// New returns a Generator using the built-in base glossary unless
// overridden by WithBase.
func New(opts ...Option) *Generator {
	g := &Generator{base: BaseMeanings()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Base returns a copy of the generator's base glossary.
func (g *Generator) Base() map[string]string {
	return copyMap(g.base)
}

// Generate runs filter → extract → merge → build for one request.
//
// ErrNoGlossLines and ErrNoAbbreviations are returned together with a
// partially filled Result so callers can still report source diagnostics.
// A malformed uploaded glossary never fails the run: it is recorded in
// Result.SourceErr and only the base glossary is used.
func (g *Generator) Generate(req Request) (*Result, error) {
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}

	var src *Source
	if opts.UseUploadedGlossary && req.Glossary != nil {
		s, err := ReadSource(req.Glossary)
		if err != nil {
			res.SourceErr = err
		} else {
			src = s
			res.SourceStats = SourceStats{
				Meanings:   len(s.Meanings),
				Categories: len(s.Categories),
			}
		}
	}

	text := req.Text
	if opts.NormalizeWidth {
		text = NormalizeText(text)
	}

	res.GlossLines = FilterGlossLines(text, opts.MinMarkedTokens)
	if len(res.GlossLines) == 0 {
		return res, ErrNoGlossLines
	}

	res.Occurrences = ExtractAbbreviations(res.GlossLines, opts.Decompose)
	if len(res.Occurrences) == 0 {
		return res, ErrNoAbbreviations
	}

	var uploadedMeanings, categories map[string]string
	if src != nil {
		uploadedMeanings = src.Meanings
		categories = src.Categories
	}
	meanings := MergeMeanings(g.base, uploadedMeanings, opts.PreferUploaded)

	res.Rows = BuildTable(res.Occurrences, meanings, categories)
	res.Summary = summarize(res.Rows, len(res.Occurrences))
	return res, nil
}

// GenerateText is a convenience wrapper for Generate with an optional
// glossary given as raw CSV bytes.
func (g *Generator) GenerateText(text string, glossaryCSV []byte, opts Options) (*Result, error) {
	var r io.Reader
	if len(glossaryCSV) > 0 {
		r = bytes.NewReader(glossaryCSV)
	}
	return g.Generate(Request{Text: text, Glossary: r, Options: opts})
}

// Hint returns the user-facing suggestion attached to a recoverable
// pipeline condition, or "" for other errors.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrNoGlossLines):
		return "no gloss lines found; lowering the marked-token threshold may help"
	case errors.Is(err, ErrNoAbbreviations):
		return "no abbreviations found; check that glosses use uppercase abbreviations joined with '-' or '='"
	case errors.Is(err, ErrMalformedSource):
		return "the uploaded glossary could not be read; only the base glossary was used"
	}
	return ""
}

func summarize(rows []Row, total int) Summary {
	s := Summary{Distinct: len(rows), Occurrences: total}
	for _, r := range rows {
		if r.Meaning == "" {
			s.MissingMeaning++
		}
		if r.Category == "" {
			s.Uncategorized++
		}
	}
	return s
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
