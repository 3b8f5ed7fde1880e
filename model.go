package glossary

import (
	"fmt"
	"io"
)

const (
	// DefaultMinMarkedTokens is the default gloss-line threshold.
	DefaultMinMarkedTokens = 2
	// MaxMinMarkedTokens is the largest accepted gloss-line threshold.
	MaxMinMarkedTokens = 10
)

// Row is one line of the generated glossary table.
type Row struct {
	Category     Category `json:"category"`
	Abbreviation string   `json:"abbreviation"`
	Meaning      string   `json:"meaning"`
	Count        int      `json:"count"`
}

// Options controls a single pipeline run.
type Options struct {
	// MinMarkedTokens is the number of '-' or '=' tokens a line needs to
	// count as a gloss line (1–10).
	MinMarkedTokens int
	// Decompose adds the sub-units of compound abbreviations
	// (PTCP.PAST → PTCP, PAST; 3SG → 3, SG) to the occurrences.
	Decompose bool
	// UseUploadedGlossary enables the uploaded override set.
	UseUploadedGlossary bool
	// PreferUploaded lets uploaded meanings overwrite base meanings.
	PreferUploaded bool
	// NormalizeWidth folds full-width and compatibility characters
	// to their ASCII forms before filtering.
	NormalizeWidth bool
}

// DefaultOptions returns the options used when a caller sets nothing.
func DefaultOptions() Options {
	return Options{
		MinMarkedTokens:     DefaultMinMarkedTokens,
		Decompose:           true,
		UseUploadedGlossary: true,
		PreferUploaded:      true,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.MinMarkedTokens < 1 || o.MinMarkedTokens > MaxMinMarkedTokens {
		return fmt.Errorf("%w: min marked tokens must be between 1 and %d (got %d)",
			ErrInvalidOptions, MaxMinMarkedTokens, o.MinMarkedTokens)
	}
	return nil
}

// Request is the input of one Generate call.
type Request struct {
	// Text is the raw pasted text.
	Text string
	// Glossary is the optional uploaded glossary CSV; nil means none.
	Glossary io.Reader
	Options  Options
}

// SourceStats counts what an accepted uploaded glossary contributed.
type SourceStats struct {
	Meanings   int `json:"meanings"`
	Categories int `json:"categories"`
}

// Summary gives totals over the generated rows.
type Summary struct {
	Distinct       int `json:"distinct"`
	Occurrences    int `json:"occurrences"`
	MissingMeaning int `json:"missing_meaning"`
	Uncategorized  int `json:"uncategorized"`
}

// Result holds everything produced by one Generate call.
type Result struct {
	// GlossLines are the lines accepted by the filter, in input order.
	GlossLines []string
	// Occurrences is the non-deduplicated abbreviation multiset.
	Occurrences []string
	// Rows is the sorted glossary table.
	Rows    []Row
	Summary Summary
	// SourceErr is set when the uploaded glossary was rejected; the run
	// then used the base glossary only.
	SourceErr   error
	SourceStats SourceStats
}
