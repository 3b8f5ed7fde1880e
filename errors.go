package glossary

import (
	"errors"
	"fmt"
)

// Recoverable pipeline conditions.
var (
	ErrNoGlossLines    = errors.New("no gloss lines found")
	ErrNoAbbreviations = errors.New("no abbreviations found")
	ErrMalformedSource = errors.New("malformed glossary source")
	ErrInvalidOptions  = errors.New("invalid options")
)

// MalformedSourceError describes why an uploaded glossary was rejected.
type MalformedSourceError struct {
	// Column is the missing required column, if that was the cause.
	Column string
	// Err is the underlying read error, if any.
	Err error
}

func (e *MalformedSourceError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("malformed glossary source: column %q not found", e.Column)
	case e.Err != nil:
		return fmt.Sprintf("malformed glossary source: %v", e.Err)
	}
	return ErrMalformedSource.Error()
}

func (e *MalformedSourceError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedSource, e.Err}
	}
	return []error{ErrMalformedSource}
}
