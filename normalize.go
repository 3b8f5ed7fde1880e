package glossary

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// glossPunct is trimmed from both ends of every '='- and '-'-separated
// segment before it is matched against the abbreviation grammar.
const glossPunct = ".,;:()[]{}\"'"

// trimPunct strips glossPunct from both ends of s.
func trimPunct(s string) string {
	return strings.Trim(s, glossPunct)
}

// NormalizeText folds compatibility characters with NFKC so that glosses
// typed with full-width forms (ＳＧ, －, ＝) read as their ASCII
// equivalents. Line structure is preserved.
func NormalizeText(s string) string {
	return norm.NFKC.String(s)
}

// isLineBreak reports whether r ends a line. The set covers \n, \r and the
// other Unicode line and paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// splitLines splits text into lines. Runs of line breaks collapse,
// which only drops blank lines.
func splitLines(text string) []string {
	return strings.FieldsFunc(text, isLineBreak)
}

// isMarked reports whether a token carries a morpheme boundary.
func isMarked(tok string) bool {
	return strings.ContainsAny(tok, "-=")
}

// fields splits on runs of Unicode whitespace.
func fields(s string) []string {
	return strings.FieldsFunc(s, unicode.IsSpace)
}
