package glossary

import "strings"

// FilterGlossLines returns the trimmed lines of text that contain at least
// minMarked tokens with a '-' or '='. Blank lines are always dropped and
// input order is kept. A minMarked below 1 is treated as 1.
func FilterGlossLines(text string, minMarked int) []string {
	if minMarked < 1 {
		minMarked = 1
	}
	var out []string
	for _, line := range splitLines(text) {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if countMarked(s) >= minMarked {
			out = append(out, s)
		}
	}
	return out
}

// countMarked counts the whitespace-separated tokens of line carrying
// a morpheme boundary.
func countMarked(line string) int {
	n := 0
	for _, tok := range fields(line) {
		if isMarked(tok) {
			n++
		}
	}
	return n
}
