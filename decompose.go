package glossary

import (
	"regexp"
	"strings"
)

// reNumAlpha splits a person+number unit such as 3SG into 3 and SG.
var reNumAlpha = regexp.MustCompile(`^([0-9]+)([A-Z]+)$`)

// Decompose returns the sub-units of a compound abbreviation.
//
// Each dot-part is emitted when it is itself an abbreviation, and a
// digits+letters dot-part is further split into its digit and letter
// groups, so every level is kept: 2PL.POSS gives 2PL, 2, PL, POSS.
// abbr itself is never emitted; a simple abbreviation such as PROG has
// no sub-units.
func Decompose(abbr string) []string {
	var out []string
	for _, part := range strings.Split(abbr, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part != abbr && IsAbbreviation(part) {
			out = append(out, part)
		}
		if m := reNumAlpha.FindStringSubmatch(part); m != nil {
			out = append(out, m[1], m[2])
		}
	}
	return out
}
