package glossary

import (
	"regexp"
	"strings"
)

// reAbbr is the abbreviation grammar: optional leading digits, uppercase
// letters, then optional dot-joined uppercase/digit groups.
var reAbbr = regexp.MustCompile(`^[0-9]*[A-Z]+(?:\.[A-Z0-9]+)*$`)

// IsAbbreviation reports whether s is a well-formed gloss abbreviation.
func IsAbbreviation(s string) bool {
	return reAbbr.MatchString(s)
}

// ExtractAbbreviations returns every abbreviation occurrence found in
// lines, in discovery order and with duplicates kept. When decompose is
// true each occurrence is followed by its Decompose sub-units.
//
// Tokens are split on '=' first, so clitics such as the 3SG in
// lie-PROG=3SG are seen as whole segments; each segment is then split on
// '-' and every part after the stem is a candidate.
func ExtractAbbreviations(lines []string, decompose bool) []string {
	var out []string
	add := func(abbr string) {
		out = append(out, abbr)
		if decompose {
			out = append(out, Decompose(abbr)...)
		}
	}

	for _, line := range lines {
		for _, tok := range fields(line) {
			for _, seg := range strings.Split(tok, "=") {
				seg = trimPunct(seg)
				if IsAbbreviation(seg) {
					add(seg)
				}
				parts := strings.Split(seg, "-")
				for _, suf := range parts[1:] {
					suf = trimPunct(suf)
					if IsAbbreviation(suf) {
						add(suf)
					}
				}
			}
		}
	}
	return out
}
