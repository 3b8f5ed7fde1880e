package glossary

import (
	"regexp"
	"strings"
)

// Category is the semantic group of an abbreviation. Uploaded glossaries
// may carry labels outside the predefined set.
type Category string

const (
	CategoryPerson       Category = "person"
	CategoryNumber       Category = "number"
	CategoryCase         Category = "case"
	CategoryPossession   Category = "possession"
	CategoryVerbalMorph  Category = "verbal morphology"
	CategoryTAM          Category = "tense/aspect/mood"
	CategoryOther        Category = "other"
	CategoryAgreement    Category = "agreement"
	CategoryCompound     Category = "compound"
	CategoryUnclassified Category = ""
)

// categorySets lists the fixed membership sets in lookup order.
var categorySets = []struct {
	cat     Category
	members []string
}{
	{CategoryPerson, []string{"1", "2", "3"}},
	{CategoryNumber, []string{"SG", "PL"}},
	{CategoryCase, []string{"ACC", "DAT", "GEN", "ABL", "LOC", "INS"}},
	{CategoryPossession, []string{"POSS"}},
	{CategoryVerbalMorph, []string{"PTCP", "CVB", "VN", "IMP"}},
	{CategoryTAM, []string{"PAST", "NPST", "PROG"}},
	{CategoryOther, []string{"Q", "SEQ", "CNT"}},
}

// memberCategory maps each fixed member to its category. When a member
// appears in several sets the first set wins.
var memberCategory = func() map[string]Category {
	m := make(map[string]Category)
	for _, set := range categorySets {
		for _, abbr := range set.members {
			if _, ok := m[abbr]; !ok {
				m[abbr] = set.cat
			}
		}
	}
	return m
}()

var (
	reDigits     = regexp.MustCompile(`^[0-9]+$`)
	reDigitAlpha = regexp.MustCompile(`^[0-9]+[A-Z]+$`)
)

// Categorize assigns abbr to a category by fixed membership, falling back
// to its shape: all digits is a person, digits+letters is agreement and a
// dotted form is a compound. Anything else is unclassified.
func Categorize(abbr string) Category {
	if c, ok := memberCategory[abbr]; ok {
		return c
	}
	switch {
	case reDigits.MatchString(abbr):
		return CategoryPerson
	case reDigitAlpha.MatchString(abbr):
		return CategoryAgreement
	case strings.Contains(abbr, "."):
		return CategoryCompound
	}
	return CategoryUnclassified
}

// Categories lists the predefined labels in lookup order followed by the
// structural fallbacks.
func Categories() []Category {
	out := make([]Category, 0, len(categorySets)+2)
	for _, set := range categorySets {
		out = append(out, set.cat)
	}
	return append(out, CategoryAgreement, CategoryCompound)
}

// Members returns the fixed members of c, or nil for the structural
// categories.
func Members(c Category) []string {
	for _, set := range categorySets {
		if set.cat == c {
			return append([]string(nil), set.members...)
		}
	}
	return nil
}
