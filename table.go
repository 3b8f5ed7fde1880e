package glossary

import (
	"cmp"
	"slices"
)

// BuildTable turns an occurrence multiset into one row per distinct
// abbreviation. The category comes from categories when present, else
// from Categorize; the meaning comes from meanings or stays empty.
//
// Rows are ordered by count descending, then by abbreviation ascending.
func BuildTable(occurrences []string, meanings, categories map[string]string) []Row {
	freq := make(map[string]int)
	var order []string
	for _, abbr := range occurrences {
		if freq[abbr] == 0 {
			order = append(order, abbr)
		}
		freq[abbr]++
	}

	rows := make([]Row, 0, len(order))
	for _, abbr := range order {
		cat := Category(categories[abbr])
		if cat == "" {
			cat = Categorize(abbr)
		}
		rows = append(rows, Row{
			Category:     cat,
			Abbreviation: abbr,
			Meaning:      meanings[abbr],
			Count:        freq[abbr],
		})
	}

	SortRows(rows)
	return rows
}

// SortRows orders rows by count descending, then abbreviation ascending.
func SortRows(rows []Row) {
	slices.SortFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Abbreviation, b.Abbreviation)
	})
}
