package glossary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column names of the tabular glossary format, matched case-insensitively.
const (
	ColumnCategory     = "Category"
	ColumnAbbreviation = "Abbreviation"
	ColumnMeaning      = "Meaning"
	ColumnCount        = "Count"
)

// Source is an uploaded glossary: per-abbreviation meanings and category
// overrides. Absent fields have no key.
type Source struct {
	Meanings   map[string]string
	Categories map[string]string
}

// ReadSource parses a glossary CSV with a header row naming at least the
// Abbreviation and Meaning columns; Category is optional and any other
// column is ignored. Rows with a blank or "nan" abbreviation are skipped,
// and blank or "nan" meanings and categories are left out. A later row
// overrides an earlier row for the same abbreviation.
//
// Any failure is returned as a *MalformedSourceError.
func ReadSource(r io.Reader) (*Source, error) {
	cr := newCSVReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MalformedSourceError{Err: errors.New("empty input")}
		}
		return nil, &MalformedSourceError{Err: fmt.Errorf("read header: %w", err)}
	}

	cols := indexColumns(header)
	abbrCol, ok := cols[strings.ToLower(ColumnAbbreviation)]
	if !ok {
		return nil, &MalformedSourceError{Column: ColumnAbbreviation}
	}
	meaningCol, ok := cols[strings.ToLower(ColumnMeaning)]
	if !ok {
		return nil, &MalformedSourceError{Column: ColumnMeaning}
	}
	catCol, hasCat := cols[strings.ToLower(ColumnCategory)]

	src := &Source{
		Meanings:   make(map[string]string),
		Categories: make(map[string]string),
	}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &MalformedSourceError{Err: fmt.Errorf("read row: %w", err)}
		}

		abbr := cell(record, abbrCol)
		if abbr == "" {
			continue
		}
		if meaning := cell(record, meaningCol); meaning != "" {
			src.Meanings[abbr] = meaning
		}
		if hasCat {
			if cat := cell(record, catCol); cat != "" {
				src.Categories[abbr] = cat
			}
		}
	}
	return src, nil
}

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // allow ragged rows
	cr.TrimLeadingSpace = true
	return cr
}

// indexColumns maps lower-cased header names to their position. The first
// occurrence of a duplicated name wins.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		key := strings.ToLower(strings.TrimSpace(h))
		if _, ok := cols[key]; !ok {
			cols[key] = i
		}
	}
	return cols
}

// cell returns the trimmed value at i, treating short rows and the
// spreadsheet "nan" placeholder as blank.
func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	v := strings.TrimSpace(record[i])
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}
