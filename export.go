package glossary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ExportFileName is the download name for an exported glossary.
const ExportFileName = "abbreviation_glossary.csv"

// exportHeader is the column order of an exported glossary.
var exportHeader = []string{ColumnCategory, ColumnAbbreviation, ColumnMeaning, ColumnCount}

// WriteCSV writes rows as UTF-8 CSV with a header row, in the given order.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		rec := []string{string(r.Category), r.Abbreviation, r.Meaning, strconv.Itoa(r.Count)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %q: %w", r.Abbreviation, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRows reads a table written by WriteCSV, possibly edited by hand.
// Columns are located by name; a missing or non-numeric Count reads as 0.
// Rows without an abbreviation are skipped.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := newCSVReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexColumns(header)
	abbrCol, ok := cols[strings.ToLower(ColumnAbbreviation)]
	if !ok {
		return nil, &MalformedSourceError{Column: ColumnAbbreviation}
	}
	meaningCol, hasMeaning := cols[strings.ToLower(ColumnMeaning)]
	catCol, hasCat := cols[strings.ToLower(ColumnCategory)]
	countCol, hasCount := cols[strings.ToLower(ColumnCount)]

	var rows []Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row := Row{Abbreviation: cell(record, abbrCol)}
		if row.Abbreviation == "" {
			continue
		}
		if hasMeaning {
			row.Meaning = cell(record, meaningCol)
		}
		if hasCat {
			row.Category = Category(cell(record, catCol))
		}
		if hasCount {
			row.Count, _ = strconv.Atoi(cell(record, countCol))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
