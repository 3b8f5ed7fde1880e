package glossary

import (
	"errors"
	"strings"
	"testing"
)

func TestReadSource(t *testing.T) {
	in := "abbreviation,MEANING, Category \n" +
		"FOC,focus,information structure\n" +
		"ACC,accusative (object),\n" +
		"nan,ignored,x\n" +
		",blank,x\n" +
		"EVID,nan,evidentiality\n" +
		"Q,NaN,nan\n" +
		"FOC,focus marker\n"
	src, err := ReadSource(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}

	wantMeanings := map[string]string{
		"FOC": "focus marker",
		"ACC": "accusative (object)",
	}
	if len(src.Meanings) != len(wantMeanings) {
		t.Errorf("Meanings = %v, want %v", src.Meanings, wantMeanings)
	}
	for k, v := range wantMeanings {
		if src.Meanings[k] != v {
			t.Errorf("Meanings[%q] = %q, want %q", k, src.Meanings[k], v)
		}
	}

	wantCats := map[string]string{
		"FOC":  "information structure",
		"EVID": "evidentiality",
	}
	if len(src.Categories) != len(wantCats) {
		t.Errorf("Categories = %v, want %v", src.Categories, wantCats)
	}
	for k, v := range wantCats {
		if src.Categories[k] != v {
			t.Errorf("Categories[%q] = %q, want %q", k, src.Categories[k], v)
		}
	}
}

func TestReadSourceWithoutCategory(t *testing.T) {
	src, err := ReadSource(strings.NewReader("\ufeffAbbreviation,Meaning\nFOC,focus\n"))
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}
	if src.Meanings["FOC"] != "focus" {
		t.Errorf("Meanings[FOC] = %q, want %q", src.Meanings["FOC"], "focus")
	}
	if len(src.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", src.Categories)
	}
}

func TestReadSourceMalformed(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		column string
	}{
		{"missing meaning", "Abbreviation,Category\nFOC,x\n", ColumnMeaning},
		{"missing abbreviation", "Abbr,Meaning\nFOC,focus\n", ColumnAbbreviation},
		{"empty", "", ""},
		{"bad quoting", "Abbreviation,Meaning\n\"FOC,focus\n", ""},
	}
	for _, tt := range tests {
		_, err := ReadSource(strings.NewReader(tt.in))
		if !errors.Is(err, ErrMalformedSource) {
			t.Errorf("%s: err = %v, want ErrMalformedSource", tt.name, err)
			continue
		}
		var mse *MalformedSourceError
		if !errors.As(err, &mse) {
			t.Errorf("%s: err %T is not *MalformedSourceError", tt.name, err)
			continue
		}
		if mse.Column != tt.column {
			t.Errorf("%s: Column = %q, want %q", tt.name, mse.Column, tt.column)
		}
	}
}

func TestMergeMeanings(t *testing.T) {
	base := map[string]string{"ACC": "accusative", "DAT": "dative"}
	up := map[string]string{"ACC": "object case", "FOC": "focus"}

	got := MergeMeanings(base, up, true)
	if got["ACC"] != "object case" || got["DAT"] != "dative" || got["FOC"] != "focus" {
		t.Errorf("prefer uploaded: %v", got)
	}

	got = MergeMeanings(base, up, false)
	if got["ACC"] != "accusative" || got["DAT"] != "dative" || got["FOC"] != "focus" {
		t.Errorf("prefer base: %v", got)
	}

	if base["ACC"] != "accusative" || len(base) != 2 || up["ACC"] != "object case" || len(up) != 2 {
		t.Error("MergeMeanings modified its inputs")
	}

	got = MergeMeanings(base, nil, true)
	if len(got) != len(base) {
		t.Errorf("nil uploaded: %v", got)
	}
}
