package glossary

import (
	"strings"
	"testing"
)

func TestFilterGlossLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		min  int
		want []string
	}{
		{
			name: "keeps gloss line, drops prose",
			text: "The coachman is taking grain.\ncoachman-PL grain-ACC bazaar-DAT\n",
			min:  2,
			want: []string{"coachman-PL grain-ACC bazaar-DAT"},
		},
		{
			name: "equals counts as marked",
			text: "lie-PROG=3SG go=Q",
			min:  2,
			want: []string{"lie-PROG=3SG go=Q"},
		},
		{
			name: "trims surrounding whitespace",
			text: "   a-B  c-D   \n",
			min:  2,
			want: []string{"a-B  c-D"},
		},
		{
			name: "blank lines dropped at threshold 1",
			text: "\n\n  \t\nx-Y\n\r\n",
			min:  1,
			want: []string{"x-Y"},
		},
		{
			name: "crlf and lone cr",
			text: "a-B c-D\r\nplain line\re-F g-H",
			min:  2,
			want: []string{"a-B c-D", "e-F g-H"},
		},
		{
			name: "threshold below one acts as one",
			text: "a-B\nplain",
			min:  0,
			want: []string{"a-B"},
		},
		{
			name: "threshold above every line",
			text: "coachman-PL grain-ACC bazaar-DAT take-CVB.SEQ go-CVB.CNT",
			min:  6,
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			min:  1,
			want: nil,
		},
	}
	for _, tt := range tests {
		got := FilterGlossLines(tt.text, tt.min)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("%s: FilterGlossLines(%q, %d) = %q, want %q", tt.name, tt.text, tt.min, got, tt.want)
		}
	}
}

func TestFilterGlossLinesSubsetAndOrder(t *testing.T) {
	text := SampleText + "\nfoo-BAR baz-QUX\nnothing here\n  x-A y=B  \n"
	for min := 1; min <= 4; min++ {
		got := FilterGlossLines(text, min)

		var candidates []string
		for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
			if s := strings.TrimSpace(line); s != "" {
				candidates = append(candidates, s)
			}
		}
		// got must be an ordered subsequence of candidates
		i := 0
		for _, g := range got {
			for i < len(candidates) && candidates[i] != g {
				i++
			}
			if i == len(candidates) {
				t.Fatalf("min=%d: line %q is not an in-order trimmed input line", min, g)
			}
			i++
		}
	}
}

func TestFilterGlossLinesIdempotent(t *testing.T) {
	text := SampleText + "\nfoo-BAR baz-QUX\n"
	for min := 1; min <= 5; min++ {
		once := FilterGlossLines(text, min)
		twice := FilterGlossLines(strings.Join(once, "\n"), min)
		if strings.Join(once, "\n") != strings.Join(twice, "\n") {
			t.Errorf("min=%d: filter not idempotent: %q then %q", min, once, twice)
		}
	}
}
