package glossary

import "sort"

// Entry is one glossary dictionary record.
type Entry struct {
	Abbreviation string   `json:"abbreviation"`
	Meaning      string   `json:"meaning"`
	Category     Category `json:"category,omitempty"`
}

// baseGlossary is the built-in abbreviation → meaning set.
var baseGlossary = map[string]string{
	"1": "1st person",
	"2": "2nd person",
	"3": "3rd person",

	"SG":   "singular",
	"PL":   "plural",
	"POSS": "possessive",

	"ACC": "accusative",
	"DAT": "dative",
	"GEN": "genitive",
	"ABL": "ablative",
	"LOC": "locative",
	"INS": "instrumental",

	"VN":   "verbal noun",
	"IMP":  "imperative",
	"PROG": "progressive",
	"Q":    "question particle",

	"PTCP": "participle",
	"PAST": "past",
	"NPST": "non-past",
	"CVB":  "converb",
	"SEQ":  "sequential",
	"CNT":  "continuative",

	"PTCP.PAST": "past participle",
	"PTCP.NPST": "non-past participle",
	"CVB.SEQ":   "sequential converb",
	"CVB.CNT":   "continuative converb",

	"1SG": "1st person singular",
	"2SG": "2nd person singular",
	"3SG": "3rd person singular",
	"1PL": "1st person plural",
	"2PL": "2nd person plural",
	"3PL": "3rd person plural",
}

// BaseMeanings returns a copy of the built-in base glossary.
func BaseMeanings() map[string]string {
	return copyMap(baseGlossary)
}

// Entries returns meanings as entries sorted by abbreviation, each
// categorized with Categorize.
func Entries(meanings map[string]string) []Entry {
	out := make([]Entry, 0, len(meanings))
	for abbr, meaning := range meanings {
		out = append(out, Entry{
			Abbreviation: abbr,
			Meaning:      meaning,
			Category:     Categorize(abbr),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Abbreviation < out[j].Abbreviation
	})
	return out
}

// SampleText is a short interlinear example (Uyghur, with a Japanese
// free translation) useful as placeholder input.
const SampleText = `(1) aravakaš-lar ġala-ni bozor-ġa al-ïb bor-a
coachman-PL grain-ACC bazaar-DAT take-CVB.SEQ go-CVB.CNT
yat-ïb=dur.
lie-PROG=3SG
「御者は穀物をバザールに持って行っているところだ。」
`
