package glossary

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"1", CategoryPerson},
		{"3", CategoryPerson},
		{"SG", CategoryNumber},
		{"PL", CategoryNumber},
		{"ACC", CategoryCase},
		{"INS", CategoryCase},
		{"POSS", CategoryPossession},
		{"PTCP", CategoryVerbalMorph},
		{"IMP", CategoryVerbalMorph},
		{"NPST", CategoryTAM},
		{"PROG", CategoryTAM},
		{"Q", CategoryOther},
		{"CNT", CategoryOther},
		{"4", CategoryPerson},
		{"12", CategoryPerson},
		{"3SG", CategoryAgreement},
		{"2PL", CategoryAgreement},
		{"PTCP.PAST", CategoryCompound},
		{"2PL.POSS", CategoryCompound},
		{"FOC", CategoryUnclassified},
		{"", CategoryUnclassified},
	}
	for _, tt := range tests {
		if got := Categorize(tt.in); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	want := []Category{
		CategoryPerson, CategoryNumber, CategoryCase, CategoryPossession,
		CategoryVerbalMorph, CategoryTAM, CategoryOther,
		CategoryAgreement, CategoryCompound,
	}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMembers(t *testing.T) {
	if got := Members(CategoryCase); len(got) != 6 || got[0] != "ACC" {
		t.Errorf("Members(case) = %q", got)
	}
	if got := Members(CategoryAgreement); got != nil {
		t.Errorf("Members(agreement) = %q, want nil", got)
	}
	// returned slice must not alias the table
	m := Members(CategoryNumber)
	m[0] = "XX"
	if Categorize("SG") != CategoryNumber {
		t.Error("mutating Members result changed classification")
	}
}
