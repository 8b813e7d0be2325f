package services

import "testing"

func TestNormalizeStatement(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "We Have PMF", "we have pmf"},
		{"trims and collapses whitespace", "  we   have\t\tpmf \n", "we have pmf"},
		{"strips punctuation", "We have PMF!?", "we have pmf"},
		{"strips quotes", `"We have 'PMF'"`, "we have pmf"},
		{"empty maps to empty", "", ""},
		{"punctuation only", "...!?;:", ""},
		{"keeps digits and symbols outside the strip set", "Raised $2M (pre-seed)", "raised $2m (pre-seed)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeStatement(tc.in); got != tc.want {
				t.Fatalf("NormalizeStatement(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeStatement_EqualityKey(t *testing.T) {
	a := NormalizeStatement("We have PMF.")
	b := NormalizeStatement("  we HAVE pmf ")
	if a != b {
		t.Fatalf("expected %q and %q to normalize identically, got %q vs %q", "We have PMF.", "we HAVE pmf", a, b)
	}
}

func TestCleanCompanyName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain name unchanged", "Acme", "Acme"},
		{"strips pictograph emoji", "Acme 🚀", "Acme"},
		{"strips misc symbols and dingbats", "☀Acme✈ ✂Corp", "Acme Corp"},
		{"strips variation selector and zwj", "Acme️‍ Labs", "Acme Labs"},
		{"keeps ampersand dot dash at", "Jones & Sons. t-a @web", "Jones & Sons. t-a @web"},
		{"drops other punctuation", "Acme, Inc! (holdings)", "Acme Inc holdings"},
		{"collapses whitespace", "  Acme   Corp  ", "Acme Corp"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanCompanyName(tc.in); got != tc.want {
				t.Fatalf("CleanCompanyName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
