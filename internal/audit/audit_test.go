package audit

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"California Proposition 65", "california proposition 65"},
		{"cut–off wheel", "cut-off wheel"},
		{"cut—off wheel", "cut-off wheel"},
		{"too   many\n\nspaces\there", "too many spaces here"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"California – Proposition 65\nWEEE   symbols",
		"already normalized text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestMissingKeywords_FlagsOnlyDropped(t *testing.T) {
	reference := "This product can expose you to chemicals known to the State of " +
		"California to cause harm. See Proposition 65 warnings. Charge the battery fully."
	candidate := "Charge the battery fully before first use."

	missing := MissingKeywords(reference, candidate, DefaultKeywords)

	wantFlagged := map[string]bool{"Proposition 65": true, "California": true}
	for _, kw := range missing {
		if !wantFlagged[kw] {
			t.Errorf("unexpected flag %q", kw)
		}
		delete(wantFlagged, kw)
	}
	for kw := range wantFlagged {
		t.Errorf("expected %q to be flagged", kw)
	}
}

func TestMissingKeywords_CaseAndDashInsensitive(t *testing.T) {
	// An en-dash variant in the original still matches the hyphenated
	// keyword, and survival in the rewrite is case-insensitive.
	reference := "Use only approved CUT–OFF wheels. california proposition 65 notice."
	candidate := "Approved cut-off wheels only. CALIFORNIA PROPOSITION 65 NOTICE."

	missing := MissingKeywords(reference, candidate, DefaultKeywords)
	if len(missing) != 0 {
		t.Errorf("expected no flags, got %v", missing)
	}
}

func TestMissingKeywords_FlaggedOncePerKeyword(t *testing.T) {
	reference := strings.Repeat("Proposition 65. ", 5)
	candidate := "No mention here."

	missing := MissingKeywords(reference, candidate, []string{"Proposition 65"})
	if len(missing) != 1 || missing[0] != "Proposition 65" {
		t.Errorf("got %v, want exactly one flag", missing)
	}
}

func TestMissingKeywords_OrderFollowsKeywordList(t *testing.T) {
	keywords := []string{"charger", "battery", "kickback"}
	reference := "kickback risk. battery pack. charger base."
	candidate := "nothing survives"

	missing := MissingKeywords(reference, candidate, keywords)
	want := []string{"charger", "battery", "kickback"}
	if len(missing) != len(want) {
		t.Fatalf("got %v", missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

func TestMissingKeywords_AbsentFromReferenceNotFlagged(t *testing.T) {
	missing := MissingKeywords("plain text with nothing special", "also plain", DefaultKeywords)
	if len(missing) != 0 {
		t.Errorf("expected no flags, got %v", missing)
	}
}
