package arud

import (
	"errors"
	"testing"

	"github.com/az-ai-labs/al-khalil/meter"
)

func TestAnalyseClassicalUnknownMeterOnGarbage(t *testing.T) {
	result := AnalyseClassical("xyz123", false)
	if result.Meter != meter.Unknown {
		t.Errorf("Meter = %q, want %q", result.Meter, meter.Unknown)
	}
	if result.Feet != nil {
		t.Errorf("Feet = %+v, want nil on unrecognised meter", result.Feet)
	}
}

func TestAnalyseFreeVerseUnrecognisedMeterOnGarbage(t *testing.T) {
	_, err := AnalyseFreeVerse("xyz123")
	if !errors.Is(err, ErrUnrecognisedMeter) {
		t.Errorf("err = %v, want ErrUnrecognisedMeter", err)
	}
}

func TestAnalyseRhymesAllEmptyReturnsError(t *testing.T) {
	_, err := AnalyseRhymes([]string{"", "", ""})
	if !errors.Is(err, ErrAllVersesEmpty) {
		t.Errorf("err = %v, want ErrAllVersesEmpty", err)
	}
}

func TestAnalyseRhymesConsistentRawiNoErrors(t *testing.T) {
	// Three verses all ending on a sākin ر: consistent rawī, no mismatches.
	verses := []string{"سَحَرْ", "قَمَرْ", "مَطَرْ"}

	results, err := AnalyseRhymes(verses)
	if err != nil {
		t.Fatalf("AnalyseRhymes: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("AnalyseRhymes returned %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.Type != "قافية مقيّدة مجرَّدة" {
			t.Errorf("results[%d].Type = %q, want قافية مقيّدة مجرَّدة", i, r.Type)
		}
	}
	if len(results[1].Errors) != 0 {
		t.Errorf("results[1].Errors = %v, want none (matches reference verse)", results[1].Errors)
	}
	if len(results[2].Errors) != 0 {
		t.Errorf("results[2].Errors = %v, want none (matches reference verse)", results[2].Errors)
	}
}

func TestAnalyseRhymesFlagsRawiMismatch(t *testing.T) {
	// Same as above, but the third verse ends on م instead of ر.
	verses := []string{"سَحَرْ", "قَمَرْ", "كَرِمْ"}

	results, err := AnalyseRhymes(verses)
	if err != nil {
		t.Fatalf("AnalyseRhymes: %v", err)
	}
	if len(results[2].Errors) == 0 {
		t.Fatalf("results[2].Errors is empty, want a rawī mismatch diagnostic")
	}
}

func TestAnalyseRhymesSkipsEmptyVerseSlot(t *testing.T) {
	verses := []string{"", "سَحَرْ", "", "قَمَرْ"}

	results, err := AnalyseRhymes(verses)
	if err != nil {
		t.Fatalf("AnalyseRhymes: %v", err)
	}
	if results[0].Text != "" || results[0].Rawi.Letter != 0 {
		t.Errorf("results[0] = %+v, want zero-value for empty slot", results[0])
	}
	if results[2].Text != "" || results[2].Rawi.Letter != 0 {
		t.Errorf("results[2] = %+v, want zero-value for empty slot", results[2])
	}
	if results[1].Text == "" {
		t.Errorf("results[1] should be the reference verse's analysis, got zero value")
	}
	if results[3].Text == "" {
		t.Errorf("results[3] should be analysed against results[1], got zero value")
	}
}

func TestStripBoundaryRemovesSentinel(t *testing.T) {
	if got := stripBoundary("#ab#cd#"); got != "abcd" {
		t.Errorf("stripBoundary(#ab#cd#) = %q, want abcd", got)
	}
}

func TestCleanDisplayInsertsSpaceAfterAlifMaqsuraAndTehMarbuta(t *testing.T) {
	got := cleanDisplay("رحمة وعلى")
	if got == "رحمة وعلى" {
		t.Errorf("cleanDisplay(%q) = %q, want substitutions to have fired", "رحمة وعلى", got)
	}
}
