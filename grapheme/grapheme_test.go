package grapheme

import (
	"strings"
	"testing"
)

func TestCleanedBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "قِفَا", "#قِفَا#"},
		{"already spaced", " قِفَا ", "#قِفَا#"},
		{"multiple spaces collapse", "قِفَا    نَبْكِ", "#قِفَا#نَبْكِ#"},
		{"empty", "", "#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cleaned(tt.in); got != tt.want {
				t.Errorf("Cleaned(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanedStripsPunctuation(t *testing.T) {
	got := Cleaned("قِفَا، نَبْكِ؟")
	if strings.ContainsAny(got, "،؟") {
		t.Errorf("Cleaned(...) = %q, punctuation not stripped", got)
	}
}

func TestCleanedNoDoubleBoundary(t *testing.T) {
	got := Cleaned("قِفَا")
	if strings.Contains(got, "##") {
		t.Errorf("Cleaned(...) = %q, contains ##", got)
	}
	if !strings.HasPrefix(got, "#") || !strings.HasSuffix(got, "#") {
		t.Errorf("Cleaned(...) = %q, must begin and end with #", got)
	}
}

func TestCleanedIdempotent(t *testing.T) {
	once := Cleaned("قِفَا نَبْكِ")
	twice := Cleaned(once)
	if once != twice {
		t.Errorf("Cleaned is not idempotent: %q != %q", once, twice)
	}
}

func TestSplitPairsLetterAndDiacritic(t *testing.T) {
	gs := Split("#قِفَا#")
	if len(gs) == 0 {
		t.Fatal("Split returned no graphemes")
	}
	if gs[0].Letter != '#' {
		t.Errorf("first grapheme = %q, want boundary", gs[0].Letter)
	}
	if gs[len(gs)-1].Letter != '#' {
		t.Errorf("last grapheme = %q, want boundary", gs[len(gs)-1].Letter)
	}
	// 'ق' + kasra
	if gs[1].Letter != 'ق' || gs[1].Diacritic != 'ِ' {
		t.Errorf("gs[1] = %+v, want ق with kasra", gs[1])
	}
}

func TestSplitHandlesShaddaVowelCluster(t *testing.T) {
	// ش + shadda + fatha: one cluster, two diacritics.
	gs := Split("شَّ")
	if len(gs) != 1 {
		t.Fatalf("Split(شَّ) = %d graphemes, want 1", len(gs))
	}
	if gs[0].Letter != 'ش' {
		t.Errorf("letter = %q, want ش", gs[0].Letter)
	}
}
