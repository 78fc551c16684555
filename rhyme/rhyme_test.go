package rhyme

import (
	"testing"

	"github.com/az-ai-labs/al-khalil/letters"
)

func TestBuildEntriesPairsHarakahWithPrecedingLetter(t *testing.T) {
	window := []rune{letters.Qaf, letters.Fatha, letters.Meem, letters.Sukun}
	entries := buildEntries(window)
	if len(entries) != 2 {
		t.Fatalf("buildEntries returned %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Letter != letters.Qaf || entries[0].Harakah != letters.Fatha {
		t.Errorf("entries[0] = %+v, want ق/fatḥa", entries[0])
	}
	if entries[1].Letter != letters.Meem || entries[1].Harakah != letters.Sukun {
		t.Errorf("entries[1] = %+v, want م/sukūn", entries[1])
	}
}

func TestClassifyMuqayyadaBareSukun(t *testing.T) {
	// A rhyme ending in a plain sākin consonant with no preceding
	// long vowel or alif al-taʾsīs classifies as مقيّدة مجرَّدة.
	entries := []Entry{
		{Letter: letters.Qaf, Harakah: letters.Fatha},
		{Letter: letters.Meem, Harakah: letters.Fatha},
		{Letter: letters.Reh, Harakah: letters.Sukun},
	}
	a := classify(entries)
	if a.Type != "قافية مقيّدة مجرَّدة" {
		t.Errorf("Type = %q, want قافية مقيّدة مجرَّدة", a.Type)
	}
	if a.Rawi.Letter != letters.Reh {
		t.Errorf("Rawi = %+v, want ر", a.Rawi)
	}
	if !a.Ridf.isZero() || a.Tasis != 0 {
		t.Errorf("expected no ridf/taʾsīs, got %+v / %q", a.Ridf, a.Tasis)
	}
}

func TestClassifyMuqayyadaWithRidf(t *testing.T) {
	// ...و + sukūn immediately before the rawī, with a ḍamma on the
	// letter before that: a وْ ridf.
	entries := []Entry{
		{Letter: letters.Seen, Harakah: letters.Damma},
		{Letter: letters.Waw, Harakah: letters.Sukun},
		{Letter: letters.Reh, Harakah: letters.Sukun},
	}
	a := classify(entries)
	if a.Ridf.Letter != letters.Waw || a.Ridf.Harakah != letters.Sukun {
		t.Fatalf("Ridf = %+v, want وْ", a.Ridf)
	}
	if a.Type != "قافية مقيّدة بردف" {
		t.Errorf("Type = %q, want قافية مقيّدة بردف", a.Type)
	}
}

func TestClassifyMuqayyadaWithTasis(t *testing.T) {
	// An alif two positions before the rawī, with no ridf condition
	// satisfied in between, classifies as بتأسيس.
	entries := []Entry{
		{Letter: letters.Alif},
		{Letter: letters.Dal, Harakah: letters.Kasra},
		{Letter: letters.Lam, Harakah: letters.Sukun},
	}
	a := classify(entries)
	if a.Tasis != letters.Alif {
		t.Errorf("Tasis = %q, want alif", a.Tasis)
	}
	if a.Dakhil.Letter != letters.Dal {
		t.Errorf("Dakhil = %+v, want د", a.Dakhil)
	}
	if a.Type != "قافية مقيّدة بتأسيس" {
		t.Errorf("Type = %q, want قافية مقيّدة بتأسيس", a.Type)
	}
}

func TestClassifyMutlaqaMujarrada(t *testing.T) {
	// Rawī carries its own vowel (not sukūn), then a final long vowel
	// (wasl): مطلقة مجرَّدة when nothing else qualifies.
	entries := []Entry{
		{Letter: letters.Lam, Harakah: letters.Fatha},
		{Letter: letters.Alif},
	}
	a := classify(entries)
	if a.Rawi.Letter != letters.Lam {
		t.Errorf("Rawi = %+v, want ل", a.Rawi)
	}
	if a.Wasl.Letter != letters.Alif {
		t.Errorf("Wasl = %+v, want ا", a.Wasl)
	}
	if a.Type != "قافية مطلقة مجرَّدة" {
		t.Errorf("Type = %q, want قافية مطلقة مجرَّدة", a.Type)
	}
}

func TestDiffFlagsRawiMismatch(t *testing.T) {
	base := Analysis{Rawi: Entry{Letter: letters.Reh, Harakah: letters.Sukun}}
	current := Analysis{Rawi: Entry{Letter: letters.Meem, Harakah: letters.Sukun}}
	errs := Diff(base, current)
	if len(errs) != 1 {
		t.Fatalf("Diff returned %d errors, want 1: %v", len(errs), errs)
	}
}

func TestDiffAllowsAlifAlifMaqsuraWaslSwap(t *testing.T) {
	base := Analysis{
		Rawi: Entry{Letter: letters.Lam, Harakah: letters.Fatha},
		Wasl: Entry{Letter: letters.AlifMaqsura, Harakah: letters.Sukun},
	}
	current := Analysis{
		Rawi: Entry{Letter: letters.Lam, Harakah: letters.Fatha},
		Wasl: Entry{Letter: letters.Alif, Harakah: letters.Sukun},
	}
	if errs := Diff(base, current); len(errs) != 0 {
		t.Errorf("Diff flagged a compatible اْ/ىْ waṣl swap: %v", errs)
	}
}

func TestDiffFlagsTasisSanad(t *testing.T) {
	base := Analysis{
		Rawi:  Entry{Letter: letters.Lam, Harakah: letters.Sukun},
		Tasis: 0,
	}
	current := Analysis{
		Rawi:  Entry{Letter: letters.Lam, Harakah: letters.Sukun},
		Tasis: letters.Alif,
	}
	errs := Diff(base, current)
	if len(errs) != 1 {
		t.Fatalf("Diff returned %d errors, want 1: %v", len(errs), errs)
	}
}

func TestDiffFlagsRidfWawYehAgainstAlif(t *testing.T) {
	base := Analysis{
		Rawi: Entry{Letter: letters.Reh, Harakah: letters.Sukun},
		Ridf: Entry{Letter: letters.Alif},
	}
	current := Analysis{
		Rawi: Entry{Letter: letters.Reh, Harakah: letters.Sukun},
		Ridf: Entry{Letter: letters.Waw, Harakah: letters.Sukun},
	}
	errs := Diff(base, current)
	if len(errs) != 1 {
		t.Fatalf("Diff returned %d errors, want 1: %v", len(errs), errs)
	}
}
