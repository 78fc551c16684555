// Package arud wires the prosody pipeline's leaf packages into the
// five public operations classical and free-verse Arabic poetry
// analysis exposes: classical-verse scansion, free-verse scansion,
// cross-verse rhyme checking, and per-foot wizard validation against
// an expected pattern set, in both classical and free-verse form.
package arud

import (
	"errors"
	"strings"

	"github.com/az-ai-labs/al-khalil/foot"
	"github.com/az-ai-labs/al-khalil/freeverse"
	"github.com/az-ai-labs/al-khalil/ishbaa"
	"github.com/az-ai-labs/al-khalil/letters"
	"github.com/az-ai-labs/al-khalil/meter"
	"github.com/az-ai-labs/al-khalil/normalize"
	"github.com/az-ai-labs/al-khalil/rhyme"
	"github.com/az-ai-labs/al-khalil/skeleton"
	"github.com/az-ai-labs/al-khalil/wizard"
)

// ErrUnrecognisedMeter is returned by AnalyseFreeVerse when a poem's
// repeated tafʿīla cannot be identified from its opening symbols.
var ErrUnrecognisedMeter = errors.New(
	"لم يتم التعرّف على وزن هذه القصيدة للأسف , تأكّد من إدخال نصّ القصيدة بشكل صحيح")

// ErrAllVersesEmpty is returned by AnalyseRhymes when every verse in
// the input is the empty string.
var ErrAllVersesEmpty = errors.New("arud: every verse in the poem is empty")

// Foot is one prosodic foot of a classical verse: its traditional
// name and the verse letters it spans.
type Foot struct {
	Name string
	Text string
}

// VerseResult is a classical verse's full scansion.
type VerseResult struct {
	Shater  string // the verse's prosodic form with boundary markers removed
	Arrodi  string // the prosodic ("arrodi") written form; same text as Shater
	Chars   string // letter-only subsequence
	Harakat string // one vowel/sukūn diacritic per letter of Chars
	Rokaz   string // the binary U/- skeleton
	Meter   string // stable ASCII meter identifier, or meter.Unknown
	Feet    []Foot // nil when Meter is unknown
}

// PoemResult is a free-verse poem's full scansion: its dominant meter
// plus three parallel slices, one entry per matched (or placeholder)
// foot.
type PoemResult struct {
	Meter    string
	Patterns []string // each foot's U/- pattern
	Names    []string // each foot's traditional name, or "????"
	Words    []string // the verse letters each foot spans
}

// AnalyseClassical scans a classical verse. isAjuz marks text as a
// hemistich-closing verse so its final vowel is lengthened before
// scansion. When the verse's raw skeleton matches no
// meter, AnalyseClassical retries after ishbāʿ (pronoun-vowel
// lengthening); if that also fails, Meter is meter.Unknown and Feet
// is nil — never an error, since an unrecognised meter is a normal,
// expected outcome for malformed or non-metrical input.
func AnalyseClassical(text string, isAjuz bool) VerseResult {
	prosodic := normalize.Normalize(text, isAjuz)
	written := stripBoundary(prosodic)
	chars, harakat, rokaz := skeleton.Extract(prosodic)

	if meterName := meter.Match(rokaz); meterName != meter.Unknown {
		return VerseResult{
			Shater:  written,
			Arrodi:  written,
			Chars:   chars,
			Harakat: harakat,
			Rokaz:   rokaz,
			Meter:   meterName,
			Feet:    classicalFeet(meterName, rokaz, chars),
		}
	}

	if result, ok := ishbaa.Search(prosodic); ok {
		return VerseResult{
			Shater:  written,
			Arrodi:  written,
			Chars:   chars,
			Harakat: harakat,
			Rokaz:   rokaz,
			Meter:   result.Meter,
			Feet:    classicalFeet(result.Meter, result.Skel, result.Chars),
		}
	}

	return VerseResult{
		Shater:  written,
		Arrodi:  written,
		Chars:   chars,
		Harakat: harakat,
		Rokaz:   rokaz,
		Meter:   meter.Unknown,
	}
}

func classicalFeet(meterName, rokaz, chars string) []Foot {
	segmented := foot.Segment(meterName, rokaz, chars)
	if segmented == nil {
		return nil
	}
	feet := make([]Foot, len(segmented))
	for i, f := range segmented {
		feet[i] = Foot{Name: f.Name, Text: cleanDisplay(f.Text)}
	}
	return feet
}

// AnalyseFreeVerse scans a free-verse poem built on one repeated
// tafʿīla. Input need not carry explicit word-boundary markers: they
// are inserted around and within the text by normalize.Normalize the
// same way a classical verse's boundaries are.
func AnalyseFreeVerse(text string) (PoemResult, error) {
	prosodic := normalize.Normalize(text, false)
	chars, _, rokaz := skeleton.Extract(prosodic)

	meterName := freeverse.DominantMeter(rokaz)
	if meterName == "unknown" {
		return PoemResult{}, ErrUnrecognisedMeter
	}

	segmented := freeverse.Segment(meterName, rokaz, chars)
	patterns := make([]string, len(segmented))
	names := make([]string, len(segmented))
	words := make([]string, len(segmented))
	for i, f := range segmented {
		patterns[i] = f.Symbols
		names[i] = f.Name
		words[i] = strings.ReplaceAll(f.Text, "ى", "ى ")
	}

	return PoemResult{Meter: meterName, Patterns: patterns, Names: names, Words: words}, nil
}

// AnalyseRhymes checks the qāfiya of a series of verse endings for
// consistency, using the first non-empty verse as the poem's
// reference pattern. An empty string marks a verse with nothing to
// analyse (e.g. a missing line): its slot in the result is a zero
// rhyme.Analysis. Returns ErrAllVersesEmpty when every verse is empty.
func AnalyseRhymes(verses []string) ([]rhyme.Analysis, error) {
	beginningIndex := -1
	for i, v := range verses {
		if v != "" {
			beginningIndex = i
			break
		}
	}
	if beginningIndex == -1 {
		return nil, ErrAllVersesEmpty
	}

	results := make([]rhyme.Analysis, len(verses))
	base := rhyme.Analyse(verses[beginningIndex])
	results[beginningIndex] = base

	for i := beginningIndex + 1; i < len(verses); i++ {
		if verses[i] == "" {
			continue
		}
		current := rhyme.Analyse(verses[i])
		current.Errors = rhyme.Diff(base, current)
		results[i] = current
	}

	return results, nil
}

// WizardClassical validates a classical verse against an ordered list
// of expected pattern groups, one per foot position, halting at the
// first mismatch.
func WizardClassical(text string, isAjuz bool, expected []wizard.PatternGroup) []wizard.FootReport {
	prosodic := normalize.Normalize(text, isAjuz)
	chars, _, rokaz := skeleton.Extract(prosodic)
	return wizard.Classical(rokaz, chars, expected)
}

// WizardFreeVerse validates a free-verse poem by repeatedly matching
// its single expected pattern group until the skeleton is exhausted,
// continuing past mismatches instead of halting.
func WizardFreeVerse(text string, expected []wizard.PatternGroup) []wizard.FootReport {
	prosodic := normalize.Normalize(text, false)
	chars, _, rokaz := skeleton.Extract(prosodic)
	return wizard.FreeVerse(rokaz, chars, expected)
}

func stripBoundary(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != letters.Boundary {
			out = append(out, r)
		}
	}
	return string(out)
}

func cleanDisplay(s string) string {
	s = strings.ReplaceAll(s, "ى", "ى ")
	s = strings.ReplaceAll(s, "ة", "ة ")
	return s
}
