// Package grapheme is the leaf layer of the prosodic analysis pipeline.
//
// It splits Arabic text into indivisible letter+diacritic units (Split)
// and produces the whitespace-normalised, punctuation-stripped draft that
// every later pass (normalize, skeleton, ...) is built on top of (Cleaned).
//
// Both functions are pure and safe for concurrent use.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"golang.org/x/text/unicode/norm"

	"github.com/az-ai-labs/al-khalil/letters"
)

// Grapheme is one Arabic letter, with its following diacritic if it has
// one, or the word-boundary sentinel on its own (Letter == letters.Boundary,
// Diacritic == 0).
type Grapheme struct {
	Letter    rune
	Diacritic rune // 0 if the letter carries no diacritic
	Extra     []rune // additional diacritics in the same cluster (e.g. shadda before a vowel), in source order
}

// droppedPunctuation is the set of ASCII and Arabic punctuation marks
// discarded by Cleaned. None of these belong to the letter or diacritic
// inventories, so leaving them in would otherwise require every later
// pass to special-case them.
var droppedPunctuation = map[rune]bool{
	'؟': true, '?': true, '/': true, '\\': true, '!': true, ':': true,
	'-': true, '"': true, '(': true, ')': true, ',': true, '،': true,
}

// Cleaned normalises text into a prosodic-form draft: runs of whitespace
// become a single word-boundary sentinel '#', punctuation is discarded,
// anything outside the letter/diacritic inventories is discarded, and the
// result is guaranteed to begin and end with '#' with no internal "##".
//
// Input is first put into Unicode NFC form, so precomposed and decomposed
// spellings of the same Arabic word (e.g. a composed vs. decomposed madda)
// are treated identically by every later pass.
func Cleaned(text string) string {
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text) + 2)

	lastWasBoundary := false
	writeBoundary := func() {
		if !lastWasBoundary {
			b.WriteRune(letters.Boundary)
			lastWasBoundary = true
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r) || r == letters.Boundary:
			writeBoundary()
		case droppedPunctuation[r]:
			// Discarded outright; does not introduce a boundary.
		case letters.IsAllowed(r):
			b.WriteRune(r)
			lastWasBoundary = false
		default:
			// Outside both inventories (digits, Latin script, stray marks): dropped.
		}
	}

	out := b.String()
	if !strings.HasPrefix(out, "#") {
		out = "#" + out
	}
	if !strings.HasSuffix(out, "#") {
		out = out + "#"
	}
	return out
}

// Split pairs each Arabic letter in text with its following diacritic (if
// any), using Unicode extended grapheme clustering so multi-codepoint
// clusters (a base letter plus one or more combining diacritics) are never
// torn apart. The word-boundary sentinel '#' is kept as its own unit.
//
// Split is typically called on the output of Cleaned, so that '#' is
// present as an explicit boundary marker; it does not clean its input.
func Split(text string) []Grapheme {
	out := make([]Grapheme, 0, len(text))

	iter := graphemes.FromString(text)
	for iter.Next() {
		cluster := iter.Value()
		out = append(out, splitCluster(cluster)...)
	}
	return out
}

// splitCluster turns one extended grapheme cluster into one or more
// Graphemes. A cluster is normally a single rune (the boundary sentinel),
// or a base letter optionally followed by one or more combining
// diacritics (e.g. a geminated, voweled consonant: letter + shadda +
// fatha cluster together under UAX #29).
func splitCluster(cluster string) []Grapheme {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return nil
	}

	base := runes[0]
	if base == letters.Boundary {
		return []Grapheme{{Letter: letters.Boundary}}
	}

	g := Grapheme{Letter: base}
	rest := runes[1:]
	for i, r := range rest {
		if i == 0 {
			g.Diacritic = r
			continue
		}
		g.Extra = append(g.Extra, r)
	}
	return []Grapheme{g}
}
