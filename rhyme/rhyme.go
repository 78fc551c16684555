// Package rhyme isolates a verse's qāfiya (rhyme suffix), classifies
// its components (rawī, waṣl, khurūj, ridf, taʾsīs, dakhīl), composes
// an Arabic description of the rhyme type, and diffs a verse's rhyme
// against a poem's established pattern.
package rhyme

import (
	"strings"

	"github.com/az-ai-labs/al-khalil/letters"
	"github.com/az-ai-labs/al-khalil/normalize"
)

// Entry pairs one rhyme-window letter with the harakah (vowel/sukūn)
// diacritic that follows it, if any (zero rune if the letter is bare).
type Entry struct {
	Letter  rune
	Harakah rune
}

func (e Entry) String() string {
	if e.Letter == 0 {
		return ""
	}
	if e.Harakah == 0 {
		return string(e.Letter)
	}
	return string(e.Letter) + string(e.Harakah)
}

func (e Entry) isZero() bool { return e.Letter == 0 }

// Analysis is one verse ending's full qāfiya analysis.
type Analysis struct {
	Text string // the isolated rhyme suffix, for display

	Type string // Arabic description, e.g. "قافية مطلقة مجرَّدة"

	Rawi   Entry // الرَّويّ: the letter the rhyme is built on
	Wasl   Entry // الوَصل: the connecting letter after a rawī that takes a long vowel
	Khuruj Entry // الخروج: the letter following a hāʾ al-waṣl
	Tasis  rune  // ألف التأسيس: an alif two positions before the rawī
	Dakhil Entry // الدَّخيل: the letter between taʾsīs and rawī
	Ridf   Entry // الرِّدف: a long vowel immediately before the rawī

	// Errors holds cross-verse consistency diagnostics (see Diff) when
	// this Analysis was produced as part of a poem's rhyme check; nil
	// for a standalone Analyse call, and always nil on a poem's first
	// (reference) verse.
	Errors []string
}

// Analyse isolates and classifies the qāfiya of a verse's second
// hemistich (ajuz). isAjuz-style lengthening is
// always applied, since a rhyme position is definitionally
// verse-final.
func Analyse(ajuz string) Analysis {
	prosodic := normalize.Normalize(ajuz, true)
	stripped := stripBoundary(prosodic)

	window := extractWindow(stripped)
	entries := buildEntries(window)

	return classify(entries)
}

func stripBoundary(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != letters.Boundary {
			out = append(out, r)
		}
	}
	return out
}

// extractWindow isolates the rhyme suffix: it scans backward from the
// verse's end until it has crossed two sākin (consonant-closing)
// units, then extends one further letter back along with any
// diacritics on the way to a preceding consonant, plus one more letter
// if the unit just before that is itself sākin. This mirrors the
// reference implementation's own backward scan exactly.
func extractWindow(chars []rune) []rune {
	var collected []rune
	sokons := 0

	for i := len(chars) - 1; i >= 0; i-- {
		collected = append(collected, chars[i])

		isOpenLongVowel := (chars[i] == letters.Alif || chars[i] == letters.AlifMaqsura) &&
			i+1 < len(chars) && chars[i+1] != letters.Sukun
		if chars[i] == letters.Sukun || isOpenLongVowel {
			sokons++
		}

		if sokons >= 2 {
			if i-1 >= 0 {
				collected = append(collected, chars[i-1])
			}
			index := i - 2
			for index >= 0 && !letters.IsLetter(chars[index]) {
				collected = append(collected, chars[index])
				index--
			}
			if len(collected) >= 3 && collected[len(collected)-3] == letters.Sukun && index >= 0 {
				collected = append(collected, chars[index])
			}
			break
		}
	}

	for l, r := 0, len(collected)-1; l < r; l, r = l+1, r-1 {
		collected[l], collected[r] = collected[r], collected[l]
	}
	return collected
}

// buildEntries groups the rhyme window into one Entry per letter, each
// carrying the harakah diacritic immediately following it.
func buildEntries(window []rune) []Entry {
	var entries []Entry
	for _, r := range window {
		switch {
		case letters.IsLetter(r):
			entries = append(entries, Entry{Letter: r})
		case letters.IsDiacritic(r) && len(entries) > 0:
			entries[len(entries)-1].Harakah = r
		}
	}
	return entries
}

func classify(entries []Entry) Analysis {
	n := len(entries)
	if n == 0 {
		return Analysis{}
	}

	var text strings.Builder
	for _, e := range entries {
		text.WriteString(e.String())
	}

	last := entries[n-1]

	const (
		mutlaqa  = "F" // مطلقة: rhyme ends in a letter that carries its own vowel
		muqayyad = "M" // مقيّدة: rhyme ends in a sākin letter
	)

	rhymeType := muqayyad
	rawiPos := n - 1
	var rawi, wasl, khuruj Entry

	switch {
	case n > 1 && (last.Letter == letters.Heh || last.Letter == letters.Kaf) && entries[n-2].Harakah != letters.Sukun:
		rhymeType = mutlaqa
		rawiPos = n - 2
		rawi = entries[n-2]
		wasl = last

	case last.Letter == letters.Alif || last.Letter == letters.AlifMaqsura ||
		last.Letter == letters.Waw || last.Letter == letters.Yeh:
		if n >= 3 && entries[n-2].Letter == letters.Heh && entries[n-2].Harakah != letters.Sukun {
			rhymeType = mutlaqa
			rawiPos = n - 3
			rawi = entries[n-3]
			wasl = entries[n-2]
			khuruj = last
		} else if n > 1 {
			rhymeType = mutlaqa
			rawiPos = n - 2
			rawi = entries[n-2]
			wasl = last
		} else {
			rawi = last
		}

	default:
		rawi = last
	}

	var ridf, dakhil Entry
	var tasis rune

	if rawiPos > 0 {
		c := entries[rawiPos-1].Letter
		ch := entries[rawiPos-1].Harakah

		// cb/cbh sentinel: the reference implementation falls back to
		// a ghain placeholder when there is no letter two positions
		// before the rawī, since ghain can never satisfy either of
		// the checks below.
		cb, cbh := letters.Ghain, letters.Ghain
		if rawiPos > 1 {
			cb = entries[rawiPos-2].Letter
			cbh = entries[rawiPos-2].Harakah
		}

		switch {
		case c == letters.Waw && ch == letters.Sukun && cbh == letters.Damma,
			c == letters.Yeh && ch == letters.Sukun && cbh == letters.Kasra,
			c == letters.Alif && cbh == letters.Fatha,
			c == letters.AlifMaqsura && cbh == letters.Fatha:
			ridf = Entry{Letter: c, Harakah: ch}
		case cb == letters.Alif || cb == letters.AlifMaqsura:
			// Word-position tracking in the reference implementation
			// is unreachable (its boundary counter watches for a
			// sentinel already stripped before this point), which
			// collapses its "taʾsīs only within the first word" guard
			// to always-true; reproduced here as no guard at all.
			tasis = cb
			dakhil = Entry{Letter: c, Harakah: ch}
		}
	}

	return Analysis{
		Text:   text.String(),
		Type:   describe(rhymeType, khuruj, ridf, tasis),
		Rawi:   rawi,
		Wasl:   wasl,
		Khuruj: khuruj,
		Tasis:  tasis,
		Dakhil: dakhil,
		Ridf:   ridf,
	}
}

func describe(rhymeType string, khuruj, ridf Entry, tasis rune) string {
	hasKhuruj := !khuruj.isZero()
	hasRidf := !ridf.isZero()
	hasTasis := tasis != 0

	if rhymeType == "F" {
		switch {
		case !hasKhuruj && !hasRidf && !hasTasis:
			return "قافية مطلقة مجرَّدة"
		case hasRidf:
			if hasKhuruj {
				return "قافية مطلقة بردف و خروج"
			}
			return "قافية مطلقة بردف"
		case hasTasis:
			if hasKhuruj {
				return "قافية مطلقة بتأسيس و خروج"
			}
			return "قافية مطلقة بتأسيس"
		default:
			return "قافية مطلقة بخروج"
		}
	}

	switch {
	case !hasRidf && !hasTasis:
		return "قافية مقيّدة مجرَّدة"
	case hasRidf:
		return "قافية مقيّدة بردف"
	default:
		return "قافية مقيّدة بتأسيس"
	}
}
