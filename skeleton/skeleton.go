// Package skeleton reduces a normalised prosodic-form string (see
// package normalize) to the three representations the rest of the
// pipeline walks: the letter-only sequence, the per-consonant harakāt
// (vowel/sukūn) sequence, and the binary U/- skeleton derived from it.
package skeleton

import "github.com/az-ai-labs/al-khalil/letters"

// Extract strips the word-boundary sentinel from prosodic and returns:
//
//   - chars: the letter-only subsequence, in order.
//   - harakat: one diacritic per entry of chars — an unmarked consonant
//     defaults to fatḥa, except alif and alif maqṣūra which default to
//     sukūn; kasra and ḍamma are folded to fatḥa (the binary skeleton
//     model ignores vowel quality).
//   - skel: the binary prosodic skeleton over {U, -}: a fatḥa maps to
//     U, a sukūn maps to -, and a fatḥa immediately followed by a
//     sukūn collapses to a single - (one sākin unit spanning both).
func Extract(prosodic string) (chars, harakat, skel string) {
	runes := stripBoundaries(prosodic)

	charRunes := make([]rune, 0, len(runes))
	harakatRunes := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if !letters.IsLetter(r) {
			continue
		}
		charRunes = append(charRunes, r)

		switch {
		case i+1 < len(runes) && letters.IsDiacritic(runes[i+1]):
			harakatRunes = append(harakatRunes, normalizeVowel(runes[i+1]))
		case letters.IsLongVowelLetter(r):
			harakatRunes = append(harakatRunes, letters.Sukun)
		default:
			harakatRunes = append(harakatRunes, letters.Fatha)
		}
	}

	skelRunes := make([]rune, 0, len(harakatRunes))
	for i := 0; i < len(harakatRunes); i++ {
		if harakatRunes[i] == letters.Fatha && i+1 < len(harakatRunes) && harakatRunes[i+1] == letters.Sukun {
			skelRunes = append(skelRunes, '-')
			i++
			continue
		}
		if harakatRunes[i] == letters.Sukun {
			skelRunes = append(skelRunes, '-')
			continue
		}
		skelRunes = append(skelRunes, 'U')
	}

	return string(charRunes), string(harakatRunes), string(skelRunes)
}

// normalizeVowel folds kasra and ḍamma to fatḥa; every other diacritic
// (fatḥa, sukūn) passes through unchanged. Shadda should never reach
// here: normalize.Normalize has already expanded every shadda before
// the skeleton extractor runs.
func normalizeVowel(r rune) rune {
	switch r {
	case letters.Kasra, letters.Damma:
		return letters.Fatha
	default:
		return r
	}
}

func stripBoundaries(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != letters.Boundary {
			out = append(out, r)
		}
	}
	return out
}
