package normalize

import "github.com/az-ai-labs/al-khalil/letters"

// handleTanweenShaddeh first expands a consonant's gemination into an
// explicit sukūn-then-repeated-consonant pair; tanwinRules then fold the
// remaining tanwīn marks into their articulatory nūn-sākin equivalent.
// Order matters: tanwīn expansion must run after shadda expansion
// because some lexicon/lunar-solar rewrites leave a shadda directly
// before a tanwīn-bearing letter.
var tanwinRules = []lexiconRule{
	rule(`اً`, "نْ"),       // alif + fatḥatān: the alif vanishes into a sākin nūn.
	rule(`ةٌ`, "تُنْ"),     // tāʾ marbūṭa + ḍammatān.
	rule(`ةً`, "تَنْ"),     // tāʾ marbūṭa + fatḥatān.
	rule(`ةٍ`, "تِنْ"),     // tāʾ marbūṭa + kasratān.
	rule(`ىً`, "نْ"),       // alif maqṣūra + fatḥatān.
	// any remaining tanwīn: its short vowel, then the sākin nūn.
	rule(`ً`, "َنْ"),
	rule(`ٌ`, "ُنْ"),
	rule(`ٍ`, "ِنْ"),
}

// handleTanweenShaddeh handles shadda expansion,
// ʿajuz-only final-vowel lengthening, then tanwīn folding.
//
// Grounded on _handle_tanween_shaddeh, including its ʿajuz branch table
// (distinguishing ḍamma/fatḥa/kasra/bare endings rather than collapsing
// them into one case).
func handleTanweenShaddeh(text string, isAjuz bool) string {
	chars := []rune(text)
	if len(chars) == 0 {
		return text
	}

	// Shadda at position i doubles the preceding letter: X + shadda
	// becomes X + sukūn + X (the consonant, then its closing sukūn,
	// then the repeated consonant that opens the next syllable).
	expanded := make([]rune, 0, len(chars)+8)
	for i, r := range chars {
		if r == letters.Shadda && i > 0 && (letters.IsLetter(chars[i-1]) || chars[i-1] == letters.Boundary) {
			expanded = append(expanded, letters.Sukun, chars[i-1])
			continue
		}
		expanded = append(expanded, r)
	}
	chars = expanded

	// The checks below look at the verse's final letter or diacritic, so
	// the trailing boundary sentinel is set aside and restored after.
	end := len(chars)
	for end > 0 && chars[end-1] == letters.Boundary {
		end--
	}
	trailing := append([]rune(nil), chars[end:]...)
	chars = chars[:end]

	// A bare trailing long-vowel letter always closes with a sukūn.
	if n := len(chars); n > 0 && chars[n-1] != letters.Sukun && letters.IsLongVowelLetter(chars[n-1]) {
		chars = append(chars, letters.Sukun)
	}

	if isAjuz && len(chars) > 0 {
		last := chars[len(chars)-1]
		if last != letters.Sukun && last != letters.TanwinDamma && last != letters.TanwinFatha && last != letters.TanwinKasra {
			extension := []rune{letters.Waw, letters.Sukun}
			switch last {
			case letters.Fatha:
				extension = []rune{letters.Alif, letters.Sukun}
			case letters.Kasra:
				extension = []rune{letters.Yeh, letters.Sukun}
			case letters.Damma:
				extension = []rune{letters.Waw, letters.Sukun}
			}
			chars = append(chars, extension...)
		}
	}
	chars = append(chars, trailing...)

	text = string(chars)
	for _, r := range tanwinRules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}

	// Any shadda left over after expansion (e.g. a degenerate double
	// rewrite) is dropped rather than propagated downstream.
	return removeShadda(text)
}

func removeShadda(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if r != letters.Shadda {
			out = append(out, r)
		}
	}
	return string(out)
}
