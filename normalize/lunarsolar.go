package normalize

import (
	"github.com/az-ai-labs/al-khalil/letters"
)

// lunarSolarRules is the regex stage of lunar/solar lām handling: the same
// lunar/solar distinction applied mid-utterance, after the positional
// stage has already handled the first word. Declared once as package
// state and applied in order, longest/most-specific context first.
var lunarSolarRules = func() []lexiconRule {
	const solar = "تثدذرزسشصضطظلن"
	const lunar = "أإبغحجكوخفعقيمه"

	return []lexiconRule{
		// wāw + solar lām: the wāw's own vowel survives, the lām assimilates.
		rule(`و#ال([`+solar+`])`, "و#$1ّ"),
		// vowel + solar lām: the vowel letter is deleted along with the lām.
		rule(`(ا[َُِْ]*|ى[َُِْ]*|ي[ُِْ]*|وْ)#ال([`+solar+`])`, "#$2ّ"),
		// yāʾ + solar lām.
		rule(`(ي[َّ]*)#ال([`+solar+`])`, "$1#$2ّ"),
		// tāʾ marbūṭa + solar lām: the ة becomes a pronounced ت.
		rule(`ة([َُِ]*)#ال([`+solar+`])`, "ت$1#$2ّ"),
		// ف/ك/ب + solar lām.
		rule(`#([فكب]*)ال([`+solar+`])`, "#$1$2ّ"),
		// لل + solar lām: a short lām.
		rule(`#لل([`+solar+`])`, "ل#$1ّ"),
		// the hamzat al-waṣl of ال itself, before a following alif.
		rule(`#ال(ا)`, "#لِ"),

		// vowel + lunar lām: the vowel letter is deleted, the lām stays.
		rule(`(ا[َُِْ]*|ى[َُِْ]*|ي[ُِْ]*|وْ)#ال([`+lunar+`])`, "#لْ$2"),
		// ف/ك/ب + lunar lām.
		rule(`#([فكب]*)ال([`+lunar+`])`, "#${1}لْ$2"),
		rule(`#ال([`+lunar+`])`, "#ألْ$1"),
		// لل + lunar lām.
		rule(`#لل([`+lunar+`])`, "#للْ$1"),
	}
}()

// handleLunarSolarLam handles lunar/solar lām in full: the positional
// first-word stage followed by the mid-utterance regex stage.
//
// Grounded on _handle_lunar_solar_lam: the positional stage is expressed
// there as direct indexing into a character array, which is the natural
// idiom for a fixed four/five-symbol lookahead; this port keeps that
// shape as a rune-slice scan rather than forcing it through regexp.
func handleLunarSolarLam(text string) string {
	chars := []rune(text)
	if len(chars) < 4 {
		return text
	}

	// ال immediately followed by a further alif carries its own
	// hamzat al-waṣl: #الا... -> #ألِ...
	if chars[0] == letters.Boundary && chars[1] == letters.Alif &&
		chars[2] == letters.Lam && chars[3] == letters.Alif {
		chars[1] = letters.AlifHamzaAb
		chars[2] = letters.Lam
		chars[3] = letters.Kasra
	}

	switch {
	case chars[0] == letters.Boundary && chars[1] == letters.Alif && chars[2] == letters.Lam &&
		len(chars) > 3 && letters.IsLunar(chars[3]):
		chars[1] = letters.AlifHamzaAb
		chars[2] = letters.Lam
		chars = insertAfter(chars, 2, letters.Sukun)

	case chars[0] == letters.Boundary && chars[1] == letters.Lam && chars[2] == letters.Lam &&
		len(chars) > 3 && letters.IsLunar(chars[3]):
		chars = insertAfter(chars, 2, letters.Sukun)

	case chars[0] == letters.Boundary && chars[1] == letters.Feh && chars[2] == letters.Alif &&
		chars[3] == letters.Lam && len(chars) > 4 && letters.IsLunar(chars[4]):
		chars[2] = letters.Lam
		chars[3] = letters.Sukun

	case chars[0] == letters.Boundary && chars[1] == letters.Beh && chars[2] == letters.Alif &&
		chars[3] == letters.Lam && len(chars) > 4 && letters.IsLunar(chars[4]):
		chars[2] = letters.Lam
		chars[3] = letters.Sukun

	case chars[0] == letters.Boundary && chars[1] == letters.Kaf && chars[2] == letters.Alif &&
		chars[3] == letters.Lam && len(chars) > 4 && letters.IsLunar(chars[4]):
		chars[2] = letters.Lam
		chars[3] = letters.Sukun

	case chars[0] == letters.Boundary && chars[1] == letters.Alif && chars[2] == letters.Lam:
		// Solar ال at the very beginning: drop the lām, double the
		// following consonant with a shadda (expanded later in B.3).
		chars[1] = letters.AlifHamzaAb
		if len(chars) > 3 && chars[3] != letters.Shadda {
			chars = insertAfter(chars, 3, letters.Shadda) // double the assimilated consonant
			chars = append(chars[:2], chars[3:]...)       // drop the lam at index 2
		}
	}

	if chars[0] != letters.Boundary {
		chars = append([]rune{letters.Boundary}, chars...)
	}
	if chars[len(chars)-1] != letters.Boundary {
		chars = append(chars, letters.Boundary)
	}

	text = string(chars)
	for _, r := range lunarSolarRules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

// insertAfter inserts r into chars immediately after index i.
func insertAfter(chars []rune, i int, r rune) []rune {
	out := make([]rune, 0, len(chars)+1)
	out = append(out, chars[:i+1]...)
	out = append(out, r)
	out = append(out, chars[i+1:]...)
	return out
}
