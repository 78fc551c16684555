package normalize

import "github.com/az-ai-labs/al-khalil/letters"

// hamzaExceptionRules are the fixed lexical exceptions to hamzat al-waṣl:
// words whose hamzat al-waṣl elides to a sukūn-initial cluster rather
// than the general vowel-prefixed rewrite, each with and without a
// ف/ك/ل/ب clitic.
var hamzaExceptionRules = []lexiconRule{
	rule(`([يواى]*)#ا[َُِْ]*ب[َُِْ]*ن`, "#بْن"),
	rule(`#([فكلب]*)ا[َُِْ]*ب[َُِْ]*ن`, "#${1}بْن"),

	rule(`([يواى]*)#ا[َُِْ]*م[َُِْ]*ر`, "#مْر"),
	rule(`#([فكلب]*)ا[َُِْ]*م[َُِْ]*ر`, "#${1}مْر"),

	rule(`([يواى]*)#ا[َُِْ]*ث[َُِْ]*ن[َُِْ]*ا[َُِْ]*ن`, "#ثْنان"),
	rule(`#([فكلب]*)ا[َُِْ]*ث[َُِْ]*ن[َُِْ]*ا[َُِْ]*ن`, "#${1}ثْنان"),

	rule(`([يواى]*)#ا[َُِْ]*ث[َُِْ]*ن[َُِْ]*ي[َُِْ]*ن`, "#ثْنيْن"),
	rule(`#([فكلب]*)ا[َُِْ]*ث[َُِْ]*ن[َُِْ]*ي[َُِْ]*ن`, "#${1}ثْنيْن"),

	rule(`([يواى]*)#ا[َُِْ]*ث[َُِْ]*ن[َُِْ]*ت[َُِْ]*ا[َُِْ]*ن`, "#ثْنتان"),
	rule(`#([فكلب]*)ا[َُِْ]*ث[َُِْ]*ن[َُِْ]*ت[َُِْ]*ا[َُِْ]*ن`, "#${1}ثْنتان"),

	rule(`([يواى]*)#ا[َُِْ]*ث[َُِْ]*ن[َُِْ]*ت[َُِْ]*ي[َُِْ]*ن`, "#ثْنتيْن"),
	rule(`#([فكلب]*)ا[َُِْ]*ث[َُِْ]*ن[َُِْ]*ت[َُِْ]*ي[َُِْ]*ن`, "#${1}ثْنتيْن"),

	rule(`([يواى]*)#ا[َُِْ]*س[َُِْ]*ت([َُِْ]*)`, "#سْت$2"),
	rule(`#([فكلب]*)ا[َُِْ]*س[َُِْ]*ت([َُِْ]*)`, "#${1}سْت$2"),
}

// hamzaGeneralRules are the general elision rules, applied after the
// lexical exceptions above have had first refusal.
var hamzaGeneralRules = []lexiconRule{
	// a vowel immediately before #اX elides the hamza; X cliticises
	// onto the preceding word with a sukūn.
	rule(`(ا|ي|ى)#ا(أ|إ|ب|ت|ث|ج|ح|خ|د|ذ|ر|ز|س|ش|ص|ض|ط|ظ|ع|غ|ف|ق|ك|م|ن|ه|و|ي)`, "#$2ْ"),
	// the same elision, through a ف/ك/ل/ب clitic, guarded to a run of
	// four or more consonants so it does not fire inside a short word
	// the lexical exceptions above should have already claimed.
	rule(`#([فكلب]*)ا(أ|إ|ب|ت|ث|ج|ح|خ|د|ذ|ر|ز|س|ش|ص|ض|ط|ظ|ع|غ|ف|ق|ك|م|ن|ه|و|ي)([أإبتثجحخدذرزسشصضطظعغفقكلمنهوي]{4,})`, "#$1$2ْ$3"),
	// leading #اX with no preceding vowel, no clitic: the general case.
	rule(`#ا(أ|إ|ب|ت|ث|ج|ح|خ|د|ذ|ر|ز|س|ش|ص|ض|ط|ظ|ع|غ|ف|ق|ك|م|ن|ه|و|ي)`, "#$1ْ"),
}

// handleHamzatWasl handles the positional leading-alif
// rewrite, the lexical exceptions, the general elision rules, and the
// final doubled-sukūn collapse.
//
// Grounded on _handle_hamzat_wasl.
func handleHamzatWasl(text string) string {
	chars := []rune(text)
	if len(chars) == 0 {
		return text
	}

	// A leading alif not adjacent to a lām (i.e. not the definite
	// article, already handled by B.2) is a plain hamzat al-waṣl:
	// pronounced with a supporting kasra when the clitic starts cold.
	if len(chars) > 3 && chars[1] == letters.Alif && chars[2] != letters.Lam && chars[3] != letters.Lam {
		chars = append(chars[:1], append([]rune{letters.AlifHamzaBl, letters.Kasra}, chars[2:]...)...)
	}
	text = string(chars)

	for _, r := range hamzaExceptionRules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	for _, r := range hamzaGeneralRules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}

	return collapseDoubledSukun(text)
}

func collapseDoubledSukun(text string) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))
	for i, r := range runes {
		if r == letters.Sukun && i > 0 && runes[i-1] == letters.Sukun {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
