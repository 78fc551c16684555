package normalize

import "regexp"

// lexiconRule is one entry of the special-case lexicon:
// a compiled match pattern and its replacement template, applied in
// declaration order so later rules observe the output of earlier ones.
type lexiconRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rule compiles pattern once at package init time, matching the
// convention of precompiling pattern tables rather than calling
// regexp.MustCompile on every invocation (cf. ner/patterns.go,
// datetime/patterns.go).
func rule(pattern, replacement string) lexiconRule {
	return lexiconRule{pattern: regexp.MustCompile(pattern), replacement: replacement}
}

// lexiconRules is the special-case lexicon: an ordered
// list of match/replacement pairs covering words whose pronunciation
// diverges from their orthography in ways no general rewrite rule can
// capture. Declaration order matters: a later rule may see text a
// previous rule already rewrote (e.g. the divine-name rules build on one
// another, most specific first).
//
// Grounded on _handle_special_cases in the reference implementation;
// every rule below is a direct translation of its pattern/replacement
// pair (Go's regexp replacement templating, $1/$2, covers every
// back-reference used here — none of these patterns require a
// back-reference inside the match itself, which Go's RE2 engine
// cannot express).
var lexiconRules = []lexiconRule{
	// (i) plural wāw: the wāw al-jamāʿa carries a silent alif.
	rule(`و[ّ َُِْ]*ا#`, "وْ#"),

	// (ii) عمرو ("ʿAmr") in its case-marked forms: the wāw is never
	// pronounced, but its case ending is.
	rule(`#عمرٍو#`, "#عمْرٍ#"),
	rule(`#عمروٍ#`, "#عمْرٍ#"),
	rule(`#عمرًو#`, "#عمْرً#"),
	rule(`#عمروً#`, "#عمْرً#"),
	rule(`#عمرٌو#`, "#عمْرٌ#"),
	rule(`#عمروٌ#`, "#عمْرٌ#"),
	rule(`#عمرو#`, "#عمْر#"),

	// (iii) restore the elongated alif madda to its historical أا.
	rule(`آ`, "أا"),

	// (iv) the divine name, in its bare and case-marked forms, and its
	// compounds (تالله، لله، اللهمّ) — most specific patterns first so a
	// compound is not caught by the bare-name rule.
	rule(`ى#الله#`, "لّاه#"),
	rule(`تالله#`, "تلّاه#"),
	rule(`ا#الله#`, "لّاه#"),
	rule(`اللهُ#`, "الْلاهُ#"),
	rule(`اللهَ#`, "الْلاهَ#"),
	rule(`اللهِ#`, "الْلاهِ#"),
	rule(`الله#`, "الْلاه#"),
	rule(`للهِ#`, "للْلاهِ#"),
	rule(`لله#`, "للْلاه#"),
	rule(`#الل[َّ]*هم([َّ]*)#`, "#الْلاهم$1#"),

	// (v) الإله / الرحمن and their prefixed forms.
	rule(`#الإله([َُِْ]*)#`, "#الإلاه$1#"),
	rule(`#لل[ْ]*إله([َُِْ]*)#`, "للْإلاه$1#"),
	rule(`#إله([َُِْ]*)([يهمنا])([َُِْ]*)#`, "#إلاه$1$2$3#"),
	rule(`الر[َّ]*حمن([َُِْ]*)#`, "الرَّحْمان$1#"),
	rule(`للر[َّ]*حمن([َُِْ]*)#`, "لِرَّحْمان$1#"),

	// (vi) demonstrative pronouns whose pronounced long vowel is
	// orthographically suppressed.
	rule(`#([فلكب]*)ه[َ]*ذ[َ]*ا[ْ]*#`, "#${1}هَاذَا#"),
	rule(`#([فلكب]*)ه[َ]*ذ[ِ]*ه([َُِ]*)#`, "#${1}هَاذِه$2#"),
	rule(`#([فلكب]*)ه[َُِ]*ؤ[َُِ]*ل[َِ]*ا[ْ]*ء([َُِْ]*)#`, "#${1}هَاؤُلَاء$2#"),
	rule(`#([فلكب]*)ذ[َُِ]*ل[َُِ]*ك([َِ]*)#`, "#${1}ذَالِك$2#"),
	rule(`#([فلكب]*)ه[َُِ]*ذ[َُِ]*ي([َِ]*)#`, "#${1}هَاذِي$2#"),
	rule(`#([فلكب]*)ه[َُِ]*ذ[َِ]*ا[ْ]*ن([َُِْ]*)#`, "#${1}هَاذَان$2#"),
	rule(`#([فلكب]*)ه[َُِ]*ذ[َِ]*ي[ْ]*ن([َُِْ]*)#`, "#${1}هَاذَيْن$2#"),
	rule(`#([فلكب]*)ه[َُِ]*ه[َِ]*ن[ْ]*ا([َُِْ]*)#`, "#${1}هَاهُنَا#"),
	rule(`#([فلكب]*)ه[َُِ]*ه[َِ]*ن[ْ]*ا[ْ]*ك([َُِْ]*)#`, "#${1}هَاهُنَاك#"),
	rule(`#([فلكب]*)ه[َُِ]*ك[َِ]*ذ[ْ]*ا([َُِْ]*)#`, "#${1}هَاكَذَا#"),

	// (vii) لكن(ّ) — the sākin and the geminated nūn forms.
	rule(`#ل[َُِ]*ك[َِ]*ن([ّ]*)#`, "#لَاْكِنْنَ#"),
	rule(`#ل[َُِ]*ك[َِ]*ن([ْ]*)#`, "#لَاْكِنْ#"),

	// (viii) relative pronouns, with their ف/ب/ك/ل prefix variants.
	rule(`#ا[َُِ]*ل[َُِ]*ذ[َُِ]*ي([َُِْ]*)#`, "#اللّذِيْ#"),
	rule(`#([فبك]*)ا[َُِ]*ل[َُِ]*ذ[َُِ]*ي([َُِْ]*)#`, "#${1}اللّذِيْ#"),
	rule(`#ل[َُِ]*ل[َُِ]*ذ[َُِ]*ي([َُِْ]*)#`, "#لِلْلَذِيْ#"),
	rule(`#ا[َُِ]*ل[َُِ]*ت[َُِ]*ي([َُِْ]*)#`, "#اللّتِيْ#"),
	rule(`#([فبك]*)ا[َُِ]*ل[َُِ]*ت[َُِ]*ي([َُِْ]*)#`, "#${1}اللّتِيْ#"),
	rule(`#ل[َُِ]*ل[َُِ]*ت[َُِ]*ي([َُِْ]*)#`, "#لِلْلَتِيْ#"),
	rule(`#ا[َُِ]*ل[َُِ]*ذ[َُِ]*ي[َُِ]*ن([َِ]*)#`, "#اللّذِيْنَ#"),
	rule(`#([فبك]*)ا[َُِ]*ل[َُِ]*ذ[َُِ]*ي[َُِ]*ن([َِ]*)#`, "#${1}اللّذِيْنَ#"),
	rule(`#ل[َُِ]*ل[َُِ]*ذ[َُِ]*ي[َُِ]*ن([َِ]*)#`, "#لِلْلَذِيْنَ#"),

	// (ix) proper names whose pronounced vowel length the orthography
	// shortens.
	rule(`#د[َُِ]*ا[َُِ]*و[َُِ]*د([ٌٍَِ]*|[اً]*)#`, "#دَاوُوْد$1#"),
	rule(`#ط[َُِ]*ا[َُِ]*و[َُِ]*س([ٌٍَِ]*|[اً]*)#`, "#طَاوُوْس$1#"),
	rule(`#ن[َُِ]*ا[َُِ]*و[َُِ]*س([ٌٍَِ]*|[اً]*)#`, "#نَاوُوْس$1#"),
	rule(`#ط[َُِ]*ه[َُِ]*#`, "#طاها#"),
}

// applyLexicon runs every rule of lexiconRules against text in
// declaration order, each rule seeing the cumulative output of every
// rule before it.
func applyLexicon(text string) string {
	for _, r := range lexiconRules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}
