// Package normalize rewrites whitespace-cleaned Arabic text into arūḍī
// ("prosodic writing") form: every pronounced consonant ends up carrying
// an explicit vowel or sukūn, tanwīn and shadda are expanded to their
// articulatory equivalents, and the definite article's lām is resolved
// to its lunar or solar pronunciation.
//
// Normalize wires four ordered passes — special-case lexicon, lunar/solar
// lām, tanwīn+shadda, hamzat al-waṣl — exactly as the reference analyser
// does, each pass consuming the prosodic-form string the previous pass
// produced.
package normalize

import "github.com/az-ai-labs/al-khalil/grapheme"

// Normalize runs the four ordered rewrite passes on text, producing the
// arūḍī prosodic form. isAjuz marks text as a hemistich-closing verse
// (ʿajuz): its final short vowel is lengthened before
// tanwīn is folded.
//
// Input need not be pre-cleaned: Normalize cleans it first (see
// grapheme.Cleaned), so callers may pass raw text.
func Normalize(text string, isAjuz bool) string {
	text = grapheme.Cleaned(text)
	text = applyLexicon(text)
	text = handleLunarSolarLam(text)
	text = handleTanweenShaddeh(text, isAjuz)
	text = handleHamzatWasl(text)
	return text
}
