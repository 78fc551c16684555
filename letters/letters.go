// Package letters declares the closed rune inventories classical Arabic
// prosody is defined over: the 37-symbol letter alphabet (36 Arabic
// consonants/vowel-letters plus the word-boundary sentinel), the 8-symbol
// diacritic alphabet, and the lunar/solar consonant partition used by the
// definite-article rewrite.
//
// The packages that classify runes (grapheme, normalize, skeleton, rhyme, arud) share
// these tables rather than redeclaring them, keeping vowel/consonant
// classification centralised in one place for every consumer.
package letters

// Boundary is the word-boundary sentinel. It is never part of the Arabic
// alphabet; it is inserted by the grapheme layer to mark word edges and
// stripped again before any public output.
const Boundary = '#'

// Letter runes. Names follow the traditional Arabic letter names
// transliterated, not the Unicode code point names, to match how the
// rest of this codebase refers to them in comments.
const (
	Alif        = 'ا' // ا
	AlifHamzaAb = 'أ' // أ
	AlifHamzaBl = 'إ' // إ
	AlifMadda   = 'آ' // آ
	Hamza       = 'ء' // ء
	YehHamza    = 'ئ' // ئ
	WawHamza    = 'ؤ' // ؤ
	AlifMaqsura = 'ى' // ى
	Beh         = 'ب' // ب
	Teh         = 'ت' // ت
	TehMarbuta  = 'ة' // ة
	Theh        = 'ث' // ث
	Jeem        = 'ج' // ج
	Hah         = 'ح' // ح
	Khah        = 'خ' // خ
	Dal         = 'د' // د
	Thal        = 'ذ' // ذ
	Reh         = 'ر' // ر
	Zain        = 'ز' // ز
	Sheen       = 'ش' // ش
	Seen        = 'س' // س
	Sad         = 'ص' // ص
	Dad         = 'ض' // ض
	Tah         = 'ط' // ط
	Zah         = 'ظ' // ظ
	Ain         = 'ع' // ع
	Ghain       = 'غ' // غ
	Feh         = 'ف' // ف
	Qaf         = 'ق' // ق
	Kaf         = 'ك' // ك
	Lam         = 'ل' // ل
	Meem        = 'م' // م
	Noon        = 'ن' // ن
	Heh         = 'ه' // ه
	Waw         = 'و' // و
	Yeh         = 'ي' // ي
)

// Diacritic runes.
const (
	Shadda       = 'ّ' // ّ
	Fatha        = 'َ' // َ
	Damma        = 'ُ' // ُ
	Kasra        = 'ِ' // ِ
	TanwinFatha  = 'ً' // ً
	TanwinDamma  = 'ٌ' // ٌ
	TanwinKasra  = 'ٍ' // ٍ
	Sukun        = 'ْ' // ْ
)

// letterSet is the closed 36-letter inventory (Boundary is tracked
// separately since it is not an Arabic letter).
var letterSet = map[rune]bool{
	Alif: true, AlifHamzaAb: true, AlifHamzaBl: true, AlifMadda: true,
	Hamza: true, YehHamza: true, WawHamza: true, AlifMaqsura: true,
	Beh: true, Teh: true, TehMarbuta: true, Theh: true,
	Jeem: true, Hah: true, Khah: true,
	Dal: true, Thal: true,
	Reh: true, Zain: true,
	Sheen: true, Seen: true, Sad: true, Dad: true, Tah: true, Zah: true,
	Ain: true, Ghain: true,
	Feh: true, Qaf: true, Kaf: true,
	Lam: true, Meem: true, Noon: true, Heh: true,
	Waw: true, Yeh: true,
}

// diacriticSet is the closed 8-diacritic inventory.
var diacriticSet = map[rune]bool{
	Shadda: true, Fatha: true, Damma: true, Kasra: true,
	TanwinFatha: true, TanwinDamma: true, TanwinKasra: true, Sukun: true,
}

// lunarLetters takes a sukūn-bearing lām in the definite article: lā
// shamsiyya, the lām is pronounced as written.
var lunarLetters = map[rune]bool{
	AlifHamzaAb: true, AlifHamzaBl: true,
	Beh: true, Ghain: true, Hah: true, Jeem: true, Kaf: true, Waw: true,
	Khah: true, Feh: true, Ain: true, Qaf: true, Yeh: true, Meem: true, Heh: true,
}

// solarLetters assimilate a preceding definite-article lām: it is
// dropped and the following consonant is doubled (shadda).
var solarLetters = map[rune]bool{
	Teh: true, Theh: true, Dal: true, Thal: true, Reh: true, Zain: true,
	Seen: true, Sheen: true, Sad: true, Dad: true, Tah: true, Zah: true,
	Lam: true, Noon: true,
}

// IsLetter reports whether r is one of the 36 Arabic letters (Boundary
// is not a letter; test it separately).
func IsLetter(r rune) bool { return letterSet[r] }

// IsDiacritic reports whether r is one of the 8 prosodic diacritics.
func IsDiacritic(r rune) bool { return diacriticSet[r] }

// IsLunar reports whether r is a lunar (qamariyya) consonant.
func IsLunar(r rune) bool { return lunarLetters[r] }

// IsSolar reports whether r is a solar (shamsiyya) consonant.
func IsSolar(r rune) bool { return solarLetters[r] }

// IsLongVowelLetter reports whether r is one of the letters treated as
// an inherently long (sākin) vowel carrier: alif and alif maqṣūra.
// These never carry a written vowel diacritic of their own.
func IsLongVowelLetter(r rune) bool { return r == Alif || r == AlifMaqsura }

// IsAllowed reports whether r belongs to either inventory, or is the
// boundary sentinel. Used by the grapheme layer's cleanup pass to drop
// everything else (punctuation, Latin text, stray marks).
func IsAllowed(r rune) bool {
	return r == Boundary || IsLetter(r) || IsDiacritic(r)
}
