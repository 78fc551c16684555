// Package freeverse identifies the dominant tafʿīla of a free-verse
// (tafʿīla) poem, which repeats a single foot rather than following a
// closed classical pattern, and segments its skeleton into that
// foot's repetitions.
package freeverse

import "regexp"

// candidate pairs a meter name with the regexp counting its
// non-overlapping repetitions within a skeleton prefix.
type candidate struct {
	name    string
	pattern *regexp.Regexp
}

// openingGroups maps the skeleton's first four symbols to the set of
// meters consistent with that opening, in the reference
// implementation's own declaration order — order matters only as a
// tie-break, since ties in match count keep the earlier-declared name.
var openingGroups = map[string][]candidate{
	"UUU-": {
		{"rajaz", regexp.MustCompile(`--U-|-UU-|U-U-|UUU-|U-`)},
		{"khabab", regexp.MustCompile(`UU-|-UU|--`)},
	},
	"UU-U": {
		{"kamel", regexp.MustCompile(`UU-U-|--U-`)},
		{"ramal", regexp.MustCompile(`-U--|UU--|UU-U`)},
		{"mutadarak", regexp.MustCompile(`-U-|UU-`)},
	},
	"UU--": {
		{"ramal", regexp.MustCompile(`-U--|UU--|UU-U`)},
	},
	"U-UU": {
		{"wafer", regexp.MustCompile(`U-UU-|U---`)},
		{"mutakareb", regexp.MustCompile(`U--|U-U|U-`)},
	},
	"U-U-": {
		{"rajaz", regexp.MustCompile(`--U-|-UU-|U-U-|UUU-|U-`)},
		{"mutakareb", regexp.MustCompile(`U--|U-U|U-`)},
	},
	"U--U": {
		{"wafer", regexp.MustCompile(`U-UU-|U---`)},
		{"mutakareb", regexp.MustCompile(`U--|U-U|U-`)},
	},
	"U---": {
		{"wafer", regexp.MustCompile(`U-UU-|U---`)},
	},
	"-UU-": {
		{"rajaz", regexp.MustCompile(`--U-|-UU-|U-U-|UUU-|U-`)},
	},
	"-U-U": {
		{"mutadarak", regexp.MustCompile(`-U-|UU-`)},
	},
	"-U--": {
		{"ramal", regexp.MustCompile(`-U--|UU--|UU-U`)},
		{"mutadarak", regexp.MustCompile(`-U-|UU-`)},
	},
	"--U-": {
		{"kamel", regexp.MustCompile(`UU-U-|--U-`)},
		{"rajaz", regexp.MustCompile(`--U-|-UU-|U-U-|UUU-|U-`)},
		{"mutadarak", regexp.MustCompile(`-U-|UU-`)},
	},
}

// DominantMeter returns the meter name a free-verse skeleton is built
// on, or "unknown" if its opening four symbols match no candidate
// group. Each candidate in the matching group is scored by counting
// its pattern's non-overlapping matches within the skeleton's first 21
// symbols; the highest-scoring candidate wins, ties keep the
// earlier-declared candidate. If the winner is wafer but its match set
// contains no literal "U-UU-" repetition, it is downgraded to hazaj —
// wafer's full foot was never actually observed, only its shorter
// hazaj-compatible variant.
func DominantMeter(skel string) string {
	opening := skel
	if len(opening) > 4 {
		opening = opening[:4]
	}
	group, ok := openingGroups[opening]
	if !ok {
		return "unknown"
	}

	window := skel
	if len(window) > 21 {
		window = window[:21]
	}

	best := "unknown"
	bestCount := 0
	for _, c := range group {
		matches := c.pattern.FindAllString(window, -1)
		if len(matches) <= bestCount {
			continue
		}
		bestCount = len(matches)
		best = c.name
		if best == "wafer" {
			best = "hazaj"
			for _, m := range matches {
				if m == "U-UU-" {
					best = "wafer"
					break
				}
			}
		}
	}
	return best
}

// Foot is one repetition of a free-verse poem's dominant tafʿīla, or
// the placeholder "????" when no known variant fits the remaining
// skeleton at the current position.
type Foot struct {
	Symbols string
	Name    string
	Text    string
}

// Segment walks skel left to right, peeling off one foot per
// iteration. Only kamel and rajaz have a detailed per-variant walk,
// matching the reference implementation's own partial coverage; every
// other meter name falls through to consuming one symbol at a time as
// an unnamed "????" placeholder foot, and kamel/rajaz themselves fall
// back to the same placeholder whenever the remaining skeleton matches
// none of their variants.
func Segment(meterName, skel, chars string) []Foot {
	runes := []rune(chars)
	pos := 0
	take := func(n int) string {
		end := pos + n
		if end > len(runes) {
			end = len(runes)
		}
		if pos > len(runes) {
			return ""
		}
		out := string(runes[pos:end])
		pos = end
		return out
	}

	var feet []Foot
	for skel != "" {
		sym, name, letterLen, ok := nextFoot(meterName, skel)
		if !ok {
			sym = string(skel[0])
			name = "????"
			letterLen = 2
		}
		feet = append(feet, Foot{Symbols: sym, Name: name, Text: take(letterLen)})
		if len(sym) > len(skel) {
			break
		}
		skel = skel[len(sym):]
	}
	return feet
}

func nextFoot(meterName, skel string) (sym, name string, letterLen int, ok bool) {
	switch meterName {
	case "kamel":
		switch {
		case hasPrefix(skel, "UU-U-"):
			return "UU-U-", "مُتَفَاْعِلُنْ", 14, true
		case hasPrefix(skel, "--U-"):
			return "--U-", "مُسْتَفْعِلُنْ", 14, true
		}
	case "rajaz":
		switch {
		case hasPrefix(skel, "--U-"):
			return "--U-", "مُسْتَفْعِلُنْ", 14, true
		case hasPrefix(skel, "U-U-"):
			return "U-U-", "مُتَفْعِلُنْ", 12, true
		case hasPrefix(skel, "-UU-"):
			return "-UU-", "مُسْتَعِلُنْ", 12, true
		case hasPrefix(skel, "UUU-"):
			return "UUU-", "مُتَعِلُنْ", 10, true
		}
	}
	return "", "", 0, false
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
