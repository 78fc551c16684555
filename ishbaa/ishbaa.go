// Package ishbaa implements the licit-lengthening fallback search: when
// a verse's direct skeleton does not match any meter, certain short
// pronoun vowels (ـهُ, ـهِ, ـمُ) may be lengthened (ـهُوْ, ـهِيْ, ـمُوْ) to
// satisfy a meter. Every subset of occurrences is a candidate; the
// search enumerates all 2^k subsets, capped at k positions, and
// returns the first candidate whose skeleton matches a meter.
package ishbaa

import (
	"regexp"
	"strings"

	"github.com/az-ai-labs/al-khalil/meter"
	"github.com/az-ai-labs/al-khalil/skeleton"
)

// MaxPositions caps the combinatorial search at 2^16 candidates. The
// reference implementation has no cap and will enumerate unboundedly
// for pathological inputs; here overflow past the cap is treated the
// same as exhausting the search without a match.
const MaxPositions = 16

var pronounBeforeBoundary = regexp.MustCompile(`(هُ|هِ|مُ)#`)

var lengthened = map[string]string{
	"هُ": "هُوْ",
	"هِ": "هِيْ",
	"مُ": "مُوْ",
}

var collapseBoundary = regexp.MustCompile(`#+`)

// Result carries a lengthened candidate that matched a meter.
type Result struct {
	Text    string
	Chars   string
	Harakat string
	Skel    string
	Meter   string
}

// Search tries every lengthening subset of prosodic's pronoun-ending
// words and returns the first candidate that matches a meter. It
// reports ok=false if no pronoun can be lengthened, the count of
// candidate positions exceeds MaxPositions, or no subset matches.
//
// Enumeration order mirrors the reference implementation's own
// recursive truth-table construction: the all-lengthened subset is
// tried first, the unlengthened original last, descending through
// every combination in between in binary order.
func Search(prosodic string) (Result, bool) {
	parts := splitOnPronouns(prosodic)

	var positions []int
	for i, p := range parts {
		if _, ok := lengthened[p]; ok {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 || len(positions) > MaxPositions {
		return Result{}, false
	}

	total := 1 << len(positions)
	candidate := make([]string, len(parts))
	for mask := total - 1; mask >= 0; mask-- {
		copy(candidate, parts)
		for bit, pos := range positions {
			if mask&(1<<bit) != 0 {
				candidate[pos] = lengthened[candidate[pos]]
			}
		}

		stateText := collapseBoundary.ReplaceAllString(strings.Join(candidate, ""), "#")
		chars, harakat, skel := skeleton.Extract(stateText)
		name := meter.Match(skel)
		if name != meter.Unknown {
			return Result{Text: stateText, Chars: chars, Harakat: harakat, Skel: skel, Meter: name}, true
		}
	}
	return Result{}, false
}

// splitOnPronouns mirrors Python's re.split(r'(هُ|هِ|مُ)#', text): the
// string is cut at every pronoun-then-boundary match, the boundary
// itself is discarded, and the captured pronoun survives as its own
// element interleaved with the surrounding text.
func splitOnPronouns(text string) []string {
	idx := pronounBeforeBoundary.FindAllStringSubmatchIndex(text, -1)
	if idx == nil {
		return []string{text}
	}
	parts := make([]string, 0, len(idx)*2+1)
	last := 0
	for _, m := range idx {
		parts = append(parts, text[last:m[0]])
		parts = append(parts, text[m[2]:m[3]])
		last = m[1]
	}
	parts = append(parts, text[last:])
	return parts
}
