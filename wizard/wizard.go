// Package wizard validates a verse's prosodic skeleton against a set
// of expected foot patterns, reporting either a match or a diagnostic
// explaining exactly which letter needs to change and why.
package wizard

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status reports whether a foot matched one of its expected patterns.
type Status int

const (
	OK  Status = iota // the foot matched one of its expected patterns
	Err               // the foot matched none; Errors explains why
)

var statusNames = [...]string{OK: "ok", Err: "err"}

var statusFromName = map[string]Status{"ok": OK, "err": Err}

func (s Status) String() string {
	if int(s) >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalJSON encodes the status as a JSON string ("ok" or "err").
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string ("ok" or "err") into a Status.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	st, ok := statusFromName[str]
	if !ok {
		return fmt.Errorf("wizard: unknown status: %q", str)
	}
	*s = st
	return nil
}

// PatternGroup is one foot position's set of acceptable prosodic
// patterns (each a string of 'U'/'-' symbols), each with its
// traditional name (e.g. "فَعُوْلُنْ"). Patterns and Names are
// parallel slices of the same length.
type PatternGroup struct {
	Patterns []string
	Names    []string
}

// FootReport is one foot's validation result.
type FootReport struct {
	Status Status
	Name   string   // matched pattern's traditional name; empty when Status == Err
	Chars  string   // the verse letters this foot spans, display-cleaned
	Errors []string // diagnostics; non-empty only when Status == Err
}

// Classical validates a classical verse's skeleton foot-by-foot
// against an ordered list of expected pattern groups, one per foot
// position. It halts at the first mismatch, the way the reference
// implementation stops correcting a verse once one foot has failed.
func Classical(rokaz, chars string, groups []PatternGroup) []FootReport {
	var reports []FootReport
	for _, group := range groups {
		if len(group.Patterns) == 0 {
			break
		}
		report, restRokaz, restChars := matchFoot(rokaz, chars, group)
		reports = append(reports, report)
		rokaz, chars = restRokaz, restChars
		if report.Status == Err {
			break
		}
	}
	return reports
}

// FreeVerse validates a free-verse poem's skeleton by repeatedly
// matching the same single pattern group until the skeleton is
// exhausted, continuing past mismatches instead of halting, the way
// the reference implementation keeps correcting every foot of a
// tafʿīla poem rather than stopping at the first one.
func FreeVerse(rokaz, chars string, groups []PatternGroup) []FootReport {
	if len(groups) == 0 || len(groups[0].Patterns) == 0 {
		return nil
	}
	group := groups[0]

	var reports []FootReport
	for rokaz != "" {
		report, restRokaz, restChars := matchFoot(rokaz, chars, group)
		reports = append(reports, report)
		rokaz, chars = restRokaz, restChars
	}
	return reports
}

// matchFoot tries each pattern in group against the rokaz prefix,
// in declaration order, and returns the first match. On no match it
// reports against the group's first (primary) pattern and explains
// the mismatch via compareWithTafeela.
func matchFoot(rokaz, chars string, group PatternGroup) (FootReport, string, string) {
	for _, pattern := range group.Patterns {
		status := sliceRunes(rokaz, len([]rune(pattern)))
		if status == pattern {
			name := matchName(group, status)
			charLen := letterSpan(status)
			report := FootReport{
				Status: OK,
				Name:   name,
				Chars:  cleanDisplay(sliceRunes(chars, charLen)),
			}
			return report, dropRunes(rokaz, len([]rune(pattern))), dropRunes(chars, charLen)
		}
	}

	primaryLen := len([]rune(group.Patterns[0]))
	status := sliceRunes(rokaz, primaryLen)
	name := matchName(group, status)
	charLen := letterSpan(status)
	report := FootReport{
		Status: Err,
		Name:   name,
		Chars:  cleanDisplay(sliceRunes(chars, charLen)),
		Errors: compareWithTafeela(status, group.Patterns, group.Names),
	}
	return report, dropRunes(rokaz, primaryLen), dropRunes(chars, charLen)
}

// matchName finds the first pattern in group equal to status and
// returns its name, or "" if none match.
func matchName(group PatternGroup, status string) string {
	for i, p := range group.Patterns {
		if p == status {
			return group.Names[i]
		}
	}
	return ""
}

// letterSpan computes how many letters a U/- symbol string spans: a
// short vowel (U) is one letter, a long syllable (-) is two, and the
// whole count is doubled again, matching the reference's own
// char_length formula.
func letterSpan(status string) int {
	n := 0
	for _, r := range status {
		if r == '-' {
			n += 2
		} else {
			n++
		}
	}
	return n * 2
}

func cleanDisplay(s string) string {
	s = strings.ReplaceAll(s, "ى", "ى ")
	s = strings.ReplaceAll(s, "ة", "ة ")
	return s
}

func sliceRunes(s string, n int) string {
	r := []rune(s)
	if n > len(r) {
		n = len(r)
	}
	if n < 0 {
		n = 0
	}
	return string(r[:n])
}

func dropRunes(s string, n int) string {
	r := []rune(s)
	if n > len(r) {
		n = len(r)
	}
	if n < 0 {
		n = 0
	}
	return string(r[n:])
}

var charNames = map[int]string{
	1: "الأوّل", 2: "الثّاني", 3: "الثّالث", 4: "الرّابع", 5: "الخامس",
	6: "السّادس", 7: "السّابع", 8: "الثّامن", 9: "التّاسع", 10: "العاشر",
}

var stateNames = map[int]string{
	1: "الأولى", 2: "الثّانية", 3: "الثّالثة",
	4: "الرّابعة", 5: "الخامسة", 6: "السّادسة",
}

func charName(n int) string {
	if name, ok := charNames[n]; ok {
		return name
	}
	return fmt.Sprintf("رقم %d", n)
}

func stateName(n int) string {
	if name, ok := stateNames[n]; ok {
		return name
	}
	return fmt.Sprintf("رقم %d", n)
}

// compareWithTafeela explains why a foot's current U/- pattern
// doesn't match any of its candidate patterns, naming the first
// differing letter against each candidate in turn.
func compareWithTafeela(current string, patterns, names []string) []string {
	var errors []string
	currentChars := []rune(current)

	for i, pattern := range patterns {
		name := names[i]
		stateNo := i + 1
		patternChars := []rune(pattern)

		n := len(currentChars)
		currentIsShorter := len(patternChars) < len(currentChars)
		if currentIsShorter {
			n = len(patternChars)
		}

		charPos := 0
		for j := 0; j < n; j++ {
			currChar := currentChars[j]
			expChar := patternChars[j]

			if currChar == 'U' {
				charPos++
			} else if currChar == '-' {
				charPos += 2
			}

			if currChar == expChar {
				if j < n-1 || len(patternChars) == len(currentChars) {
					continue
				}
			} else if currChar == 'U' {
				errors = append(errors, fmt.Sprintf(
					"<b> الصورة%s (%s) :</b>يجب تسكين الحرف %s كي نحصل على تقطيع متوافق مع هذه الصورة",
					stateName(stateNo), name, charName(charPos+1)))
				break
			} else if currChar == '-' {
				errors = append(errors, fmt.Sprintf(
					"<b> الصورة%s (%s) :</b>يجب أن يكون الحرف %s متحركاً كي نحصل على تقطيع متوافق مع هذه الصورة",
					stateName(stateNo), name, charName(charPos)))
				break
			}
			if j == n-1 {
				if currentIsShorter {
					errors = append(errors, fmt.Sprintf(
						"<b> الصورة%s (%s) :</b>التقطيع الحالي لهذه التفعيلة أطول وزنيّاً من هذه الصورة",
						stateName(stateNo), name))
				} else {
					errors = append(errors, fmt.Sprintf(
						"<b> الصورة%s (%s) :</b>التقطيع الحالي لهذه التفعيلة أقصر وزنيّاً من هذه الصورة",
						stateName(stateNo), name))
				}
				break
			}
		}
	}

	return errors
}
