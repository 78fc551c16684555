// Package meter identifies which classical Arabic meter (baḥr) a
// prosodic skeleton belongs to, by matching it end-to-end against a
// closed table of 29 anchored patterns over the alphabet {U, -}.
package meter

import "regexp"

// Unknown is returned when no entry of the meter table matches.
const Unknown = "unknown"

// entry pairs a meter's stable ASCII identifier with its precompiled,
// fully-anchored pattern.
type entry struct {
	name    string
	pattern *regexp.Regexp
}

// toGoAnchor anchors a table pattern at both ends with Go regexp's
// ^...$ anchors. The table entries are written without the reference
// table's %...% delimiters (its own convention for "match the whole
// string"); the anchors take their place.
func toGoAnchor(pattern string) string {
	return "^" + pattern + "$"
}

func compiled(name, pattern string) entry {
	return entry{name: name, pattern: regexp.MustCompile(toGoAnchor(pattern))}
}

// table is the canonical meter pattern list, reproduced verbatim from
// the reference implementation's METER_PATTERNS in its original
// declaration order: iteration order is significant,
// since the first matching entry wins and several patterns can match
// the same prefix length.
var table = []entry{
	compiled("taweel", `U-[-U]U---U-[U-]U(---|-U-|--)`),
	compiled("baseet", `(--U-|U-U-)(-U-|UU-)--U-(-U-|UU-|--)`),
	compiled("madeed", `[-U]U--[-U]U-(-U--|-U-U|-U-|UU-)`),
	compiled("kamel", `(UU|-)-U-(UU|-)-U-(UU-U-|--U-|UU--|---)`),
	compiled("rajaz", `(--U-|U-U-|-UU-|UUU-)(--U-|U-U-|-UU-|UUU-)(--U-|U-U-|-UU-|UUU-|---)`),
	compiled("ramal", `(-U--|UU--|UU-U|-U-U)(-U--|UU--|UU-U|-U-U)(-U--|-U-|UU-|-U-U)`),
	compiled("saree3", `(--U-|U-U-|-UU-|UUU-)(--U-|U-U-|-UU-|UUU-)(-U-|-U-U)`),
	compiled("khafeef", `(-U--|UU--)(--U-|U-U-)(-U--|UU--|---|UU-)`),
	compiled("munsare7", `(--U-|U-U-|-UU-|UUU-)(---U|-U-U|UU-U)(--U-|-UU-|---)`),
	compiled("wafer", `(U-UU-|U---)(U-UU-|U---)(U--)`),
	compiled("o7othKamel", `(UU-U-|--U-)(UU-U-|--U-)UU-`),
	compiled("mutakareb", `(U--|U-U){3}(U--|U-U|U-)`),
	compiled("mutadarak", `(-U-|UU-|--)(-U-|UU-|--)(-U-|UU-|--)(-U-|UU-|--)`),
	compiled("mu5alla3Baseet", `(--U-|U-U-|-UU-)-U-U--`),
	compiled("majzoo2Baseet", `(--U-|U-U-|-UU-|UUU-)(-U-|UU-)(--U-|---|--U-U)`),
	compiled("majzoo2Kamel", `(UU-U-|--U-)(UU-U-|UU--|--U-|UU-U-U|UU-U--)`),
	compiled("majzoo2Ramal", `(-U--|UU--)(-U--|UU--|-U--U|-U-)`),
	compiled("majzoo2Saree3", `(--U-|U-U-|-UU-|UUU-)(-U-|-U-U)`),
	compiled("majzoo2khafeef", `(-U--|UU--)(--U-|U-U-)`),
	compiled("majzoo2Munsare7", `(--U-|U-U-|-UU-|UUU-)(---U|---)`),
	compiled("majzoo2Mutakareb", `(U--|U-U){2}(U--|U-U|U-|-)`),
	compiled("majzoo2Mutadarak", `(-U-|UU-|--){2}(-U-|-U-U|UU--)`),
	compiled("hazaj", `(U---|U--U)(U---|U--U)`),
	compiled("majzoo2Wafer", `(U-UU-|U---)(U-UU-|U---)`),
	compiled("majzoo2Rajaz", `(--U-|U-U-|-UU-|UUU-)(--U-|U-U-|-UU-|UUU-|---|--U--)`),
	compiled("modare3", `(U--U|U-U-)-U--`),
	compiled("moktadab", `-U-U-UU-`),
	compiled("mojtath", `(--U-|U-U-)(-U--|UU--|---)`),
	compiled("manhookRajaz", `(--U-|U-U-|-UU-|UUU-|---)`),
}

// Match returns the stable ASCII identifier of the first meter in
// table whose pattern matches skel end-to-end, or Unknown if none does.
func Match(skel string) string {
	for _, e := range table {
		if e.pattern.MatchString(skel) {
			return e.name
		}
	}
	return Unknown
}
