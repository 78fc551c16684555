package freeverse

import (
	"strings"
	"testing"
)

func TestDominantMeterPicksHighestScoringCandidate(t *testing.T) {
	// Within the "UU-U" opening group, kamel's pattern UU-U-|--U-
	// scores 4 non-overlapping matches on this skeleton; ramal and
	// mutadarak also score 4 each, so kamel wins the tie as the
	// earlier-declared candidate.
	skel := strings.Repeat("UU-U-", 4)
	if got := DominantMeter(skel); got != "kamel" {
		t.Errorf("DominantMeter(%q) = %q, want kamel", skel, got)
	}
}

func TestDominantMeterDowngradesWaferToHazaj(t *testing.T) {
	// The "U---" opening group has only the wafer candidate; this
	// skeleton scores 4 matches, all literal "U---", never "U-UU-",
	// so the wafer win must be downgraded to hazaj.
	skel := strings.Repeat("U---", 4)
	if got := DominantMeter(skel); got != "hazaj" {
		t.Errorf("DominantMeter(%q) = %q, want hazaj (wafer downgrade)", skel, got)
	}
}

func TestDominantMeterKeepsWaferOnLiteralSubMatch(t *testing.T) {
	skel := "U-UU-U---U---U---"
	if got := DominantMeter(skel); got != "wafer" {
		t.Errorf("DominantMeter(%q) = %q, want wafer", skel, got)
	}
}

func TestDominantMeterUnknownOnUnrecognisedOpening(t *testing.T) {
	if got := DominantMeter("UUUU"); got != "unknown" {
		t.Errorf("DominantMeter(UUUU) = %q, want unknown", got)
	}
}

func TestSegmentKamelFallsBackToPlaceholder(t *testing.T) {
	skel := "UU-U-UUU"
	chars := strings.Repeat("ك", 30)

	feet := Segment("kamel", skel, chars)
	if len(feet) != 4 {
		t.Fatalf("Segment returned %d feet, want 4: %+v", len(feet), feet)
	}
	if feet[0].Name != "مُتَفَاْعِلُنْ" || feet[0].Symbols != "UU-U-" {
		t.Errorf("first foot = %+v, want مُتَفَاْعِلُنْ/UU-U-", feet[0])
	}
	for i := 1; i < 4; i++ {
		if feet[i].Name != "????" {
			t.Errorf("foot %d = %+v, want placeholder ????", i, feet[i])
		}
	}
}

func TestSegmentRajazThreeFeetNoPlaceholder(t *testing.T) {
	skel := "--U-U-U--UU-"
	chars := strings.Repeat("ر", 40)

	feet := Segment("rajaz", skel, chars)
	wantNames := []string{"مُسْتَفْعِلُنْ", "مُتَفْعِلُنْ", "مُسْتَعِلُنْ"}
	if len(feet) != len(wantNames) {
		t.Fatalf("Segment returned %d feet, want %d: %+v", len(feet), len(wantNames), feet)
	}
	for i, f := range feet {
		if f.Name != wantNames[i] {
			t.Errorf("foot %d name = %q, want %q", i, f.Name, wantNames[i])
		}
	}
}

func TestSegmentUnhandledMeterIsAllPlaceholders(t *testing.T) {
	skel := "UUU-"
	chars := strings.Repeat("س", 10)

	feet := Segment("khabab", skel, chars)
	if len(feet) != len(skel) {
		t.Fatalf("Segment returned %d feet, want %d (one per symbol)", len(feet), len(skel))
	}
	for _, f := range feet {
		if f.Name != "????" {
			t.Errorf("foot = %+v, want placeholder ????", f)
		}
	}
}
