package wizard

import "testing"

func taweelFirstFoot() PatternGroup {
	return PatternGroup{
		Patterns: []string{"U--", "U-U"},
		Names:    []string{"فَعُوْلُنْ", "فَعُوْلُ"},
	}
}

func TestClassicalMatchesFirstAlternative(t *testing.T) {
	rokaz := "U--U---U--U-U-"
	chars := "فعولن مفاعيلن فعولن مفاعلن"
	groups := []PatternGroup{taweelFirstFoot()}

	reports := Classical(rokaz, chars, groups)
	if len(reports) != 1 {
		t.Fatalf("Classical returned %d reports, want 1: %+v", len(reports), reports)
	}
	if reports[0].Status != OK {
		t.Fatalf("Status = %v, want OK: %+v", reports[0].Status, reports[0])
	}
	if reports[0].Name != "فَعُوْلُنْ" {
		t.Errorf("Name = %q, want فَعُوْلُنْ", reports[0].Name)
	}
}

func TestClassicalMatchesSecondAlternative(t *testing.T) {
	rokaz := "U-U" + "U---"
	groups := []PatternGroup{taweelFirstFoot()}

	reports := Classical(rokaz, "xxxxxxxxxxxxxxxxxx", groups)
	if len(reports) != 1 || reports[0].Status != OK || reports[0].Name != "فَعُوْلُ" {
		t.Fatalf("got %+v, want single OK فَعُوْلُ report", reports)
	}
}

func TestClassicalHaltsOnFirstMismatch(t *testing.T) {
	// First foot matches U-U (فَعُوْلُ), second foot is garbage: classical
	// mode must stop there and never attempt a third group.
	rokaz := "U-U" + "XXXX" + "U--"
	groups := []PatternGroup{
		taweelFirstFoot(),
		{Patterns: []string{"----"}, Names: []string{"مَفَاْعِيْلُنْ"}},
		taweelFirstFoot(),
	}

	reports := Classical(rokaz, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", groups)
	if len(reports) != 2 {
		t.Fatalf("Classical returned %d reports, want 2 (halt after mismatch): %+v", len(reports), reports)
	}
	if reports[0].Status != OK {
		t.Errorf("reports[0].Status = %v, want OK", reports[0].Status)
	}
	if reports[1].Status != Err {
		t.Errorf("reports[1].Status = %v, want Err", reports[1].Status)
	}
	if len(reports[1].Errors) == 0 {
		t.Errorf("expected a diagnostic for the mismatched foot, got none")
	}
}

func TestFreeVerseContinuesPastMismatch(t *testing.T) {
	group := PatternGroup{
		Patterns: []string{"--U-"},
		Names:    []string{"مُسْتَفْعِلُنْ"},
	}
	// Two good feet, one bad, one good: free-verse mode must not stop
	// at the bad foot, producing 4 reports total.
	rokaz := "--U-" + "--U-" + "XXXX" + "--U-"
	chars := make([]rune, 0, 64)
	for i := 0; i < 32; i++ {
		chars = append(chars, 'ا')
	}

	reports := FreeVerse(rokaz, string(chars), []PatternGroup{group})
	if len(reports) != 4 {
		t.Fatalf("FreeVerse returned %d reports, want 4: %+v", len(reports), reports)
	}
	wantStatus := []Status{OK, OK, Err, OK}
	for i, want := range wantStatus {
		if reports[i].Status != want {
			t.Errorf("reports[%d].Status = %v, want %v", i, reports[i].Status, want)
		}
	}
}

func TestFreeVerseEmptyGroupsIsNil(t *testing.T) {
	if got := FreeVerse("U-U-", "xxxx", nil); got != nil {
		t.Errorf("FreeVerse with no groups = %+v, want nil", got)
	}
}

func TestLetterSpanCountsLongSyllablesDouble(t *testing.T) {
	if got := letterSpan("U--"); got != 10 {
		t.Errorf("letterSpan(U--) = %d, want 10", got)
	}
	if got := letterSpan("U-U"); got != 8 {
		t.Errorf("letterSpan(U-U) = %d, want 8", got)
	}
}

func TestCleanDisplayInsertsSpaceAfterAlifMaqsuraAndTehMarbuta(t *testing.T) {
	got := cleanDisplay("مصطفى رحمة")
	if !contains(got, "ى ") {
		t.Errorf("cleanDisplay(%q) = %q, want it to contain %q", "مصطفى رحمة", got, "ى ")
	}
	if !contains(got, "ة ") {
		t.Errorf("cleanDisplay(%q) = %q, want it to contain %q", "مصطفى رحمة", got, "ة ")
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestCompareWithTafeelaFlagsFirstDifferingLetter(t *testing.T) {
	errs := compareWithTafeela("U-U-", []string{"U--U"}, []string{"فَاْعِلُنْ"})
	if len(errs) != 1 {
		t.Fatalf("compareWithTafeela returned %d diagnostics, want 1: %v", len(errs), errs)
	}
}

func TestStatusJSONRoundTrip(t *testing.T) {
	b, err := OK.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"ok"` {
		t.Errorf("MarshalJSON(OK) = %s, want \"ok\"", b)
	}
	var s Status
	if err := s.UnmarshalJSON([]byte(`"err"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if s != Err {
		t.Errorf("UnmarshalJSON(err) = %v, want Err", s)
	}
}
