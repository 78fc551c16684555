package rhyme

// Diff compares a verse's rhyme analysis against a poem's established
// (first-verse) rhyme pattern and reports its consistency defects, in
// the reference implementation's own check order: a rawī mismatch, or
// else a waṣl mismatch, is reported on its own; otherwise the taʾsīs
// and ridf checks each run.
func Diff(base, current Analysis) []string {
	var errs []string

	switch {
	case current.Rawi.String() != base.Rawi.String():
		errs = append(errs, "قافية هذا البيت مختلفة كليَّاً عن قافية القصيدة و ذلك <b>لاختلاف الرَّويِّ</b> بين القافيتين.")

	case current.Wasl.String() != base.Wasl.String() &&
		!isAlifAlifMaqsuraSwap(current.Wasl.String(), base.Wasl.String()):
		errs = append(errs, "قافية هذا البيت مختلفة عن قافية القصيدة بسبب <b>اختلاف حرف الوصل</b>.")

	default:
		switch {
		case current.Tasis != 0 && base.Tasis == 0:
			errs = append(errs, "لقد قمت باستعمال ألف التأسيس في قافية هذا البيت في حين أنَّ قافية القصيدة ليست مؤسَّسة و هذا عيب من عيوب القافية يعرف بـ<b>سناد التأسيس</b>.")
		case current.Tasis == 0 && base.Tasis != 0:
			errs = append(errs, "يجب أن تُؤَسَّسَ قافية هذا البيت بألف التأسيس !")
		}

		switch {
		case !current.Ridf.isZero() && base.Ridf.isZero():
			errs = append(errs, "لقد قمت باستعمال ردف للقافية في قافية هذا البيت في حين أنَّ قافية القصيدة ليست مردفة و هذا عيب من عيوب القافية يعرف بـ<b>سناد الرِّدف</b>.")
		case current.Ridf.isZero() && !base.Ridf.isZero():
			errs = append(errs, "يجب أن تُرْدِفَ قافية هذا البيت بحرف الرِّدف المناسب قبل الرَّوي مباشرةً !")
		case !current.Ridf.isZero() && !base.Ridf.isZero():
			if isWawYehVsAlif(current.Ridf.String(), base.Ridf.String()) {
				errs = append(errs, "لا يمكن أن تجتمع الياء أو الواو كردف مع الألف كردف !")
			}
		}

		// The reference implementation's own خروج consistency check
		// re-tests rawī equality here, which this branch has already
		// guaranteed true; it can never fire and is not reproduced.
	}

	return errs
}

func isAlifAlifMaqsuraSwap(a, b string) bool {
	return (a == "اْ" && b == "ىْ") || (a == "ىْ" && b == "اْ")
}

func isWawYehVsAlif(current, base string) bool {
	currentIsWawYeh := current == "يْ" || current == "وْ"
	baseIsAlif := base == "ا" || base == "اْ"
	currentIsAlif := current == "اْ" || current == "ا"
	baseIsWawYeh := base == "وْ" || base == "يْ"
	return (currentIsWawYeh && baseIsAlif) || (currentIsAlif && baseIsWawYeh)
}
