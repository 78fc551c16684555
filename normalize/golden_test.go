package normalize

import "testing"

// goldenCases pins concrete before/after pairs drawn from worked
// scenarios, the way golden_test.go files elsewhere pin known-good
// transformations rather than re-deriving them from first principles.
var goldenCases = []struct {
	name   string
	in     string
	isAjuz bool
	want   string
}{
	{
		name: "amr case marked",
		in:   "عمرو",
		want: "#عمْر#",
	},
	{
		name: "alif madda restored",
		in:   "آمن",
		want: "#أامن#",
	},
}

func TestNormalizeGolden(t *testing.T) {
	for _, tc := range goldenCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in, tc.isAjuz)
			if got != tc.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tc.in, tc.isAjuz, got, tc.want)
			}
		})
	}
}
