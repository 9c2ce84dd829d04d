package students

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAdmissionNo(t *testing.T) {
	t.Run("FirstStudentOfYear", func(t *testing.T) {
		assert.Equal(t, "2025-001", NextAdmissionNo(2025, nil))
	})

	t.Run("ContinuesFromMaxSequence", func(t *testing.T) {
		existing := []string{"2025-001", "2025-007", "2025-003"}
		assert.Equal(t, "2025-008", NextAdmissionNo(2025, existing))
	})

	t.Run("IgnoresOtherYears", func(t *testing.T) {
		existing := []string{"2024-120", "2025-002"}
		assert.Equal(t, "2025-003", NextAdmissionNo(2025, existing))
	})

	t.Run("IgnoresMalformedNumbers", func(t *testing.T) {
		existing := []string{"2025-abc", "2025-", "TEMP-9", "2025-004"}
		assert.Equal(t, "2025-005", NextAdmissionNo(2025, existing))
	})

	t.Run("PadsToThreeDigits", func(t *testing.T) {
		assert.Equal(t, "2025-100", NextAdmissionNo(2025, []string{"2025-099"}))
		assert.Equal(t, "2025-1000", NextAdmissionNo(2025, []string{"2025-999"}))
	})
}

func TestFilterGroups(t *testing.T) {
	t.Run("DropsLegacyCodesAndEmpty", func(t *testing.T) {
		groups := []string{"Class 5", "MPC", "bipc", "", "  ", "MEC", "Class 6"}
		assert.Equal(t, []string{"Class 5", "Class 6"}, FilterGroups(groups))
	})

	t.Run("NaturalNumericOrdering", func(t *testing.T) {
		groups := []string{"Class 10", "Class 2", "Class 1", "IC-10", "IC-2"}
		assert.Equal(t, []string{"Class 1", "Class 2", "Class 10", "IC-2", "IC-10"}, FilterGroups(groups))
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		assert.Equal(t, []string{"Class 7"}, FilterGroups([]string{" Class 7 "}))
	})
}

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Class 2", "Class 10", true},
		{"Class 10", "Class 2", false},
		{"class 3", "Class 3", false}, // เท่ากันแบบ case-insensitive
		{"A", "B", true},
		{"A1B2", "A1B10", true},
		{"Class", "Class 1", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, naturalLess(tc.a, tc.b), "%q < %q", tc.a, tc.b)
	}
}
