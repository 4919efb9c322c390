package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestSplitList checks the asymmetric comma rule: no comma means a single
// element kept verbatim, a comma means split-and-trim.
func TestSplitList(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"a"}, SplitList("a"))
	require.Equal(t, []string{"a", "b"}, SplitList("a, b"))
	require.Equal(t, []string{"a", "b", "c"}, SplitList(" a ,b,  c"))

	// Whitespace without a comma is not a separator.
	require.Equal(t, []string{"a b"}, SplitList("a b"))
}

// TestLayoutForClock verifies that only 24 selects the 24-hour layout and
// any other value, valid or not, silently falls back to 12-hour.
func TestLayoutForClock(t *testing.T) {
	t.Parallel()

	require.Equal(t, "15:04", LayoutForClock(24))
	require.Equal(t, "03:04 PM", LayoutForClock(12))
	require.Equal(t, "03:04 PM", LayoutForClock(0))
	require.Equal(t, "03:04 PM", LayoutForClock(13))
}

// TestBuild12Hour checks parsing of meridiem times projected onto the
// reference day with zeroed seconds.
func TestBuild12Hour(t *testing.T) {
	t.Parallel()

	now := at(10, 22).Add(37*time.Second + 512*time.Millisecond)
	definitions := map[string]Definition{
		"away": {Mode: "armed", Start: "09:00 AM", End: "05:00 PM"},
	}

	s, err := Build([]string{"away"}, definitions, 12, now)
	require.NoError(t, err)
	require.Len(t, s, 1)

	require.Equal(t, "armed", s[0].Mode)
	require.Equal(t, at(9, 0), s[0].Start)
	require.Equal(t, at(17, 0), s[0].End)
}

// TestBuild24Hour checks parsing in the 24-hour layout.
func TestBuild24Hour(t *testing.T) {
	t.Parallel()

	definitions := map[string]Definition{
		"night": {Mode: "armed", Start: "22:30", End: "23:45"},
	}

	s, err := Build([]string{"night"}, definitions, 24, day)
	require.NoError(t, err)
	require.Equal(t, at(22, 30), s[0].Start)
	require.Equal(t, at(23, 45), s[0].End)
}

// TestBuildMidnightRollover verifies that an end of exactly midnight is
// treated as end-of-day and pushed to the start of the next day, keeping
// Start < End.
func TestBuildMidnightRollover(t *testing.T) {
	t.Parallel()

	definitions := map[string]Definition{
		"evening": {Mode: "armed", Start: "18:00", End: "00:00"},
	}

	s, err := Build([]string{"evening"}, definitions, 24, day)
	require.NoError(t, err)

	require.Equal(t, at(18, 0), s[0].Start)
	require.Equal(t, at(0, 0).AddDate(0, 0, 1), s[0].End)
	require.True(t, s[0].End.After(s[0].Start))

	// The overnight entry is active both late evening and not after its end.
	require.True(t, s[0].Contains(at(23, 59)))
	require.False(t, s[0].Contains(at(0, 0).AddDate(0, 0, 1)))
}

// TestBuildPreservesDeclarationOrder ensures entries are appended in input
// order without sorting.
func TestBuildPreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	definitions := map[string]Definition{
		"late":  {Mode: "armed", Start: "06:00 PM", End: "11:00 PM"},
		"early": {Mode: "disarmed", Start: "08:00 AM", End: "12:00 PM"},
	}

	s, err := Build([]string{"late", "early"}, definitions, 12, day)
	require.NoError(t, err)
	require.Len(t, s, 2)
	require.Equal(t, "armed", s[0].Mode)
	require.Equal(t, "disarmed", s[1].Mode)
}

// TestBuildErrors checks that a missing definition or a bad time string
// aborts the build without returning a partial schedule.
func TestBuildErrors(t *testing.T) {
	t.Parallel()

	definitions := map[string]Definition{
		"away": {Mode: "armed", Start: "09:00 AM", End: "05:00 PM"},
		"bad":  {Mode: "armed", Start: "whenever", End: "05:00 PM"},
	}

	s, err := Build([]string{"missing"}, definitions, 12, day)
	require.Error(t, err)
	require.Nil(t, s)

	s, err = Build([]string{"away", "bad"}, definitions, 12, day)
	require.Error(t, err)
	require.Nil(t, s)
}
