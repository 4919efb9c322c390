package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// day is a fixed reference date used by all schedule tests.
var day = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

// at returns the reference date at the given hour and minute.
func at(hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// TestEntryContains verifies half-open interval containment:
// the start instant belongs to the entry, the end instant does not.
func TestEntryContains(t *testing.T) {
	t.Parallel()

	entry := Entry{
		Mode:  "armed",
		Start: at(9, 0),
		End:   at(17, 0),
	}

	require.True(t, entry.Contains(at(9, 0)))
	require.True(t, entry.Contains(at(12, 30)))
	require.True(t, entry.Contains(at(16, 59)))
	require.False(t, entry.Contains(at(17, 0)))
	require.False(t, entry.Contains(at(8, 59)))
}

// TestActiveAtSingleEntry checks that an instant strictly inside a
// single-entry schedule resolves to that entry.
func TestActiveAtSingleEntry(t *testing.T) {
	t.Parallel()

	s := Schedule{
		{Mode: "armed", Start: at(9, 0), End: at(17, 0)},
	}

	entry, err := s.ActiveAt(at(10, 0))
	require.NoError(t, err)
	require.Equal(t, "armed", entry.Mode)
}

// TestActiveAtEndBoundary asserts that an instant equal to an entry's end
// is not resolved to that entry.
func TestActiveAtEndBoundary(t *testing.T) {
	t.Parallel()

	s := Schedule{
		{Mode: "armed", Start: at(9, 0), End: at(17, 0)},
	}

	_, err := s.ActiveAt(at(17, 0))
	require.ErrorIs(t, err, ErrNoActiveEntry)
}

// TestActiveAtOverlapLastWins checks the declaration-order tie-break:
// when two entries overlap, the later declared one shadows the earlier.
func TestActiveAtOverlapLastWins(t *testing.T) {
	t.Parallel()

	s := Schedule{
		{Mode: "x", Start: at(9, 0), End: at(17, 0)},
		{Mode: "y", Start: at(12, 0), End: at(13, 0)},
	}

	entry, err := s.ActiveAt(at(12, 30))
	require.NoError(t, err)
	require.Equal(t, "y", entry.Mode)

	// Outside the narrow entry the wide one is active again.
	entry, err = s.ActiveAt(at(14, 0))
	require.NoError(t, err)
	require.Equal(t, "x", entry.Mode)
}

// TestActiveAtGap verifies that an instant falling between entries fails
// with ErrNoActiveEntry instead of picking a nearest entry.
func TestActiveAtGap(t *testing.T) {
	t.Parallel()

	s := Schedule{
		{Mode: "armed", Start: at(8, 0), End: at(12, 0)},
		{Mode: "disarmed", Start: at(13, 0), End: at(18, 0)},
	}

	_, err := s.ActiveAt(at(12, 30))
	require.ErrorIs(t, err, ErrNoActiveEntry)
}

// TestActiveAtEmptySchedule ensures an empty schedule never resolves.
func TestActiveAtEmptySchedule(t *testing.T) {
	t.Parallel()

	_, err := Schedule{}.ActiveAt(at(12, 0))
	require.ErrorIs(t, err, ErrNoActiveEntry)
}
