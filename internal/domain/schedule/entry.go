package schedule

import (
	"fmt"
	"time"
)

// Entry is one named interval of the day mapped to an expected camera mode.
// Entries are built once per run and never mutated afterwards.
type Entry struct {
	// Mode is the camera mode expected while this entry is active.
	Mode string
	// Start is the inclusive beginning of the interval on the current day.
	Start time.Time
	// End is the exclusive end of the interval. It lands on the following
	// day when the interval crosses midnight.
	End time.Time
}

// Contains reports whether t falls inside the entry's half-open interval,
// so an instant equal to End belongs to the next entry, not this one.
func (e Entry) Contains(t time.Time) bool {
	return !t.Before(e.Start) && t.Before(e.End)
}

// String returns a compact human-readable representation for logs.
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s - %s",
		e.Mode,
		e.Start.Format("15:04"),
		e.End.Format("Jan 2 15:04"))
}
