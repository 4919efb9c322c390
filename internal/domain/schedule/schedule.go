package schedule

import (
	"errors"
	"time"
)

// Schedule is an ordered sequence of entries. Order is declaration order
// from configuration, not chronological order. Overlapping intervals and
// duplicate modes are legal.
type Schedule []Entry

// ErrNoActiveEntry is returned when no entry's interval contains the
// reference instant. Callers must treat this as fatal: the expected mode
// cannot be determined and guessing a default would defeat the check.
var ErrNoActiveEntry = errors.New("no active schedule entry")

// ActiveAt returns the entry whose interval contains now.
//
// The whole schedule is scanned and the candidate keeps being overwritten,
// so when intervals overlap the last declared match wins: a narrow entry
// declared after a wide one shadows it for the overlapping span.
func (s Schedule) ActiveAt(now time.Time) (Entry, error) {
	var (
		found Entry
		ok    bool
	)

	for _, entry := range s {
		if entry.Contains(now) {
			found = entry
			ok = true
		}
	}

	if !ok {
		return Entry{}, ErrNoActiveEntry
	}

	return found, nil
}
