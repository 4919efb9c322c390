// Package schedule models the expected-mode timetable: named time-of-day
// intervals parsed from configuration and resolved against the current
// instant. Intervals are projected onto the current calendar day, with a
// midnight end rolling over to the following day.
package schedule
