package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Clock layouts for parsing time-of-day strings.
const (
	// layout12Hour parses values like "09:00 AM" and "05:30 PM".
	layout12Hour = "03:04 PM"
	// layout24Hour parses values like "09:00" and "17:30".
	layout24Hour = "15:04"

	// Clock24 is the only clock value that selects the 24-hour layout.
	Clock24 = 24
)

// Definition is the raw configuration of one named entry before parsing.
type Definition struct {
	// Mode is the expected camera mode while the entry is active.
	Mode string `yaml:"mode"`
	// Start is the time-of-day string for the beginning of the interval.
	Start string `yaml:"start"`
	// End is the time-of-day string for the end of the interval.
	End string `yaml:"end"`
}

// SplitList splits a configured list string on commas, trimming whitespace
// around each element. A value without a comma is a single-element list;
// a literal comma is the only separator signal, so a space-separated value
// stays one element. The same rule applies to entry names and recipients.
func SplitList(s string) []string {
	if !strings.Contains(s, ",") {
		return []string{s}
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		result = append(result, strings.TrimSpace(part))
	}

	return result
}

// LayoutForClock selects the parse layout for the whole schedule.
// Only 24 selects the 24-hour layout; every other value, including
// unrecognized ones, falls back to the 12-hour layout with meridiem.
func LayoutForClock(clock int) string {
	if clock == Clock24 {
		return layout24Hour
	}

	return layout12Hour
}

// Build parses the named definitions into a Schedule in declaration order.
//
// Each start/end time-of-day string is parsed in the layout selected by
// clock and projected onto now's calendar day with seconds and sub-seconds
// zeroed. An end that lands exactly on the start of the day is taken to
// mean end-of-day and is pushed one day forward, which keeps Start < End
// for intervals declared up to midnight. No sorting and no overlap or gap
// validation happens here; declaration order is preserved as-is.
//
// A missing definition or an unparsable time string aborts the build;
// no partial schedule is ever returned.
func Build(names []string, definitions map[string]Definition, clock int, now time.Time) (Schedule, error) {
	layout := LayoutForClock(clock)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	result := make(Schedule, 0, len(names))

	for _, name := range names {
		definition, ok := definitions[name]
		if !ok {
			return nil, fmt.Errorf("schedule entry %q has no definition", name)
		}

		start, err := parseOnDay(definition.Start, layout, now)
		if err != nil {
			return nil, fmt.Errorf("entry %q: parse start: %w", name, err)
		}

		end, err := parseOnDay(definition.End, layout, now)
		if err != nil {
			return nil, fmt.Errorf("entry %q: parse end: %w", name, err)
		}

		// An end of exactly midnight means the interval runs to the end
		// of the day, so it rolls over to the start of the next day.
		if end.Equal(startOfDay) {
			end = end.AddDate(0, 0, 1)
		}

		result = append(result, Entry{
			Mode:  definition.Mode,
			Start: start,
			End:   end,
		})
	}

	return result, nil
}

// parseOnDay parses a time-of-day string and projects it onto day's
// calendar date, zeroing seconds and sub-seconds.
func parseOnDay(value, layout string, day time.Time) (time.Time, error) {
	parsed, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q: %w", value, err)
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		day.Location(),
	), nil
}
