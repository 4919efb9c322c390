// Package mode compares the camera mode the schedule expects against the
// mode observed from the camera service. Comparison is case-insensitive,
// but original casing is kept for notification content.
package mode

import "strings"

// Comparison is the outcome of checking an observed mode against the
// expected one. Expected and Observed keep their original casing.
type Comparison struct {
	// Expected is the mode the active schedule entry calls for.
	Expected string
	// Observed is the mode reported by the camera service.
	Observed string
	// Matches is true when the two are equal ignoring case.
	Matches bool
}

// Compare checks observed against expected ignoring case. Pure function,
// no state and no side effects.
func Compare(expected, observed string) Comparison {
	return Comparison{
		Expected: expected,
		Observed: observed,
		Matches:  strings.EqualFold(expected, observed),
	}
}
