package core

import "github.com/davecgh/go-spew/spew"

// inspector renders arbitrary values without color on a single line.
// Pointers are followed, cycles are cut with "<shown>" and map keys are
// sorted so output is deterministic.
var inspector = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Inspect returns a one-line human readable representation of v.
// Large values are never wrapped, so each log call stays one line.
// Strings are returned unchanged; errors and fmt.Stringers use their
// own methods.
func Inspect(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return inspector.Sprint(v)
}
