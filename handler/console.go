package handler

import (
	"github.com/fatih/color"

	"github.com/BROOSWAJNE/terrier/core"
)

// Process-wide console sinks. On Windows they translate escape
// sequences into console calls; elsewhere they are os.Stdout and
// os.Stderr. They are never locked: concurrent writers interleave at
// whole-line granularity.
var (
	Stdout Sink = AddSync(color.Output)
	Stderr Sink = AddSync(color.Error)
)

// DefaultStream sends levels above Warn (Error, Fatal) to Stderr and
// everything else to Stdout
func DefaultStream(level core.Level) Sink {
	if level > core.WarnLevel {
		return Stderr
	}
	return Stdout
}

// Split returns a StreamFunc sending levels above threshold to high
// and the rest to low
func Split(threshold core.Level, low, high Sink) StreamFunc {
	return func(level core.Level) Sink {
		if level > threshold {
			return high
		}
		return low
	}
}

// Fixed returns a StreamFunc sending every level to s
func Fixed(s Sink) StreamFunc {
	return func(core.Level) Sink {
		return s
	}
}
