package formatter

import (
	"os"
	"sync"
	"time"

	"github.com/BROOSWAJNE/terrier/ansi"
)

// EnvVar selects the timestamp style; "production" switches to
// sortable UTC timestamps
const EnvVar = "TERRIER_ENV"

const (
	// ProductionLayout is a sortable UTC date-time with milliseconds
	ProductionLayout = "2006-01-02T15:04:05.000Z07:00"
	// LocalLayout is a short local time of day
	LocalLayout = "15:04:05"
)

// TimeStyle selects how timestamps are rendered
type TimeStyle int

const (
	// TimeFromEnv resolves to TimeProduction or TimeLocal from TERRIER_ENV
	TimeFromEnv TimeStyle = iota
	// TimeLocal renders LocalLayout in the local zone
	TimeLocal
	// TimeProduction renders ProductionLayout in UTC
	TimeProduction
)

// String returns the string representation of the style
func (s TimeStyle) String() string {
	switch s {
	case TimeFromEnv:
		return "env"
	case TimeLocal:
		return "local"
	case TimeProduction:
		return "production"
	default:
		return "unknown"
	}
}

// TimeStyleFromEnv returns TimeProduction when TERRIER_ENV is
// "production", TimeLocal otherwise
func TimeStyleFromEnv(lookup ansi.LookupFunc) TimeStyle {
	if v, _ := lookup(EnvVar); v == "production" {
		return TimeProduction
	}
	return TimeLocal
}

var envStyle = sync.OnceValue(func() TimeStyle {
	return TimeStyleFromEnv(os.LookupEnv)
})

// Resolve replaces TimeFromEnv with the style read from the environment.
// The environment is read once per process.
func (s TimeStyle) Resolve() TimeStyle {
	if s == TimeFromEnv {
		return envStyle()
	}
	return s
}

// NewTimestamp returns a TimestampFunc for style using the wall clock
func NewTimestamp(style TimeStyle, p ansi.Palette) TimestampFunc {
	return NewTimestampAt(style, p, time.Now)
}

// NewTimestampAt is like NewTimestamp with an injectable clock.
// The rendered time and its trailing space are dimmed.
func NewTimestampAt(style TimeStyle, p ansi.Palette, now func() time.Time) TimestampFunc {
	dim := p.Dim
	if style.Resolve() == TimeProduction {
		return func() string {
			return dim.Sprint(now().UTC().Format(ProductionLayout) + " ")
		}
	}
	return func() string {
		return dim.Sprint(now().Format(LocalLayout) + " ")
	}
}

var defaultTimestamp = sync.OnceValue(func() TimestampFunc {
	return NewTimestamp(TimeFromEnv, ansi.DefaultPalette())
})

// DefaultTimestamp renders the current time with the environment's
// style and the process-wide color decision
func DefaultTimestamp() string {
	return defaultTimestamp()()
}
