package logger

import (
	"github.com/BROOSWAJNE/terrier/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// Level profiles
var (
	StandardLevels = core.StandardLevels
	ReducedLevels  = core.ReducedLevels
)

// ParseLevel converts a level name or tag of the standard profile to a Level
func ParseLevel(s string) (Level, error) {
	return core.StandardLevels.Parse(s)
}
