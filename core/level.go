package core

import "strconv"

// Level represents the severity rank of a log call
type Level int8

const (
	// TraceLevel for very fine grained diagnostics
	TraceLevel Level = iota + 1
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default entry point)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages, routed to stderr by default
	ErrorLevel
	// FatalLevel for fatal messages, routed to stderr by default.
	// Logging at FatalLevel never exits the process.
	FatalLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}

// IsSet reports whether l is a real rank rather than the zero value
func (l Level) IsSet() bool {
	return l != 0
}
