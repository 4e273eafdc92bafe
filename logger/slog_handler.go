package logger

import (
	"context"
	"log/slog"

	"github.com/BROOSWAJNE/terrier/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger. Each record becomes one log call whose arguments are the
// message followed by key=value pairs.
type SlogHandler struct {
	logger *Logger
	attrs  []string
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter writing through l
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle writes the record through the wrapped Logger
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	args := make([]any, 0, 1+len(s.attrs)+record.NumAttrs())
	args = append(args, record.Message)
	for _, a := range s.attrs {
		args = append(args, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		for _, kv := range s.render(s.group, a) {
			args = append(args, kv)
		}
		return true
	})
	return s.logger.Log(slogLevelToCore(record.Level), args...)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]string, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, s.render(s.group, a)...)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler whose later attribute keys are
// qualified by name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]string, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  newGroup,
	}
}

// render flattens a into key=value strings, prepending the group prefix
func (s *SlogHandler) render(group string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return nil
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		var out []string
		for _, member := range a.Value.Group() {
			out = append(out, s.render(key, member)...)
		}
		return out
	}

	var value string
	if a.Value.Kind() == slog.KindString {
		value = a.Value.String()
	} else {
		value = s.logger.policy.stringify(a.Value.Any())
	}
	return []string{key + "=" + value}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
