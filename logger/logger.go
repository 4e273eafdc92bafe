package logger

import (
	"os"
	"reflect"

	"go.uber.org/multierr"

	"github.com/BROOSWAJNE/terrier/ansi"
	"github.com/BROOSWAJNE/terrier/config"
	"github.com/BROOSWAJNE/terrier/core"
	"github.com/BROOSWAJNE/terrier/formatter"
	"github.com/BROOSWAJNE/terrier/handler"
)

// Logger writes leveled, colorized lines (immutable)
type Logger struct {
	policy  *policy
	context []string
}

// New creates a root Logger with an empty context
func New(cfg Config) *Logger {
	return &Logger{policy: cfg.resolve()}
}

// FromSettings creates a root Logger from declarative settings
func FromSettings(s config.Settings) (*Logger, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	levels, _ := s.LevelSet()
	level, _ := s.MinLevel()
	style, _ := s.TimeStyle()
	mode, _ := s.ColorMode()

	return NewBuilder().
		WithLevels(levels).
		WithLevel(level).
		WithTimeStyle(style).
		WithColor(mode).
		WithSeparator(s.SeparatorOr(DefaultSeparator)).
		Build(), nil
}

// FromFile creates a root Logger from a YAML settings file. TERRIER_*
// variables override the file.
func FromFile(path string) (*Logger, error) {
	s, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return FromSettings(s.Merge(config.FromEnv(os.LookupEnv)))
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	cfg Config
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.cfg.Level = level
	return b
}

// WithLevels sets the level profile
func (b *Builder) WithLevels(levels core.LevelSet) *Builder {
	b.cfg.Levels = &levels
	return b
}

// WithTimestamp sets the timestamp renderer
func (b *Builder) WithTimestamp(fn formatter.TimestampFunc) *Builder {
	b.cfg.Timestamp = fn
	return b
}

// WithTimeStyle sets the layout of the default timestamp
func (b *Builder) WithTimeStyle(style formatter.TimeStyle) *Builder {
	b.cfg.TimeStyle = style
	return b
}

// WithStringify sets the argument renderer
func (b *Builder) WithStringify(fn formatter.StringifyFunc) *Builder {
	b.cfg.Stringify = fn
	return b
}

// WithPrefix sets the severity prefix renderer
func (b *Builder) WithPrefix(fn formatter.PrefixFunc) *Builder {
	b.cfg.Prefix = fn
	return b
}

// WithStream sets the per-level sink selector
func (b *Builder) WithStream(fn handler.StreamFunc) *Builder {
	b.cfg.Stream = fn
	return b
}

// WithSink routes every level to s
func (b *Builder) WithSink(s handler.Sink) *Builder {
	b.cfg.Stream = handler.Fixed(s)
	return b
}

// WithSeparator sets the context separator; "" is honored
func (b *Builder) WithSeparator(sep string) *Builder {
	b.cfg.Separator = sep
	b.cfg.separatorSet = true
	return b
}

// WithColor sets the color mode of the default timestamp and prefix
func (b *Builder) WithColor(mode ansi.Mode) *Builder {
	b.cfg.Color = mode
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return New(b.cfg)
}

// Child creates a new Logger whose context is this logger's context
// followed by labels (immutable operation)
func (l *Logger) Child(labels ...string) *Logger {
	ctx := make([]string, len(l.context)+len(labels))
	copy(ctx, l.context)
	copy(ctx[len(l.context):], labels)

	return &Logger{
		policy:  l.policy,
		context: ctx,
	}
}

// Context returns a copy of the context labels
func (l *Logger) Context() []string {
	ctx := make([]string, len(l.context))
	copy(ctx, l.context)
	return ctx
}

// Level returns the minimum level
func (l *Logger) Level() core.Level {
	return l.policy.level
}

// Levels returns the level profile
func (l *Logger) Levels() core.LevelSet {
	return l.policy.levels
}

// Enabled reports whether a call at level would write a line. Use it to
// skip building expensive arguments.
func (l *Logger) Enabled(level core.Level) bool {
	return l.policy.enabled(level)
}

// Log writes args at level and returns the sink's write error.
// Levels below the minimum or outside the profile are ignored.
func (l *Logger) Log(level core.Level, args ...any) error {
	// Level check optimization - exit early BEFORE any formatting
	if !l.policy.enabled(level) {
		return nil
	}
	return l.log(level, args)
}

// log formats one line and performs exactly one write
func (l *Logger) log(level core.Level, args []any) error {
	p := l.policy
	sink := p.stream(level)

	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = p.stringify(arg)
	}

	line := formatter.Line{
		Prefix:    p.prefix(level),
		Context:   l.context,
		Separator: p.separator,
		Args:      parts,
	}
	line.Timestamp = p.timestamp()

	buf := formatter.GetBuffer()
	line.WriteTo(buf)
	_, err := sink.Write(buf.Bytes())
	formatter.PutBuffer(buf)
	return err
}

// Print logs at InfoLevel, the default entry point
func (l *Logger) Print(args ...any) {
	if !l.policy.enabled(core.InfoLevel) {
		return
	}
	_ = l.log(core.InfoLevel, args)
}

// Trace logs a trace message
func (l *Logger) Trace(args ...any) {
	if !l.policy.enabled(core.TraceLevel) {
		return
	}
	_ = l.log(core.TraceLevel, args)
}

// Debug logs a debug message
func (l *Logger) Debug(args ...any) {
	if !l.policy.enabled(core.DebugLevel) {
		return
	}
	_ = l.log(core.DebugLevel, args)
}

// Info logs an info message
func (l *Logger) Info(args ...any) {
	if !l.policy.enabled(core.InfoLevel) {
		return
	}
	_ = l.log(core.InfoLevel, args)
}

// Warn logs a warning message
func (l *Logger) Warn(args ...any) {
	if !l.policy.enabled(core.WarnLevel) {
		return
	}
	_ = l.log(core.WarnLevel, args)
}

// Error logs an error message
func (l *Logger) Error(args ...any) {
	if !l.policy.enabled(core.ErrorLevel) {
		return
	}
	_ = l.log(core.ErrorLevel, args)
}

// Fatal logs a fatal message. It does not exit the process.
func (l *Logger) Fatal(args ...any) {
	if !l.policy.enabled(core.FatalLevel) {
		return
	}
	_ = l.log(core.FatalLevel, args)
}

// Sync flushes the sink of every level in the profile
func (l *Logger) Sync() error {
	var err error
	var seen []handler.Sink
	for _, def := range l.policy.levels.Defs() {
		s := l.policy.stream(def.Level)
		if s == nil || containsSink(seen, s) {
			continue
		}
		seen = append(seen, s)
		err = multierr.Append(err, s.Sync())
	}
	return err
}

// containsSink compares sinks by identity when both values are
// comparable. A comparable wrapper type may still hold an uncomparable
// writer, so the check is on the value.
func containsSink(sinks []handler.Sink, s handler.Sink) bool {
	if !reflect.ValueOf(s).Comparable() {
		return false
	}
	for _, seen := range sinks {
		if reflect.TypeOf(seen) == reflect.TypeOf(s) && reflect.ValueOf(seen).Comparable() && seen == s {
			return true
		}
	}
	return false
}
