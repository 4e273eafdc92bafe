package logger

import (
	"github.com/BROOSWAJNE/terrier/ansi"
	"github.com/BROOSWAJNE/terrier/core"
	"github.com/BROOSWAJNE/terrier/formatter"
	"github.com/BROOSWAJNE/terrier/handler"
)

// DefaultSeparator joins context labels when no separator is configured
const DefaultSeparator = " "

// Config holds the policies a Logger is built from. Every field is
// optional; a zero field falls back to its default.
type Config struct {
	// Level is the minimum level written (default: lowest level of Levels)
	Level core.Level
	// Levels is the level profile (default: core.StandardLevels)
	Levels *core.LevelSet
	// Timestamp renders the line timestamp (default: dimmed, style from TimeStyle)
	Timestamp formatter.TimestampFunc
	// TimeStyle picks the default timestamp layout (default: from TERRIER_ENV)
	TimeStyle formatter.TimeStyle
	// Stringify renders one argument (default: formatter.Stringify)
	Stringify formatter.StringifyFunc
	// Prefix renders the severity prefix (default: colored three letter tag)
	Prefix formatter.PrefixFunc
	// Stream selects the sink per level (default: handler.DefaultStream)
	Stream handler.StreamFunc
	// Separator joins context labels (default: DefaultSeparator).
	// Use Builder.WithSeparator("") for no separator at all.
	Separator string
	// Color decides on escape sequences for the default timestamp and
	// prefix (default: ansi.Auto)
	Color ansi.Mode

	separatorSet bool
}

// policy is the resolved, read-only configuration shared by a root
// Logger and all of its children
type policy struct {
	level     core.Level
	levels    core.LevelSet
	known     [256]bool // indexed by uint8(level)
	timestamp formatter.TimestampFunc
	stringify formatter.StringifyFunc
	prefix    formatter.PrefixFunc
	stream    handler.StreamFunc
	separator string
}

// resolve fills every zero field with its default
func (c Config) resolve() *policy {
	p := &policy{
		level:     c.Level,
		levels:    core.StandardLevels,
		timestamp: c.Timestamp,
		stringify: c.Stringify,
		prefix:    c.Prefix,
		stream:    c.Stream,
		separator: c.Separator,
	}

	if c.Levels != nil && c.Levels.Len() > 0 {
		p.levels = *c.Levels
	}
	if !p.level.IsSet() {
		p.level = p.levels.Lowest()
	}
	for _, def := range p.levels.Defs() {
		p.known[uint8(def.Level)] = true
	}

	if p.timestamp == nil || p.prefix == nil {
		palette := c.Color.Palette()
		if p.timestamp == nil {
			p.timestamp = formatter.NewTimestamp(c.TimeStyle, palette)
		}
		if p.prefix == nil {
			p.prefix = formatter.NewPrefix(palette, p.levels)
		}
	}
	if p.stringify == nil {
		p.stringify = formatter.Stringify
	}
	if p.stream == nil {
		p.stream = handler.DefaultStream
	}
	if p.separator == "" && !c.separatorSet {
		p.separator = DefaultSeparator
	}

	return p
}

// enabled reports whether a call at level passes the filter
func (p *policy) enabled(level core.Level) bool {
	return level >= p.level && p.known[uint8(level)]
}
