package formatter

import (
	"sync"

	"github.com/BROOSWAJNE/terrier/ansi"
	"github.com/BROOSWAJNE/terrier/core"
)

// styles maps built-in levels to their tag decoration, from plain/dim
// for low severities to bold on red for Fatal
var styles = map[core.Level]func(p ansi.Palette, tag string) string{
	core.TraceLevel: func(p ansi.Palette, tag string) string { return p.Dim.Sprint(tag) },
	core.DebugLevel: func(p ansi.Palette, tag string) string { return p.Magenta.Sprint(tag) },
	core.InfoLevel:  func(p ansi.Palette, tag string) string { return p.Cyan.Sprint(tag) },
	core.WarnLevel:  func(p ansi.Palette, tag string) string { return p.Bold.Sprint(p.Yellow.Sprint(tag)) },
	core.ErrorLevel: func(p ansi.Palette, tag string) string { return p.Bold.Sprint(p.Red.Sprint(tag)) },
	core.FatalLevel: func(p ansi.Palette, tag string) string { return p.Bold.Sprint(p.BgRed.Sprint(tag)) },
}

// NewPrefix returns a PrefixFunc with every prefix of levels rendered up
// front. Levels without a built-in style use their plain tag (or name);
// levels outside the set render Level.String().
func NewPrefix(p ansi.Palette, levels core.LevelSet) PrefixFunc {
	prefixes := make(map[core.Level]string, levels.Len())
	for _, def := range levels.Defs() {
		tag := def.Tag
		if tag == "" {
			tag = def.Name
		}
		if style, ok := styles[def.Level]; ok {
			prefixes[def.Level] = style(p, tag) + " "
		} else {
			prefixes[def.Level] = tag + " "
		}
	}
	return func(level core.Level) string {
		if s, ok := prefixes[level]; ok {
			return s
		}
		return level.String() + " "
	}
}

var defaultPrefix = sync.OnceValue(func() PrefixFunc {
	return NewPrefix(ansi.DefaultPalette(), core.StandardLevels)
})

// DefaultPrefix renders the standard prefix for level with the
// process-wide color decision
func DefaultPrefix(level core.Level) string {
	return defaultPrefix()(level)
}
