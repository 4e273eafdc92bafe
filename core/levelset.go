package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownLevel is returned when a level name is not part of a LevelSet
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrInvalidLevelSet is returned by NewLevelSet for malformed definitions
	ErrInvalidLevelSet = errors.New("invalid level set")
)

// LevelDef describes one member of a LevelSet
type LevelDef struct {
	// Level is the rank used for filtering and routing. Must not be zero.
	Level Level
	// Name is the long upper-case name, e.g. "INFO"
	Name string
	// Tag is the short prefix tag, e.g. "INF"
	Tag string
}

// LevelSet is an immutable, ordered set of levels a logger understands
type LevelSet struct {
	defs []LevelDef // sorted by ascending rank
}

// StandardLevels is the six level profile Trace < Debug < Info < Warn < Error < Fatal
var StandardLevels = MustLevelSet(
	LevelDef{Level: TraceLevel, Name: "TRACE", Tag: "TRC"},
	LevelDef{Level: DebugLevel, Name: "DEBUG", Tag: "DBG"},
	LevelDef{Level: InfoLevel, Name: "INFO", Tag: "INF"},
	LevelDef{Level: WarnLevel, Name: "WARN", Tag: "WRN"},
	LevelDef{Level: ErrorLevel, Name: "ERROR", Tag: "ERR"},
	LevelDef{Level: FatalLevel, Name: "FATAL", Tag: "FTL"},
)

// ReducedLevels is the four level profile Debug < Info < Warn < Error
var ReducedLevels = MustLevelSet(
	LevelDef{Level: DebugLevel, Name: "DEBUG", Tag: "DBG"},
	LevelDef{Level: InfoLevel, Name: "INFO", Tag: "INF"},
	LevelDef{Level: WarnLevel, Name: "WARN", Tag: "WRN"},
	LevelDef{Level: ErrorLevel, Name: "ERROR", Tag: "ERR"},
)

// aliases accepted by Parse for built-in levels
var aliases = map[string]Level{
	"WARNING": WarnLevel,
	"ERR":     ErrorLevel,
}

// NewLevelSet builds a LevelSet from the given definitions.
// Definitions are sorted by rank; rank 0, duplicate ranks and duplicate
// names are rejected.
func NewLevelSet(defs ...LevelDef) (LevelSet, error) {
	if len(defs) == 0 {
		return LevelSet{}, fmt.Errorf("%w: no levels defined", ErrInvalidLevelSet)
	}

	sorted := make([]LevelDef, len(defs))
	copy(sorted, defs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level < sorted[j].Level
	})

	names := make(map[string]struct{}, len(sorted))
	for i, def := range sorted {
		if !def.Level.IsSet() {
			return LevelSet{}, fmt.Errorf("%w: level %q has reserved rank 0", ErrInvalidLevelSet, def.Name)
		}
		if def.Name == "" {
			return LevelSet{}, fmt.Errorf("%w: rank %d has no name", ErrInvalidLevelSet, def.Level)
		}
		if i > 0 && sorted[i-1].Level == def.Level {
			return LevelSet{}, fmt.Errorf("%w: duplicate rank %d", ErrInvalidLevelSet, def.Level)
		}
		key := strings.ToUpper(def.Name)
		if _, dup := names[key]; dup {
			return LevelSet{}, fmt.Errorf("%w: duplicate name %q", ErrInvalidLevelSet, def.Name)
		}
		names[key] = struct{}{}
	}

	return LevelSet{defs: sorted}, nil
}

// MustLevelSet is like NewLevelSet but panics on error
func MustLevelSet(defs ...LevelDef) LevelSet {
	s, err := NewLevelSet(defs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of levels in the set
func (s LevelSet) Len() int {
	return len(s.defs)
}

// Lowest returns the lowest ranked level, or 0 for an empty set
func (s LevelSet) Lowest() Level {
	if len(s.defs) == 0 {
		return 0
	}
	return s.defs[0].Level
}

// Contains reports whether l is a member of the set
func (s LevelSet) Contains(l Level) bool {
	_, ok := s.Lookup(l)
	return ok
}

// Lookup returns the definition for l
func (s LevelSet) Lookup(l Level) (LevelDef, bool) {
	for _, def := range s.defs {
		if def.Level == l {
			return def, true
		}
	}
	return LevelDef{}, false
}

// Defs returns a copy of the definitions in ascending rank order
func (s LevelSet) Defs() []LevelDef {
	out := make([]LevelDef, len(s.defs))
	copy(out, s.defs)
	return out
}

// Parse converts a level name or tag to a Level of this set.
// Matching is case-insensitive.
func (s LevelSet) Parse(name string) (Level, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for _, def := range s.defs {
		if strings.ToUpper(def.Name) == key || (def.Tag != "" && strings.ToUpper(def.Tag) == key) {
			return def.Level, nil
		}
	}
	if l, ok := aliases[key]; ok && s.Contains(l) {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
