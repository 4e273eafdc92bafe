// Package core defines the shared types used across terrier.
//
// It provides the Level type for severity filtering and routing, the
// LevelSet type describing which levels a logger knows about, and
// Inspect, the colorless value renderer used wherever an arbitrary Go
// value has to become log text.
//
// Levels are plain integer ranks. Rank 0 is reserved so that a zero
// Level means "unset" in configuration structs. Two profiles ship with
// the package: StandardLevels (Trace through Fatal) and ReducedLevels
// (Debug through Error). Custom profiles are built with NewLevelSet and
// may use any non-zero rank and any names:
//
//	set, err := core.NewLevelSet(
//	    core.LevelDef{Level: core.DebugLevel, Name: "DEBUG", Tag: "DBG"},
//	    core.LevelDef{Level: core.WarnLevel, Name: "NOTICE", Tag: "NTC"},
//	    core.LevelDef{Level: core.ErrorLevel, Name: "ERROR", Tag: "ERR"},
//	)
//
// LevelSet values are immutable; every accessor that exposes internal
// state returns a copy.
package core
