package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BROOSWAJNE/terrier/ansi"
	"github.com/BROOSWAJNE/terrier/core"
	"github.com/BROOSWAJNE/terrier/formatter"
)

// ErrInvalidSettings wraps every validation failure
var ErrInvalidSettings = errors.New("invalid logger settings")

// Environment variables read by FromEnv
const (
	EnvLevel   = "TERRIER_LEVEL"
	EnvProfile = "TERRIER_PROFILE"
	EnvTime    = formatter.EnvVar
	EnvColor   = "TERRIER_COLOR"
)

// Profile names
const (
	ProfileStandard = "standard"
	ProfileReduced  = "reduced"
)

// Time style names
const (
	TimeLocal      = "local"
	TimeProduction = "production"
)

// Settings is the declarative form of a logger configuration.
// Empty fields mean "use the default".
type Settings struct {
	// Level is the minimum level name, e.g. "info" or "WRN"
	Level string `json:"level" yaml:"level"`
	// Profile selects the level set: "standard" (trace..fatal) or "reduced" (debug..error)
	Profile string `json:"profile" yaml:"profile"`
	// Separator joins context labels; nil keeps the default single space
	Separator *string `json:"separator" yaml:"separator"`
	// Time is "production", "local", or empty for the TERRIER_ENV decision
	Time string `json:"time" yaml:"time"`
	// Color is "auto", "always" or "never"
	Color string `json:"color" yaml:"color"`
}

// Parse decodes YAML settings. Unknown keys are rejected.
func Parse(data []byte) (Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads and parses a YAML settings file
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// FromEnv builds settings from TERRIER_* variables
func FromEnv(lookup ansi.LookupFunc) Settings {
	var s Settings
	if v, ok := lookup(EnvLevel); ok {
		s.Level = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvProfile); ok {
		s.Profile = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTime); ok && strings.TrimSpace(v) == TimeProduction {
		s.Time = TimeProduction
	}
	if v, ok := lookup(EnvColor); ok {
		s.Color = strings.TrimSpace(v)
	}
	return s
}

// Merge returns s with every non-empty field of over applied on top
func (s Settings) Merge(over Settings) Settings {
	if over.Level != "" {
		s.Level = over.Level
	}
	if over.Profile != "" {
		s.Profile = over.Profile
	}
	if over.Separator != nil {
		sep := *over.Separator
		s.Separator = &sep
	}
	if over.Time != "" {
		s.Time = over.Time
	}
	if over.Color != "" {
		s.Color = over.Color
	}
	return s
}

// Validate checks every field without building anything
func (s Settings) Validate() error {
	if _, err := s.LevelSet(); err != nil {
		return err
	}
	if _, err := s.MinLevel(); err != nil {
		return err
	}
	if _, err := s.TimeStyle(); err != nil {
		return err
	}
	if _, err := s.ColorMode(); err != nil {
		return err
	}
	return nil
}

// LevelSet returns the level set named by Profile
func (s Settings) LevelSet() (core.LevelSet, error) {
	switch strings.ToLower(s.Profile) {
	case "", ProfileStandard:
		return core.StandardLevels, nil
	case ProfileReduced:
		return core.ReducedLevels, nil
	default:
		return core.LevelSet{}, fmt.Errorf("%w: unknown profile %q", ErrInvalidSettings, s.Profile)
	}
}

// MinLevel parses Level against the profile's level set. An empty
// Level returns 0, meaning "no filtering".
func (s Settings) MinLevel() (core.Level, error) {
	if s.Level == "" {
		return 0, nil
	}
	set, err := s.LevelSet()
	if err != nil {
		return 0, err
	}
	lvl, err := set.Parse(s.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return lvl, nil
}

// TimeStyle maps Time to a formatter.TimeStyle
func (s Settings) TimeStyle() (formatter.TimeStyle, error) {
	switch strings.ToLower(s.Time) {
	case "":
		return formatter.TimeFromEnv, nil
	case TimeLocal:
		return formatter.TimeLocal, nil
	case TimeProduction:
		return formatter.TimeProduction, nil
	default:
		return formatter.TimeFromEnv, fmt.Errorf("%w: unknown time style %q", ErrInvalidSettings, s.Time)
	}
}

// ColorMode maps Color to an ansi.Mode
func (s Settings) ColorMode() (ansi.Mode, error) {
	m, err := ansi.ParseMode(s.Color)
	if err != nil {
		return ansi.Auto, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return m, nil
}

// SeparatorOr returns the configured separator or def
func (s Settings) SeparatorOr(def string) string {
	if s.Separator == nil {
		return def
	}
	return *s.Separator
}
