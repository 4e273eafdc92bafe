package ansi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ErrUnknownMode is returned by ParseMode for unrecognized values
var ErrUnknownMode = errors.New("unknown color mode")

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Detect decides whether colors should be emitted for the terminal
// behind fd. NO_COLOR being present (even empty) or TERM=dumb disables
// colors, as does a non-terminal fd.
func Detect(lookup LookupFunc, fd uintptr) bool {
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if term, _ := lookup("TERM"); term == "dumb" {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var enabled = sync.OnceValue(func() bool {
	return Detect(os.LookupEnv, os.Stdout.Fd())
})

// Enabled returns the process-wide color decision. It is computed from
// the environment and stdout on first use and never changes afterwards.
func Enabled() bool {
	return enabled()
}

// Mode selects how a logger decides on colors
type Mode int

const (
	// Auto follows Enabled
	Auto Mode = iota
	// Always emits escape sequences regardless of the environment
	Always
	// Never emits plain text
	Never
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "unknown"
	}
}

// ParseMode converts "auto", "always" or "never" to a Mode.
// The empty string is Auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "always", "on", "true":
		return Always, nil
	case "never", "off", "false":
		return Never, nil
	default:
		return Auto, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Palette returns the palette selected by the mode
func (m Mode) Palette() Palette {
	switch m {
	case Always:
		return NewPalette(true)
	case Never:
		return NewPalette(false)
	default:
		return DefaultPalette()
	}
}

// Strip removes CSI escape sequences ("\x1b[" ... final letter) from s.
// An ESC that does not start a CSI sequence is kept together with the
// text after it.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	var buf bytes.Buffer
	buf.Grow(len(s))
	w := colorable.NewNonColorable(&buf)
	for {
		i := loneEscape(s)
		if i < 0 {
			break
		}
		_, _ = w.Write([]byte(s[:i]))
		buf.WriteByte('\x1b')
		s = s[i+1:]
	}
	_, _ = w.Write([]byte(s))
	return buf.String()
}

// loneEscape returns the index of the first ESC in s that is not
// followed by '[', or -1
func loneEscape(s string) int {
	off := 0
	for {
		i := strings.IndexByte(s[off:], '\x1b')
		if i < 0 {
			return -1
		}
		i += off
		if i+1 >= len(s) || s[i+1] != '[' {
			return i
		}
		off = i + 1
	}
}
