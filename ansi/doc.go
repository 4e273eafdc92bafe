// Package ansi wraps text in ANSI SGR escape sequences.
//
// A Color is built from an open Code and a reset Code:
//
//	warn := ansi.New(ansi.CodeYellow, ansi.CodeResetColor)
//	fmt.Println(warn.Sprint("careful:", 42))
//
// Sprint re-opens the color after every embedded reset of the same
// kind, so nesting one color inside another does not drop the outer
// color for the rest of the text.
//
// Whether escapes are emitted at all is a single decision made once per
// process by Enabled (NO_COLOR, TERM=dumb and a tty check on stdout).
// Colors and palettes carry that decision as a plain flag, so tests and
// callers can build enabled or disabled palettes explicitly with
// NewPalette instead of depending on the environment.
package ansi
