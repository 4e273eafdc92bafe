package ansi

import (
	"strings"

	"github.com/BROOSWAJNE/terrier/core"
)

// Escape is the control sequence introducer every code is wrapped in
const Escape = "\x1b["

// Code is an SGR parameter such as "1" (bold) or "38;5;208"
type Code string

// Standard codes
const (
	CodeResetAll       Code = "0"
	CodeResetIntensity Code = "22"
	CodeResetItalic    Code = "23"
	CodeResetUnderline Code = "24"
	CodeResetColor     Code = "39"
	CodeResetBg        Code = "49"

	CodeBold      Code = "1"
	CodeDim       Code = "2"
	CodeItalic    Code = "3"
	CodeUnderline Code = "4"

	CodeBlack   Code = "30"
	CodeRed     Code = "31"
	CodeGreen   Code = "32"
	CodeYellow  Code = "33"
	CodeBlue    Code = "34"
	CodeMagenta Code = "35"
	CodeCyan    Code = "36"
	CodeWhite   Code = "37"

	CodeBgRed Code = "41"
)

// Sequence returns the escape sequence for c
func (c Code) Sequence() string {
	return Escape + string(c) + "m"
}

// Color wraps text in an open and a close escape sequence.
// The zero value is a disabled color that only joins its arguments.
type Color struct {
	open    string
	close   string
	enabled bool
}

// New creates an enabled Color for code. The reset code defaults to
// CodeResetAll; only the first reset argument is used.
func New(code Code, reset ...Code) Color {
	r := CodeResetAll
	if len(reset) > 0 {
		r = reset[0]
	}
	return Color{
		open:    code.Sequence(),
		close:   r.Sequence(),
		enabled: true,
	}
}

// Enable returns a copy of c with escape emission switched on or off
func (c Color) Enable(on bool) Color {
	c.enabled = on && c.open != ""
	return c
}

// Enabled reports whether c emits escape sequences
func (c Color) Enabled() bool {
	return c.enabled
}

// Sprint renders args joined by a single space and wraps the result.
// Any close sequence inside the body is followed by the open sequence
// again, so nested colors do not end the outer one early.
func (c Color) Sprint(args ...any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = core.Inspect(arg)
	}
	body := strings.Join(parts, " ")
	if !c.enabled {
		return body
	}
	body = strings.ReplaceAll(body, c.close, c.close+c.open)
	return c.open + body + c.close
}

// String returns the open sequence, or "" when c is disabled
func (c Color) String() string {
	if !c.enabled {
		return ""
	}
	return c.open
}

// Close returns the close sequence, or "" when c is disabled
func (c Color) Close() string {
	if !c.enabled {
		return ""
	}
	return c.close
}
