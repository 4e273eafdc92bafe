package ansi

// Palette groups the colors terrier uses. Every color in a palette
// shares the same enabled flag.
type Palette struct {
	Bold      Color
	Dim       Color
	Italic    Color
	Underline Color

	Black   Color
	Red     Color
	Green   Color
	Yellow  Color
	Blue    Color
	Magenta Color
	Cyan    Color
	White   Color

	BgRed Color

	enabled bool
}

// NewPalette builds the standard palette with color emission on or off
func NewPalette(enabled bool) Palette {
	return Palette{
		Bold:      New(CodeBold, CodeResetIntensity).Enable(enabled),
		Dim:       New(CodeDim, CodeResetIntensity).Enable(enabled),
		Italic:    New(CodeItalic, CodeResetItalic).Enable(enabled),
		Underline: New(CodeUnderline, CodeResetUnderline).Enable(enabled),

		Black:   New(CodeBlack, CodeResetColor).Enable(enabled),
		Red:     New(CodeRed, CodeResetColor).Enable(enabled),
		Green:   New(CodeGreen, CodeResetColor).Enable(enabled),
		Yellow:  New(CodeYellow, CodeResetColor).Enable(enabled),
		Blue:    New(CodeBlue, CodeResetColor).Enable(enabled),
		Magenta: New(CodeMagenta, CodeResetColor).Enable(enabled),
		Cyan:    New(CodeCyan, CodeResetColor).Enable(enabled),
		White:   New(CodeWhite, CodeResetColor).Enable(enabled),

		BgRed: New(CodeBgRed).Enable(enabled),

		enabled: enabled,
	}
}

// DefaultPalette returns the palette for the process-wide color decision
func DefaultPalette() Palette {
	return NewPalette(Enabled())
}

// Enabled reports whether the palette emits escape sequences
func (p Palette) Enabled() bool {
	return p.enabled
}

// Color returns a color for an arbitrary code that follows the
// palette's enabled flag
func (p Palette) Color(code Code, reset ...Code) Color {
	return New(code, reset...).Enable(p.enabled)
}
