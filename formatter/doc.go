// Package formatter holds the default policies that turn one log call
// into text: the timestamp, the per-argument stringifier and the
// severity prefix.
//
// Each policy is a plain function type (TimestampFunc, StringifyFunc,
// PrefixFunc) so callers can replace any one of them independently.
// The constructors take an ansi.Palette instead of consulting the
// environment, which keeps them deterministic in tests; the Default*
// functions bind the process-wide color decision.
//
// Prefixes are rendered once per level set when NewPrefix is called, so
// the hot path is a single map lookup. Line assembles the rendered parts
// into one newline-terminated line inside a pooled bytes.Buffer.
// Buffers larger than 64 KiB are not returned to the pool.
package formatter
