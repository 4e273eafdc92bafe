package formatter

import "github.com/BROOSWAJNE/terrier/core"

// Stringify is the default StringifyFunc. Strings pass through; other
// values are inspected without color so structured data never carries
// escape sequences of its own.
func Stringify(v any) string {
	return core.Inspect(v)
}
