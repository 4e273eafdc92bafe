package formatter

import (
	"bytes"
	"strings"
	"sync"

	"github.com/BROOSWAJNE/terrier/core"
)

// TimestampFunc renders the leading timestamp of a line, including any
// trailing space
type TimestampFunc func() string

// StringifyFunc turns one logged argument into text
type StringifyFunc func(v any) string

// PrefixFunc renders the severity prefix for a level, including any
// trailing space
type PrefixFunc func(level core.Level) string

// ArgSeparator joins the stringified arguments of one call
const ArgSeparator = " "

// Line holds the rendered parts of one log line
type Line struct {
	Timestamp string
	Prefix    string
	Context   []string
	Separator string
	Args      []string
}

// WriteTo appends the line to buf as
// timestamp + prefix + joined context + joined args + "\n"
func (l *Line) WriteTo(buf *bytes.Buffer) {
	buf.WriteString(l.Timestamp)
	buf.WriteString(l.Prefix)
	for i, segment := range l.Context {
		if i > 0 {
			buf.WriteString(l.Separator)
		}
		buf.WriteString(segment)
	}
	for i, arg := range l.Args {
		if i > 0 {
			buf.WriteString(ArgSeparator)
		}
		buf.WriteString(arg)
	}
	buf.WriteByte('\n')
}

// String renders the line without a pooled buffer
func (l *Line) String() string {
	var sb strings.Builder
	sb.WriteString(l.Timestamp)
	sb.WriteString(l.Prefix)
	sb.WriteString(strings.Join(l.Context, l.Separator))
	sb.WriteString(strings.Join(l.Args, ArgSeparator))
	sb.WriteByte('\n')
	return sb.String()
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the pool
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
