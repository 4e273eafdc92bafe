package handler

import (
	"io"

	"go.uber.org/zap/zapcore"

	"github.com/BROOSWAJNE/terrier/core"
)

// Sink is an output destination for formatted lines. Every log call
// that passes the level filter performs exactly one Write on its sink.
type Sink = zapcore.WriteSyncer

// StreamFunc selects the sink a level is written to
type StreamFunc func(level core.Level) Sink

// AddSync adapts an io.Writer into a Sink. Writers that already
// implement Sync keep it; others get a no-op Sync.
func AddSync(w io.Writer) Sink {
	return zapcore.AddSync(w)
}
