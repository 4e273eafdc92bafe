// Package handler provides the sinks log lines are written to and the
// StreamFunc policies that route each level to a sink.
//
// A Sink is a zapcore.WriteSyncer: an io.Writer that can also be
// flushed. Any io.Writer becomes a Sink through AddSync. The logger
// performs exactly one Write per passing log call and never locks a
// sink, so concurrent writers interleave at line granularity.
//
// Built-in sinks and routes:
//
//   - Stdout and Stderr wrap the process streams (colorable on Windows).
//   - DefaultStream sends Error and Fatal to Stderr, everything else to Stdout.
//   - Split and Fixed build custom routes.
//   - MultiSink fans one line out to several sinks.
//   - StripANSI removes escape sequences before writing.
//   - FileSink appends plain lines to a file (no rotation).
package handler
