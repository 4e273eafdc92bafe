package handler

import "go.uber.org/multierr"

// MultiSink fans each line out to several sinks, one Write per sink
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink
func NewMultiSink(sinks ...Sink) *MultiSink {
	s := make([]Sink, len(sinks))
	copy(s, sinks)
	return &MultiSink{sinks: s}
}

// Write writes p to every sink. A failing sink does not stop the
// others; all failures are combined.
func (m *MultiSink) Write(p []byte) (int, error) {
	var err error
	for _, s := range m.sinks {
		if _, werr := s.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sync flushes every sink
func (m *MultiSink) Sync() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Sync())
	}
	return err
}
