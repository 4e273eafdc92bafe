package handler

import "github.com/BROOSWAJNE/terrier/ansi"

type stripSink struct {
	out Sink
}

// StripANSI returns a Sink that removes escape sequences before
// writing. Each Write results in one Write on out.
func StripANSI(out Sink) Sink {
	return &stripSink{out: out}
}

func (s *stripSink) Write(p []byte) (int, error) {
	if _, err := s.out.Write([]byte(ansi.Strip(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *stripSink) Sync() error {
	return s.out.Sync()
}
