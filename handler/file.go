package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// FileSink appends lines to a file with escape sequences removed.
// There is no rotation; Close releases the file.
type FileSink struct {
	path string
	file *os.File
	out  Sink
}

// OpenFile opens path for appending, creating it and its directory
// when missing
func OpenFile(path string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("filename is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &FileSink{
		path: path,
		file: file,
		out:  StripANSI(AddSync(file)),
	}, nil
}

// Path returns the file name the sink writes to
func (f *FileSink) Path() string {
	return f.path
}

// Write appends p without escape sequences
func (f *FileSink) Write(p []byte) (int, error) {
	return f.out.Write(p)
}

// Sync flushes the file to disk
func (f *FileSink) Sync() error {
	return f.out.Sync()
}

// Close syncs and closes the file
func (f *FileSink) Close() error {
	return multierr.Append(f.file.Sync(), f.file.Close())
}
