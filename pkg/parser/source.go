package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// maxLineSize bounds a single log line. Longer lines fail the run with
// bufio.ErrTooLong.
var maxLineSize = 64 * 1024 * 1024

// FileSource implements RecordSource for a single access log.
type FileSource struct {
	name    string
	closer  io.Closer
	scanner *bufio.Scanner
	lineNum int
	done    bool
}

// OpenFile opens the log at path and returns a source over its lines.
// The caller must Close the source.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	s := NewReaderSource(path, f)
	s.closer = f
	return s, nil
}

// NewReaderSource returns a source over the lines of r.
// Closing the source does not close r.
func NewReaderSource(name string, r io.Reader) *FileSource {
	return &FileSource{
		name:    name,
		scanner: newLineScanner(r),
	}
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineSize)), maxLineSize)
	return scanner
}

// Name returns the path or stream name given at construction.
func (s *FileSource) Name() string {
	return s.name
}

// Next returns the next parsed record.
// Returns io.EOF when the input is exhausted.
func (s *FileSource) Next(ctx context.Context) (*Record, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done {
		return nil, io.EOF
	}

	if !s.scanner.Scan() {
		s.done = true
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: line %d: %w", s.name, s.lineNum+1, err)
		}
		return nil, io.EOF
	}
	s.lineNum++

	rec, err := Parse(s.scanner.Text())
	if err != nil {
		var malformed *MalformedLineError
		if errors.As(err, &malformed) {
			malformed.Source = s.name
			malformed.LineNum = s.lineNum
		}
		s.done = true
		return nil, err
	}

	rec.Source = s.name
	rec.LineNum = s.lineNum
	return rec, nil
}

// Close releases the underlying file, if the source owns one.
func (s *FileSource) Close() error {
	s.done = true
	if s.closer != nil {
		err := s.closer.Close()
		s.closer = nil
		return err
	}
	return nil
}
