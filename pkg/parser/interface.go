package parser

import (
	"context"
)

// RecordSource provides an iterator over parsed access log records.
// Implementations must be safe for sequential access (not concurrent).
type RecordSource interface {
	// Next returns the next parsed record.
	// Returns io.EOF when no more lines are available.
	// A line that does not fit the field layout is returned as a
	// *MalformedLineError and ends iteration.
	Next(ctx context.Context) (*Record, error)

	// Close releases any resources held by the source.
	Close() error
}
