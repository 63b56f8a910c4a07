// Package parser provides access log reading and field extraction.
package parser

import (
	"errors"
	"fmt"
)

// Positions of the fields within a space-separated access log line.
const (
	AddressField     = 0
	EndpointField    = 6
	StatusField      = 8
	FailureTextStart = 10

	// MinFields is the number of fields a line needs to reach StatusField.
	MinFields = StatusField + 1
)

// Record is a single access log line with its extracted fields.
type Record struct {
	// Address is the client address (field 0).
	Address string

	// Endpoint is the requested path (field 6).
	Endpoint string

	// StatusCode is the HTTP status token (field 8).
	StatusCode string

	// FailureText is everything from field 10 onwards, trailing space trimmed.
	// Empty when the line carries no such fields.
	FailureText string

	// Source is the file path or stream name this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// ErrMalformedLine is matched by every *MalformedLineError.
var ErrMalformedLine = errors.New("malformed log line")

// MalformedLineError reports a line too short for the positional field layout.
type MalformedLineError struct {
	Source  string
	LineNum int
	Fields  int
	Line    string
}

func (e *MalformedLineError) Error() string {
	msg := fmt.Sprintf("%s: got %d field(s), need at least %d", ErrMalformedLine, e.Fields, MinFields)
	switch {
	case e.Source != "":
		return fmt.Sprintf("%s:%d: %s", e.Source, e.LineNum, msg)
	case e.LineNum > 0:
		return fmt.Sprintf("line %d: %s", e.LineNum, msg)
	default:
		return msg
	}
}

// Unwrap lets errors.Is match ErrMalformedLine.
func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}
