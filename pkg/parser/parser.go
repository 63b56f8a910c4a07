package parser

import (
	"strings"
	"unicode"
)

// Parse extracts the positional fields from a single access log line.
//
// The line is split on single spaces, so runs of spaces produce empty fields
// and shift the positions that follow. A line with fewer than MinFields fields
// returns a *MalformedLineError; callers are expected to treat that as fatal.
func Parse(line string) (*Record, error) {
	fields := strings.Split(strings.TrimSuffix(line, "\r"), " ")
	if err := validateFields(fields, line); err != nil {
		return nil, err
	}

	rec := &Record{
		Address:    fields[AddressField],
		Endpoint:   fields[EndpointField],
		StatusCode: fields[StatusField],
	}
	if len(fields) > FailureTextStart {
		rec.FailureText = strings.TrimRightFunc(strings.Join(fields[FailureTextStart:], " "), unicode.IsSpace)
	}

	return rec, nil
}

// validateFields is the only place the positional layout is checked.
func validateFields(fields []string, line string) error {
	if len(fields) < MinFields {
		return &MalformedLineError{
			Fields: len(fields),
			Line:   line,
		}
	}
	return nil
}
