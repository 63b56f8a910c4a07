package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Inspection summarizes how well an input fits the field layout.
type Inspection struct {
	// Lines is the number of lines read.
	Lines int

	// Malformed holds one error per line that failed validation, in input order.
	Malformed []*MalformedLineError

	// FailureTextLines counts well-formed lines with a non-empty failure text.
	FailureTextLines int
}

// Valid returns the number of lines that parsed.
func (i *Inspection) Valid() int {
	return i.Lines - len(i.Malformed)
}

// Inspect reads every line of r and records each one that does not parse.
// Unlike FileSource it never stops at a malformed line.
func Inspect(ctx context.Context, name string, r io.Reader) (*Inspection, error) {
	scanner := newLineScanner(r)

	result := &Inspection{}
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result.Lines++
		rec, err := Parse(scanner.Text())
		if err != nil {
			var malformed *MalformedLineError
			if !errors.As(err, &malformed) {
				return nil, err
			}
			malformed.Source = name
			malformed.LineNum = result.Lines
			result.Malformed = append(result.Malformed, malformed)
			continue
		}
		if rec.FailureText != "" {
			result.FailureTextLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: line %d: %w", name, result.Lines+1, err)
	}

	return result, nil
}
