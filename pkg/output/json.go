package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ccollicutt/logtally/pkg/analyzer"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// resultSets is the quiet JSON view: the same three sets the CSV export holds.
type resultSets struct {
	Requests     []analyzer.Entry `json:"requests_by_address"`
	MostAccessed analyzer.Entry   `json:"most_accessed_endpoint"`
	Suspicious   []analyzer.Entry `json:"suspicious_addresses"`
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(resultSets{
			Requests:     report.Requests,
			MostAccessed: report.MostAccessed,
			Suspicious:   report.Suspicious,
		})
	}

	return encoder.Encode(report)
}
