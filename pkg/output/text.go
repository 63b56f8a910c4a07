package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/logtally/pkg/analyzer"
)

const columnWidth = 20

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "LogTally: %d lines, %d addresses, most accessed %s (%d), %d suspicious\n",
		report.Summary.LinesProcessed,
		report.Summary.UniqueAddresses,
		report.MostAccessed.Key,
		report.MostAccessed.Count,
		report.Summary.SuspiciousCount)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	tw := &errWriter{w: w}

	// Requests per address
	writeTable(tw, "IP Address", "Request Count", report.Requests)

	// Most accessed endpoint
	tw.printf("\nMost Frequently Accessed Endpoint:\n")
	tw.printf("%s (Accessed %d times)\n", report.MostAccessed.Key, report.MostAccessed.Count)

	// Suspicious addresses
	tw.printf("\nSuspicious Activity Detected:\n")
	writeTable(tw, "IP Address", "Failed Login Attempts", report.Suspicious)

	if f.opts.Verbose {
		tw.printf("\n---\n")
		tw.printf("Source: %s\n", report.Metadata.Source)
		tw.printf("Lines processed: %d\n", report.Summary.LinesProcessed)
		tw.printf("Failed logins: %d (threshold: %d)\n", report.Summary.FailedLogins, report.Summary.Threshold)
		tw.printf("Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return tw.err
}

func writeTable(tw *errWriter, keyHeader, countHeader string, entries []analyzer.Entry) {
	tw.printf("%-*s%s\n", columnWidth, keyHeader, countHeader)
	for _, e := range entries {
		tw.printf("%-*s%d\n", columnWidth, e.Key, e.Count)
	}
}

// errWriter keeps the first write error so formatting can run unchecked.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
