package analyzer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ccollicutt/logtally/pkg/config"
	"github.com/ccollicutt/logtally/pkg/parser"
)

// Analyzer drives a record source through an Aggregator.
type Analyzer struct {
	cfg *config.Config

	// Options
	sourceName string
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithSourceName sets the source name recorded in the result metadata.
func WithSourceName(name string) AnalyzerOption {
	return func(a *Analyzer) {
		a.sourceName = name
	}
}

// NewAnalyzer creates a new analyzer from configuration.
func NewAnalyzer(cfg *config.Config, opts ...AnalyzerOption) (*Analyzer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("analyzer requires a configuration")
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &Analyzer{
		cfg:        cfg,
		sourceName: cfg.LogFile,
	}

	// Apply options
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Analyze consumes every record from source and returns the finished tallies.
// The first error from the source, including a malformed line, aborts the run.
func (a *Analyzer) Analyze(ctx context.Context, source parser.RecordSource) (*AnalysisResult, error) {
	result := &AnalysisResult{
		Metadata: AnalysisMetadata{
			Source:    a.sourceName,
			StartTime: time.Now(),
		},
	}

	agg := NewAggregator(
		WithFailureStatus(a.cfg.FailureStatus),
		WithFailureMarker(a.cfg.FailureMarker),
	)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading log source: %w", err)
		}

		agg.Add(rec)
		result.Metadata.LinesProcessed++
	}

	result.Tallies = agg.Tallies()
	result.Metadata.EndTime = time.Now()

	return result, nil
}
