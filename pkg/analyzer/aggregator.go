package analyzer

import (
	"strings"

	"github.com/ccollicutt/logtally/pkg/config"
	"github.com/ccollicutt/logtally/pkg/parser"
)

// Aggregator folds records into per-address and per-endpoint tallies.
type Aggregator struct {
	failureStatus string
	failureMarker string

	requestsByAddress     *Tally
	requestsByEndpoint    *Tally
	failedLoginsByAddress *Tally
}

// AggregatorOption configures aggregator behavior.
type AggregatorOption func(*Aggregator)

// WithFailureStatus sets the status code counted as a failed login.
func WithFailureStatus(status string) AggregatorOption {
	return func(a *Aggregator) {
		a.failureStatus = status
	}
}

// WithFailureMarker sets the text whose presence in the failure text
// counts as a failed login.
func WithFailureMarker(marker string) AggregatorOption {
	return func(a *Aggregator) {
		a.failureMarker = marker
	}
}

// NewAggregator creates an empty aggregator. Without options it uses
// config.DefaultFailureStatus and config.DefaultFailureMarker.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		failureStatus: config.DefaultFailureStatus,
		failureMarker: config.DefaultFailureMarker,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.reset()
	return a
}

// Add counts one record.
func (a *Aggregator) Add(rec *parser.Record) {
	a.requestsByAddress.Inc(rec.Address)
	a.requestsByEndpoint.Inc(rec.Endpoint)

	if a.IsFailedLogin(rec) {
		a.failedLoginsByAddress.Inc(rec.Address)
	}
}

// IsFailedLogin reports whether rec is an authentication failure: either the
// failure status, or the marker anywhere in the failure text.
func (a *Aggregator) IsFailedLogin(rec *parser.Record) bool {
	return rec.StatusCode == a.failureStatus || strings.Contains(rec.FailureText, a.failureMarker)
}

// Tallies returns the current tallies. The aggregator must not be used
// after handing them off.
func (a *Aggregator) Tallies() Tallies {
	return Tallies{
		RequestsByAddress:     a.requestsByAddress,
		RequestsByEndpoint:    a.requestsByEndpoint,
		FailedLoginsByAddress: a.failedLoginsByAddress,
	}
}

// reset replaces all tallies with empty ones.
func (a *Aggregator) reset() {
	a.requestsByAddress = NewTally()
	a.requestsByEndpoint = NewTally()
	a.failedLoginsByAddress = NewTally()
}
