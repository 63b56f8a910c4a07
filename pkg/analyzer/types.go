// Package analyzer aggregates access log records into request and
// failed-login tallies.
package analyzer

import (
	"errors"
	"time"
)

// ErrNoEndpoints is returned when no endpoint was seen, so no endpoint can be
// the most accessed one.
var ErrNoEndpoints = errors.New("no endpoints recorded: the log contained no requests")

// Tallies holds the three finished counters of one run.
type Tallies struct {
	// RequestsByAddress counts every request per client address.
	RequestsByAddress *Tally

	// RequestsByEndpoint counts every request per endpoint.
	RequestsByEndpoint *Tally

	// FailedLoginsByAddress counts failed logins per address. Addresses with
	// no failures have no entry.
	FailedLoginsByAddress *Tally
}

// AnalysisResult contains the complete analysis output.
type AnalysisResult struct {
	Tallies

	// Metadata provides context about the analysis.
	Metadata AnalysisMetadata
}

// AnalysisMetadata provides context about the analysis run.
type AnalysisMetadata struct {
	// Source is the log file or stream that was analyzed.
	Source string

	// StartTime is when analysis began.
	StartTime time.Time

	// EndTime is when analysis completed.
	EndTime time.Time

	// LinesProcessed is the total number of log lines counted.
	LinesProcessed int
}

// MostAccessed returns the endpoint with the highest request count.
// Ties go to the endpoint that appeared first in the log.
func (r *AnalysisResult) MostAccessed() (Entry, error) {
	best, ok := r.RequestsByEndpoint.Max()
	if !ok {
		return Entry{}, ErrNoEndpoints
	}
	return best, nil
}

// Suspicious returns the addresses whose failed-login count is strictly
// greater than threshold, in the order they first failed.
func (r *AnalysisResult) Suspicious(threshold int) []Entry {
	return r.FailedLoginsByAddress.Above(threshold)
}

// TotalFailedLogins returns the number of failed logins across all addresses.
func (r *AnalysisResult) TotalFailedLogins() int {
	return r.FailedLoginsByAddress.Total()
}
