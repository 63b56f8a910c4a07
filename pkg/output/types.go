// Package output provides formatting and export of analysis results.
package output

import (
	"fmt"
	"time"

	"github.com/ccollicutt/logtally/pkg/analyzer"
)

// Report is the complete analysis output.
type Report struct {
	// Requests lists request counts per address in first-seen order.
	Requests []analyzer.Entry `json:"requests_by_address"`

	// MostAccessed is the endpoint with the highest request count.
	MostAccessed analyzer.Entry `json:"most_accessed_endpoint"`

	// Suspicious lists addresses whose failed logins exceed the threshold.
	Suspicious []analyzer.Entry `json:"suspicious_addresses"`

	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Metadata provides context about the analysis.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	LinesProcessed  int `json:"lines_processed"`
	UniqueAddresses int `json:"unique_addresses"`
	UniqueEndpoints int `json:"unique_endpoints"`
	FailedLogins    int `json:"failed_logins"`
	SuspiciousCount int `json:"suspicious_count"`
	Threshold       int `json:"failed_login_threshold"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Source is the log file that was analyzed.
	Source string `json:"source"`

	// AnalyzedAt is when the analysis completed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// NewReport builds a Report from analysis results. Addresses are reported as
// suspicious only when their failed-login count is strictly greater than
// threshold. It fails with analyzer.ErrNoEndpoints when the log was empty.
func NewReport(result *analyzer.AnalysisResult, threshold int) (*Report, error) {
	most, err := result.MostAccessed()
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	suspicious := result.Suspicious(threshold)

	return &Report{
		Requests:     result.RequestsByAddress.Entries(),
		MostAccessed: most,
		Suspicious:   suspicious,
		Summary: Summary{
			LinesProcessed:  result.Metadata.LinesProcessed,
			UniqueAddresses: result.RequestsByAddress.Len(),
			UniqueEndpoints: result.RequestsByEndpoint.Len(),
			FailedLogins:    result.TotalFailedLogins(),
			SuspiciousCount: len(suspicious),
			Threshold:       threshold,
		},
		Metadata: Metadata{
			Source:     result.Metadata.Source,
			AnalyzedAt: result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
	}, nil
}

// HasIssues returns true if any address was flagged as suspicious.
func (r *Report) HasIssues() bool {
	return len(r.Suspicious) > 0
}
