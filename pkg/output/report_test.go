package output

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ccollicutt/logtally/pkg/analyzer"
)

func TestNewReport(t *testing.T) {
	result := createTestResult()

	report, err := NewReport(result, 2)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}

	wantRequests := []analyzer.Entry{
		{Key: "10.0.0.1", Count: 2},
		{Key: "10.0.0.2", Count: 4},
		{Key: "10.0.0.3", Count: 3},
	}
	if diff := cmp.Diff(wantRequests, report.Requests); diff != "" {
		t.Errorf("Requests mismatch (-want +got):\n%s", diff)
	}

	if report.MostAccessed != (analyzer.Entry{Key: "/login", Count: 6}) {
		t.Errorf("MostAccessed = %+v, want /login x6", report.MostAccessed)
	}

	wantSuspicious := []analyzer.Entry{
		{Key: "10.0.0.2", Count: 4},
		{Key: "10.0.0.3", Count: 3},
	}
	if diff := cmp.Diff(wantSuspicious, report.Suspicious); diff != "" {
		t.Errorf("Suspicious mismatch (-want +got):\n%s", diff)
	}

	wantSummary := Summary{
		LinesProcessed:  9,
		UniqueAddresses: 3,
		UniqueEndpoints: 2,
		FailedLogins:    8,
		SuspiciousCount: 2,
		Threshold:       2,
	}
	if diff := cmp.Diff(wantSummary, report.Summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}

	if report.Metadata.Duration != 100*time.Millisecond {
		t.Errorf("Duration = %v, want 100ms", report.Metadata.Duration)
	}
	if !report.HasIssues() {
		t.Error("HasIssues() = false, want true")
	}
}

func TestNewReport_ThresholdIsExclusive(t *testing.T) {
	result := createTestResult()

	// 10.0.0.2 has exactly 4 failures.
	report, err := NewReport(result, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Suspicious) != 0 {
		t.Errorf("Suspicious = %+v, want none at threshold 4", report.Suspicious)
	}
	if report.HasIssues() {
		t.Error("HasIssues() = true, want false")
	}

	report, err = NewReport(result, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Suspicious) != 1 || report.Suspicious[0].Key != "10.0.0.2" {
		t.Errorf("Suspicious = %+v, want [10.0.0.2] at threshold 3", report.Suspicious)
	}
}

func TestNewReport_NoEndpoints(t *testing.T) {
	result := &analyzer.AnalysisResult{Tallies: analyzer.NewAggregator().Tallies()}

	_, err := NewReport(result, 10)
	if !errors.Is(err, analyzer.ErrNoEndpoints) {
		t.Errorf("NewReport() error = %v, want ErrNoEndpoints", err)
	}
}

func createTestResult() *analyzer.AnalysisResult {
	baseTime := time.Date(2024, 12, 3, 10, 0, 0, 0, time.UTC)

	tallies := analyzer.Tallies{
		RequestsByAddress:     analyzer.NewTally(),
		RequestsByEndpoint:    analyzer.NewTally(),
		FailedLoginsByAddress: analyzer.NewTally(),
	}

	inc := func(t *analyzer.Tally, key string, n int) {
		for i := 0; i < n; i++ {
			t.Inc(key)
		}
	}
	inc(tallies.RequestsByAddress, "10.0.0.1", 2)
	inc(tallies.RequestsByAddress, "10.0.0.2", 4)
	inc(tallies.RequestsByAddress, "10.0.0.3", 3)
	inc(tallies.RequestsByEndpoint, "/home", 3)
	inc(tallies.RequestsByEndpoint, "/login", 6)
	inc(tallies.FailedLoginsByAddress, "10.0.0.1", 1)
	inc(tallies.FailedLoginsByAddress, "10.0.0.2", 4)
	inc(tallies.FailedLoginsByAddress, "10.0.0.3", 3)

	return &analyzer.AnalysisResult{
		Tallies: tallies,
		Metadata: analyzer.AnalysisMetadata{
			Source:         "access.log",
			StartTime:      baseTime,
			EndTime:        baseTime.Add(100 * time.Millisecond),
			LinesProcessed: 9,
		},
	}
}

func createTestReport() *Report {
	report, err := NewReport(createTestResult(), 2)
	if err != nil {
		panic(err)
	}
	return report
}
