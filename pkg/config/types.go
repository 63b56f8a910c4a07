// Package config provides configuration loading and validation for LogTally.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// LogFile is the access log to analyze. "-" reads standard input.
	LogFile string `yaml:"log_file"`

	// ExportFile is where the CSV results are written.
	ExportFile string `yaml:"export_file"`

	// FailedLoginThreshold is the exclusive lower bound for reporting an
	// address as suspicious: only counts strictly greater are reported.
	FailedLoginThreshold int `yaml:"failed_login_threshold"`

	// FailureStatus is the status code that marks a failed login.
	FailureStatus string `yaml:"failure_status"`

	// FailureMarker is matched case-sensitively as a substring of the
	// failure text; any match marks a failed login regardless of status.
	FailureMarker string `yaml:"failure_marker"`
}
