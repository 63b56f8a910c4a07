package config

// Default values for configuration.
const (
	DefaultLogFile              = "sample.log"
	DefaultExportFile           = "log_analysis_results.csv"
	DefaultFailedLoginThreshold = 10
	DefaultFailureStatus        = "401"
	DefaultFailureMarker        = "Invalid credentials"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogFile:              DefaultLogFile,
		ExportFile:           DefaultExportFile,
		FailedLoginThreshold: DefaultFailedLoginThreshold,
		FailureStatus:        DefaultFailureStatus,
		FailureMarker:        DefaultFailureMarker,
	}
}
