package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
log_file: /var/log/nginx/access.log
export_file: /tmp/results.csv
failed_login_threshold: 5
failure_status: "403"
failure_marker: "Login failed"
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		LogFile:              "/var/log/nginx/access.log",
		ExportFile:           "/tmp/results.csv",
		FailedLoginThreshold: 5,
		FailureStatus:        "403",
		FailureMarker:        "Login failed",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "failed_login_threshold: 3\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FailedLoginThreshold != 3 {
		t.Errorf("FailedLoginThreshold = %d, want 3", cfg.FailedLoginThreshold)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, DefaultLogFile)
	}
	if cfg.ExportFile != DefaultExportFile {
		t.Errorf("ExportFile = %q, want %q", cfg.ExportFile, DefaultExportFile)
	}
	if cfg.FailureStatus != DefaultFailureStatus {
		t.Errorf("FailureStatus = %q, want %q", cfg.FailureStatus, DefaultFailureStatus)
	}
	if cfg.FailureMarker != DefaultFailureMarker {
		t.Errorf("FailureMarker = %q, want %q", cfg.FailureMarker, DefaultFailureMarker)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.yaml", "")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("Load() error = %v, want reading prefix", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "invalid.yaml", `invalid: yaml: content: [`)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("Load() expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("Load() error = %v, want parsing prefix", err)
	}
}

func TestLoad_WrongType(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "failed_login_threshold: lots\n")
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for non-integer threshold")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "failed_login_threshold: -1\n")
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("Load() expected error for negative threshold")
	}
	if !strings.Contains(err.Error(), "validating config") {
		t.Errorf("Load() error = %v, want validating prefix", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero threshold", func(c *Config) { c.FailedLoginThreshold = 0 }, ""},
		{"stdin log", func(c *Config) { c.LogFile = "-" }, ""},
		{"empty log file", func(c *Config) { c.LogFile = "" }, "log_file"},
		{"empty export file", func(c *Config) { c.ExportFile = "" }, "export_file"},
		{"negative threshold", func(c *Config) { c.FailedLoginThreshold = -5 }, "failed_login_threshold"},
		{"empty status", func(c *Config) { c.FailureStatus = "" }, "failure_status"},
		{"short status", func(c *Config) { c.FailureStatus = "40" }, "failure_status"},
		{"non-numeric status", func(c *Config) { c.FailureStatus = "4x1" }, "failure_status"},
		{"empty marker", func(c *Config) { c.FailureMarker = "" }, "failure_marker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FailedLoginThreshold != 10 {
		t.Errorf("FailedLoginThreshold = %d, want 10", cfg.FailedLoginThreshold)
	}
	if cfg.ExportFile != "log_analysis_results.csv" {
		t.Errorf("ExportFile = %q", cfg.ExportFile)
	}
	if cfg.LogFile != "sample.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}
