package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logtally/pkg/config"
	"github.com/ccollicutt/logtally/pkg/parser"
)

// maxListedLines caps how many malformed lines are listed without --verbose.
const maxListedLines = 10

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	ConfigPath string
	Verbose    bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose [log-file]",
		Short: "Check a log file for lines analyze would reject",
		Long: `Check a log file for lines analyze would reject.

Analysis stops at the first line with fewer than 9 space-separated
fields. This command reads the whole file instead and reports:
- Log file existence and accessibility
- Every line that does not fit the field layout
- Configuration validity, when --config is given

Example:
  logtally diagnose access.log
  logtally diagnose -v access.log  # list every malformed line`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runDiagnose(ctx, cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(ctx context.Context, cmd *cobra.Command, args []string, opts *DiagnoseOptions) error {
	results := []DiagnosticResult{}
	w := cmd.OutOrStdout()

	cfg := config.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, result := checkConfig(ctx, opts.ConfigPath)
		results = append(results, result)
		if loaded != nil {
			cfg = loaded
		}
	}

	logPath := cfg.LogFile
	if len(args) == 1 {
		logPath = args[0]
	}

	// Stdin cannot be stat'ed, only read
	if logPath != parser.StdinName {
		result := checkLogFile(logPath)
		results = append(results, result)
		if result.Status == "error" {
			return finishDiagnose(w, results, opts)
		}
	}

	results = append(results, checkLineLayout(ctx, logPath, cmd.InOrStdin(), opts))

	return finishDiagnose(w, results, opts)
}

func finishDiagnose(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) error {
	printDiagnostics(w, results, opts)
	for _, r := range results {
		if r.Status == "error" {
			ExitCode = 1
			break
		}
	}
	return nil
}

func checkConfig(ctx context.Context, path string) (*config.Config, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Config File",
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to load config: %v", err)
		if strings.Contains(err.Error(), "yaml") {
			result.Suggests = []string{
				"Check YAML syntax - ensure proper indentation (use spaces, not tabs)",
			}
		}
		return nil, result
	}

	result.Status = "ok"
	result.Message = "Config file parsed successfully"
	result.Details = []string{
		fmt.Sprintf("Log file: %s", cfg.LogFile),
		fmt.Sprintf("Failed login threshold: %d", cfg.FailedLoginThreshold),
	}
	return cfg, result
}

func checkLogFile(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: fmt.Sprintf("Log File: %s", path),
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		result.Status = "error"
		result.Message = "File does not exist"
		result.Suggests = []string{
			"Check if the log file path is correct",
			"Pass the log file as the first argument",
		}
	case err != nil:
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access file: %v", err)
		result.Suggests = []string{"Check file permissions"}
	case info.IsDir():
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
	case info.Size() == 0:
		result.Status = "warning"
		result.Message = "File is empty (0 bytes)"
		result.Suggests = []string{"analyze fails on an empty log: there is no most accessed endpoint"}
	default:
		result.Status = "ok"
		result.Message = fmt.Sprintf("File exists (%d bytes)", info.Size())
	}

	return result
}

func checkLineLayout(ctx context.Context, path string, stdin io.Reader, opts *DiagnoseOptions) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Line Layout",
	}

	var r io.Reader = stdin
	name := "stdin"
	if path != parser.StdinName {
		f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			result.Status = "error"
			result.Message = fmt.Sprintf("Cannot open file: %v", err)
			return result
		}
		defer f.Close()
		r = f
		name = path
	}

	inspection, err := parser.Inspect(ctx, name, r)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to read log: %v", err)
		return result
	}

	if len(inspection.Malformed) == 0 {
		result.Status = "ok"
		result.Message = fmt.Sprintf("All %d line(s) have at least %d fields", inspection.Lines, parser.MinFields)
		result.Details = []string{
			fmt.Sprintf("Lines with failure text: %d", inspection.FailureTextLines),
		}
		return result
	}

	result.Status = "error"
	result.Message = fmt.Sprintf("%d of %d line(s) have fewer than %d fields",
		len(inspection.Malformed), inspection.Lines, parser.MinFields)

	for i, m := range inspection.Malformed {
		if i == maxListedLines && !opts.Verbose {
			result.Details = append(result.Details,
				fmt.Sprintf("... and %d more (use -v to list all)", len(inspection.Malformed)-maxListedLines))
			break
		}
		result.Details = append(result.Details,
			fmt.Sprintf("line %d: %d field(s): %s", m.LineNum, m.Fields, truncate(m.Line, 60)))
	}
	result.Suggests = []string{
		"Fields are split on single spaces: address at 0, endpoint at 6, status at 8",
		"Remove or fix these lines before running analyze",
	}

	return result
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Fprintln(w, "=== LogTally Diagnostics ===")
	fmt.Fprintln(w)

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		// Status icon
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Fprintf(w, "[%s] %s\n", icon, r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Fprintf(w, "      Hint: %s\n", s)
		}

		fmt.Fprintln(w)
	}

	// Summary
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Fprintln(w, "\nFix the errors above before running analysis.")
	} else if warnCount > 0 {
		fmt.Fprintln(w, "\nLog is usable but has warnings.")
	} else {
		fmt.Fprintln(w, "\nLog looks good!")
	}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
