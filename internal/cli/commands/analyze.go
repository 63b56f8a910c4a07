package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logtally/pkg/analyzer"
	"github.com/ccollicutt/logtally/pkg/config"
	"github.com/ccollicutt/logtally/pkg/output"
	"github.com/ccollicutt/logtally/pkg/parser"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	ConfigPath string
	Threshold  int
	ExportPath string
	NoExport   bool
	Format     string
	Verbose    bool
	Quiet      bool
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [log-file]",
		Short: "Analyze an access log",
		Long: `Analyze an access log and report:
  - Requests per client address
  - The most frequently accessed endpoint
  - Addresses with more failed logins than the threshold

A line counts as a failed login when its status is 401 or its trailing
text contains "Invalid credentials". The log file defaults to sample.log;
use "-" to read standard input. Any line with fewer than 9 space-separated
fields aborts the run; use 'logtally diagnose' to find such lines.

Results are printed and saved as CSV (default log_analysis_results.csv).

Exit codes:
  0 - No suspicious addresses
  1 - Suspicious addresses detected
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().IntVarP(&opts.Threshold, "threshold", "t", config.DefaultFailedLoginThreshold, "Report addresses with more failed logins than this")
	cmd.Flags().StringVarP(&opts.ExportPath, "export", "e", config.DefaultExportFile, "CSV export path")
	cmd.Flags().BoolVar(&opts.NoExport, "no-export", false, "Skip writing the CSV export")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Console format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show run statistics")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}
	applyAnalyzeFlags(cmd, cfg, opts)
	if len(args) == 1 {
		cfg.LogFile = args[0]
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	// Fail on a bad format before reading any input
	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	source, err := openSource(cfg.LogFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer source.Close()

	a, err := analyzer.NewAnalyzer(cfg, analyzer.WithSourceName(source.Name()))
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}

	result, err := a.Analyze(ctx, source)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report, err := output.NewReport(result, cfg.FailedLoginThreshold)
	if err != nil {
		return err
	}

	// The export is written only once the whole log has been analyzed
	if !opts.NoExport {
		if err := output.WriteCSVFile(cfg.ExportFile, report); err != nil {
			return err
		}
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !opts.NoExport && !opts.Quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nResults saved to %s\n", cfg.ExportFile)
	}

	// Set exit code based on results
	if report.HasIssues() {
		ExitCode = 1
	}

	return nil
}

// loadConfig reads the config file when one is given, otherwise returns defaults.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// applyAnalyzeFlags overrides config values with flags the user set explicitly.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config, opts *AnalyzeOptions) {
	if cmd.Flags().Changed("threshold") {
		cfg.FailedLoginThreshold = opts.Threshold
	}
	if cmd.Flags().Changed("export") {
		cfg.ExportFile = opts.ExportPath
	}
}

func openSource(path string, stdin io.Reader) (*parser.FileSource, error) {
	if path == parser.StdinName {
		return parser.NewReaderSource("stdin", stdin), nil
	}
	return parser.OpenFile(path)
}

func createFormatter(opts *AnalyzeOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Format)
	}
}
