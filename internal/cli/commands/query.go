package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/guykh/hebdate/internal/log"
	"github.com/guykh/hebdate/pkg/config"
	"github.com/guykh/hebdate/pkg/hebcal"
	"github.com/guykh/hebdate/pkg/output"
	"github.com/guykh/hebdate/pkg/query"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// QueryOptions holds command-line options for the query command.
type QueryOptions struct {
	Config  string
	Output  string
	Service string
	Timeout time.Duration
	Verbose bool
	Quiet   bool
	NoColor bool
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query <date>",
		Short: "Convert a date between the Hebrew and Gregorian calendars",
		Long: `Parse the given text as a Hebrew and as a Gregorian date and convert
every reading through the converter service.

Both calendars are always tried; text that parses in both produces two
results. An empty query prints a usage hint instead.

Accepted formats:
  Hebrew:    5784 Kislev 25 | 25 Kislev 5784 | Kislev 25, 5784
  Gregorian: 2023-12-08 | 12/8/2023 | December 8, 2023

Exit codes:
  0 - At least one conversion produced
  1 - Nothing converted
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (default is the user config when present)")
	cmd.Flags().StringVar(&opts.Service, "service", "", "Converter service URL (overrides config)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Request timeout (overrides config)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-direction outcomes and debug logs")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only the first converted value")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, opts *QueryOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Verbose {
		_ = log.SetLevel("debug")
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}
	if opts.Service != "" {
		cfg.Service.BaseURL = opts.Service
	}
	if opts.Timeout > 0 {
		cfg.Service.Timeout = opts.Timeout
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	formatter, err := createFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
		NoColor: opts.NoColor,
	})
	if err != nil {
		return err
	}

	client := hebcal.NewClient(hebcal.Options{
		BaseURL: cfg.Service.BaseURL,
		Timeout: cfg.Service.Timeout,
	})
	engine := query.NewEngine(client)

	result := engine.Run(ctx, strings.Join(args, " "))
	report := output.NewReport(result, cfg.ResolveIcon())

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !report.Matched() {
		ExitCode = 1
	}
	return nil
}

// loadConfig loads the explicit config path when given and the default
// user config otherwise.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func createFormatter(format string, formatOpts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
