package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/guykh/hebdate/pkg/config"
	"github.com/guykh/hebdate/pkg/dateparse"
	"github.com/guykh/hebdate/pkg/hebcal"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Verbose bool
	Offline bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// probeDate is a fixed Hebrew date with a known Gregorian counterpart,
// used to verify the converter service end to end.
var probeDate = dateparse.HebrewDate{Year: 5784, Month: "Kislev", Day: 25}

const probeWant = "2023-12-08"

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose [config-file]",
		Short: "Diagnose common setup issues",
		Long: `Diagnose common setup issues.

This command checks your installation for common problems:
- Config file syntax and values
- Trigger keyword shape
- Icon resolution
- Clipboard availability
- Converter service reachability (a real conversion is attempted)

Warnings never change the exit code; diagnose exits 0 unless it cannot
run at all.

Example:
  hebdate diagnose
  hebdate diagnose -v my-config.yaml  # verbose output
  hebdate diagnose --offline          # skip the service probe`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := ""
			if len(args) == 1 {
				configPath = args[0]
			}
			return runDiagnose(cmd.Context(), configPath, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")
	cmd.Flags().BoolVar(&opts.Offline, "offline", false, "Skip the converter service probe")

	return cmd
}

func runDiagnose(ctx context.Context, configPath string, opts *DiagnoseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := []DiagnosticResult{}

	// 1. Check config file existence
	result := checkConfigFile(configPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(results, opts)
		return nil
	}

	// 2. Parse and validate config values
	cfg, result := checkConfigValues(ctx, configPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(results, opts)
		return nil
	}

	// 3. Check trigger keyword
	results = append(results, checkTrigger(cfg))

	// 4. Check icon resolution
	results = append(results, checkIcon(cfg))

	// 5. Check clipboard availability
	results = append(results, checkClipboard())

	// 6. Probe the converter service
	if opts.Offline {
		if opts.Verbose {
			results = append(results, DiagnosticResult{
				Check:   "Converter Service",
				Status:  "ok",
				Message: "Skipped (--offline)",
			})
		}
	} else {
		results = append(results, checkService(ctx, cfg))
	}

	printDiagnostics(results, opts)
	return nil
}

func checkConfigFile(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Config File",
	}

	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			result.Status = "warning"
			result.Message = fmt.Sprintf("Cannot resolve default config path: %v", err)
			result.Details = []string{"Built-in defaults will be used"}
			return result
		}
		path = p
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if !explicit {
			// The default config is optional; running on defaults is fine.
			result.Status = "warning"
			result.Message = fmt.Sprintf("Not present: %s (built-in defaults in use)", path)
			result.Suggests = []string{
				"Run 'hebdate init' to write a starter config",
			}
			return result
		}
		result.Status = "error"
		result.Message = fmt.Sprintf("Config file not found: %s", path)
		result.Suggests = []string{
			"Check the file path is correct",
			"Use 'hebdate init <path>' to generate a starter config",
		}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access config file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "error"
		result.Message = "Config file is empty"
		result.Suggests = []string{
			"Use 'hebdate init <path>' to generate a starter config",
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkConfigValues(ctx context.Context, path string) (*config.Config, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Config Values",
	}

	cfg, err := loadConfig(ctx, path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to load config: %v", err)
		result.Suggests = []string{
			"Check YAML indentation and syntax",
			"Compare against the output of 'hebdate init'",
		}
		return nil, result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Service: %s (timeout %s)", cfg.Service.BaseURL, cfg.Service.Timeout)
	return cfg, result
}

func checkTrigger(cfg *config.Config) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Trigger Keyword",
	}

	trigger := cfg.UI.Trigger
	if !strings.HasSuffix(trigger, " ") {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Trigger %q has no trailing space", trigger)
		result.Suggests = []string{
			"Launcher triggers usually end with a space so the keyword separates from the query",
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Trigger: %q", trigger)
	return result
}

func checkIcon(cfg *config.Config) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Icon",
	}

	icon := cfg.ResolveIcon()
	if icon == "" {
		result.Status = "warning"
		result.Message = "No icon configured and no logo.svg next to the binary"
		result.Suggests = []string{
			"Set ui.icon in the config, or place a logo.svg beside the hebdate binary",
		}
		return result
	}

	// The executable-relative fallback only resolves to files that exist, so
	// this can only trip on an explicitly configured path.
	if _, err := os.Stat(icon); err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Configured icon is not readable: %v", err)
		result.Suggests = []string{
			"Point ui.icon at an existing image file",
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Using: %s", icon)
	return result
}

func checkClipboard() DiagnosticResult {
	result := DiagnosticResult{
		Check: "Clipboard",
	}

	if clipboard.Unsupported {
		result.Status = "warning"
		result.Message = "No clipboard utility available"
		result.Suggests = []string{
			"Install xclip or xsel so copy actions work",
		}
		return result
	}

	result.Status = "ok"
	result.Message = "Clipboard available"
	return result
}

func checkService(ctx context.Context, cfg *config.Config) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Converter Service",
	}

	client := hebcal.NewClient(hebcal.Options{
		BaseURL: cfg.Service.BaseURL,
		Timeout: cfg.Service.Timeout,
	})

	got, err := client.ToGregorian(ctx, probeDate)
	if err != nil {
		if errors.Is(err, hebcal.ErrUnavailable) {
			result.Status = "error"
			result.Message = fmt.Sprintf("Cannot reach %s: %v", cfg.Service.BaseURL, err)
			result.Suggests = []string{
				"Verify network connectivity",
				"Raise service.timeout if the network is slow",
				"Point service.base_url at a reachable converter deployment",
			}
			return result
		}
		// The endpoint answered but not usefully; queries may still work
		// for other dates, so this stays a warning.
		result.Status = "warning"
		result.Message = fmt.Sprintf("Service answered but the probe failed: %v", err)
		result.Suggests = []string{
			"Check that service.base_url points at a converter API, not a web page",
		}
		return result
	}

	if got.String() != probeWant {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Probe conversion returned %s, want %s", got, probeWant)
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Reachable, probe conversion verified (%s -> %s)", probeDate, got)
	return result
}

func printDiagnostics(results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Println("=== hebdate Diagnostics ===")
	fmt.Println()

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

		fmt.Printf("[%s] %s\n", icon, r.Check)
		fmt.Printf("    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Printf("      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Printf("      Hint: %s\n", s)
		}

		fmt.Println()
	}

	// Summary
	fmt.Println("---")
	fmt.Printf("Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Println("\nFix the errors above before wiring hebdate into a launcher.")
	} else if warnCount > 0 {
		fmt.Println("\nSetup is usable but has warnings.")
	} else {
		fmt.Println("\nEverything looks good!")
	}
}
