package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guykh/hebdate/pkg/dateparse"
)

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Output string
}

// parseReport is the offline parse result for a single query. A nil
// calendar entry means that calendar did not recognize the input.
type parseReport struct {
	Query     string           `json:"query"`
	Gregorian *gregorianResult `json:"gregorian,omitempty"`
	Hebrew    *hebrewResult    `json:"hebrew,omitempty"`
}

type gregorianResult struct {
	Date      dateparse.GregorianDate `json:"date"`
	Formatted string                  `json:"formatted"`
	Form      string                  `json:"form"`
	Ambiguous bool                    `json:"ambiguous,omitempty"`
}

type hebrewResult struct {
	Date      dateparse.HebrewDate `json:"date"`
	Formatted string               `json:"formatted"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <date>",
		Short: "Parse date text without contacting the converter service",
		Long: `Run both date parsers on the given text and show what each one read,
without any network traffic.

Useful for checking how an input will be interpreted before querying,
and for debugging inputs that convert in an unexpected direction.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runParse(args []string, opts *ParseOptions) error {
	input := strings.TrimSpace(strings.Join(args, " "))

	report := &parseReport{Query: input}

	if d, form, ok := dateparse.GregorianMatch(input); ok {
		report.Gregorian = &gregorianResult{
			Date:      d,
			Formatted: d.String(),
			Form:      form.Name,
			Ambiguous: form.Ambiguous,
		}
	}
	if d, ok := dateparse.Hebrew(input); ok {
		report.Hebrew = &hebrewResult{
			Date:      d,
			Formatted: d.String(),
		}
	}

	switch opts.Output {
	case "text":
		printParseReport(report)
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encoding parse result: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	if report.Gregorian == nil && report.Hebrew == nil {
		ExitCode = 1
	}
	return nil
}

func printParseReport(report *parseReport) {
	fmt.Printf("Query: %s\n\n", report.Query)

	if report.Gregorian != nil {
		fmt.Printf("Gregorian: %s\n", report.Gregorian.Formatted)
		fmt.Printf("  Form: %s\n", report.Gregorian.Form)
		if report.Gregorian.Ambiguous {
			fmt.Printf("  Note: day/month order was guessed from the values\n")
		}
	} else {
		fmt.Printf("Gregorian: no match\n")
	}

	if report.Hebrew != nil {
		fmt.Printf("Hebrew: %s\n", report.Hebrew.Formatted)
	} else {
		fmt.Printf("Hebrew: no match\n")
	}

	if report.Gregorian == nil && report.Hebrew == nil {
		fmt.Printf("\nRecognized Gregorian forms:\n")
		for _, form := range dateparse.GregorianForms() {
			fmt.Printf("  %s (e.g. %s)\n", form.Name, strings.Join(form.Examples, ", "))
		}
		fmt.Printf("Hebrew dates need a day, a month name and a year, e.g. 25 Kislev 5784.\n")
		fmt.Printf("Month names: %s\n", strings.Join(dateparse.HebrewMonthNames(), ", "))
	}
}
