// Package cli provides the command-line interface for hebdate.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guykh/hebdate/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hebdate",
		Short: "Convert dates between the Hebrew and Gregorian calendars",
		Long: `hebdate converts dates between the Hebrew and Gregorian calendars.

Free-form input is read in both calendars at once and every reading is
converted through the hebcal.com converter API:

  hebdate query 25 Kislev 5784      =>  2023-12-08
  hebdate query 2023-12-08          =>  25 Kislev 5784
  hebdate query December 8, 2023    =>  25 Kislev 5784

Built to sit behind a launcher keyword (the query, parse and copy
commands map onto a launcher's query/result/action cycle) and equally
usable from a shell. Parsing is local; "hebdate parse" shows how input
is read without any network traffic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewQueryCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewDiagnoseCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
