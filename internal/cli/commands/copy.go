package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// NewCopyCommand creates the copy command.
func NewCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <text>",
		Short: "Copy text to the system clipboard",
		Long: `Copy the given text to the system clipboard.

Launcher hosts run this as the action behind "Copy to clipboard" and
"Copy input date" on result items; it works just as well by hand.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(args)
		},
	}
}

func runCopy(args []string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard available on this system (install xclip or xsel)")
	}

	text := strings.Join(args, " ")
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
