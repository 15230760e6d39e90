package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guykh/hebdate/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a configuration file",
		Long: `Validate a hebdate configuration file without running a query.

Checks:
  - YAML syntax
  - Service URL shape (http or https, with a host)
  - Timeout is positive
  - Trigger keyword is set

With no argument the default user config is checked; when that file does
not exist the built-in defaults are validated and shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var cfg *config.Config
	var err error
	if len(args) == 1 {
		fmt.Printf("Validating %s...\n", args[0])
		cfg, err = config.Load(ctx, args[0])
	} else {
		path, pathErr := config.DefaultPath()
		if pathErr == nil {
			fmt.Printf("Validating %s...\n", path)
		}
		cfg, err = config.LoadDefault(ctx)
	}
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Service URL: %s\n", cfg.Service.BaseURL)
	fmt.Printf("  Timeout:     %s\n", cfg.Service.Timeout)
	fmt.Printf("  Trigger:     %q\n", cfg.UI.Trigger)

	// Icon problems only affect launcher hosts that render icons, so they
	// produce warnings rather than errors.
	if icon := cfg.ResolveIcon(); icon == "" {
		fmt.Printf("\nWarning: No icon configured and no logo.svg next to the binary\n")
	} else if _, err := os.Stat(icon); err != nil {
		fmt.Printf("  Icon:        %s\n", icon)
		fmt.Printf("\nWarning: Icon is not readable: %v\n", err)
	} else {
		fmt.Printf("  Icon:        %s\n", icon)
	}

	return nil
}
