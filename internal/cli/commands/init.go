package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/guykh/hebdate/pkg/config"
)

// starterConfig is the commented template written by init. It must stay
// loadable by config.Load.
const starterConfig = `# hebdate configuration
# Generated by: hebdate init

service:
  # Converter service root. Any hebcal.com compatible deployment works.
  base_url: https://www.hebcal.com

  # Per-request timeout.
  timeout: 5s

ui:
  # Keyword prefix a launcher uses to route queries to hebdate. Keep the
  # trailing space so the keyword separates from the date text.
  trigger: "hebcal "

  # Icon shown on result items. When unset, a logo.svg next to the
  # hebdate binary is used if present.
  # icon: /path/to/logo.svg
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter configuration file",
		Long: `Write a commented starter configuration file.

With no argument the file is written at the default user config path.
An existing file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(path)
		},
	}
}

func runInit(path string) error {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving default config path: %w", err)
		}
		path = p
	}

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", path)
	}

	// #nosec G301 - config directory doesn't need restrictive permissions
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("creating pending config file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if _, err := pending.Write([]byte(starterConfig)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing config file: %w", err)
	}

	fmt.Printf("Wrote starter config to: %s\n", path)
	return nil
}
