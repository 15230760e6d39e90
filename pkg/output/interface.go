package output

import (
	"context"
	"io"
)

// Formatter renders query reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds per-direction outcomes and timings.
	Verbose bool

	// Quiet reduces output to the first converted value, for command
	// substitution.
	Quiet bool

	// NoColor disables terminal styling in the text format.
	NoColor bool
}
