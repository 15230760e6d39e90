package output

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

// formatQuiet prints the first converted value and nothing else. A miss
// prints nothing; the exit code carries that.
func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	if converted := report.FirstConverted(); converted != "" {
		fmt.Fprintln(w, converted)
	}
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	for _, item := range report.Items {
		fmt.Fprintln(w, f.render(titleStyle, item.Title))
		fmt.Fprintf(w, "  %s\n", f.render(subtextStyle, item.Subtext))

		if f.opts.Verbose {
			for _, action := range item.Actions {
				fmt.Fprintf(w, "  %s\n", f.render(noteStyle, action.Label+": "+action.Text))
			}
		}
	}

	if f.opts.Verbose {
		fmt.Fprintln(w)
		for _, note := range report.Metadata.Outcomes {
			line := fmt.Sprintf("%s: %s", note.Direction, note.Status)
			if note.Detail != "" {
				line += " (" + note.Detail + ")"
			}
			fmt.Fprintln(w, f.render(noteStyle, line))
		}
		fmt.Fprintf(w, "%s\n", f.render(noteStyle,
			fmt.Sprintf("duration: %s", report.Metadata.Duration.Round(time.Millisecond))))
	}

	return nil
}

func (f *TextFormatter) render(style lipgloss.Style, s string) string {
	if f.opts.NoColor {
		return s
	}
	return style.Render(s)
}
