// Package output renders query results for the launcher host and for
// humans.
package output

import (
	"time"

	"github.com/guykh/hebdate/pkg/query"
)

// Action identifiers offered on result items.
const (
	ActionCopy      = "copy"
	ActionCopyInput = "copy-input"
)

// Report is the complete presentation of one query.
type Report struct {
	// Query is the trimmed input that was looked up.
	Query string `json:"query"`

	// Items are the launcher rows, in display order.
	Items []Item `json:"items"`

	// Metadata provides context about the query run.
	Metadata Metadata `json:"metadata"`
}

// Item is one launcher row: a title, an explanatory subtext and the
// clipboard actions offered on it.
type Item struct {
	Title   string   `json:"title"`
	Subtext string   `json:"subtext"`
	Icon    string   `json:"icon,omitempty"`
	Actions []Action `json:"actions,omitempty"`
}

// Action is one clipboard offer on an item.
type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Metadata provides context about the query run.
type Metadata struct {
	// Matches is the number of successful conversions.
	Matches int `json:"matches"`

	// Outcomes records what each direction did with the query.
	Outcomes []OutcomeNote `json:"outcomes,omitempty"`

	// Duration is how long the query took.
	Duration time.Duration `json:"duration"`
}

// OutcomeNote is the presentable form of a per-direction verdict.
type OutcomeNote struct {
	Direction string `json:"direction"`
	Status    string `json:"status"`
	Detail    string `json:"detail,omitempty"`
}

// NewReport builds the presentation of a query result. Every match becomes
// an item; a blank query yields the usage hint and a total miss the format
// help placeholder.
func NewReport(result *query.Result, icon string) *Report {
	report := &Report{
		Query: result.Query,
		Metadata: Metadata{
			Matches:  len(result.Matches),
			Duration: result.Duration,
		},
	}

	for _, outcome := range result.Outcomes {
		note := OutcomeNote{
			Direction: string(outcome.Direction),
			Status:    string(outcome.Status),
		}
		if outcome.Err != nil {
			note.Detail = outcome.Err.Error()
		}
		report.Metadata.Outcomes = append(report.Metadata.Outcomes, note)
	}

	switch {
	case result.Empty:
		report.Items = []Item{hintItem(icon)}
	case !result.Matched():
		report.Items = []Item{placeholderItem(icon)}
	default:
		for _, match := range result.Matches {
			report.Items = append(report.Items, matchItem(match, icon))
		}
	}

	return report
}

// Matched reports whether the report carries any conversion.
func (r *Report) Matched() bool {
	return r.Metadata.Matches > 0
}

// FirstConverted returns the first converted value, for quiet output.
// Empty when nothing matched.
func (r *Report) FirstConverted() string {
	if !r.Matched() || len(r.Items) == 0 {
		return ""
	}
	return r.Items[0].Title
}

func matchItem(match *query.Match, icon string) Item {
	return Item{
		Title:   match.Converted,
		Subtext: match.Direction.Label() + ": " + match.Input,
		Icon:    icon,
		Actions: []Action{
			{ID: ActionCopy, Label: "Copy to clipboard", Text: match.Converted},
			{ID: ActionCopyInput, Label: "Copy input date", Text: match.Input},
		},
	}
}

func hintItem(icon string) Item {
	return Item{
		Title:   "Hebrew Calendar Converter",
		Subtext: "Enter a Hebrew or Gregorian date to convert",
		Icon:    icon,
	}
}

func placeholderItem(icon string) Item {
	return Item{
		Title:   "Invalid date format",
		Subtext: "Try formats like '5784 Kislev 25', '2023-12-08', or 'December 8, 2023'",
		Icon:    icon,
	}
}
