package output

import (
	"strings"
	"testing"
	"time"

	"github.com/guykh/hebdate/pkg/dateparse"
	"github.com/guykh/hebdate/pkg/query"
)

func gregorianMatchResult() *query.Result {
	return &query.Result{
		Query: "2023-12-08",
		Matches: []*query.Match{
			{
				Direction: query.DirectionGregorianToHebrew,
				Input:     "2023-12-08",
				Converted: "25 Kislev 5784",
				Gregorian: &dateparse.GregorianDate{Year: 2023, Month: 12, Day: 8},
				Hebrew:    &dateparse.HebrewDate{Year: 5784, Month: "Kislev", Day: 25},
			},
		},
		Outcomes: []query.Outcome{
			{Direction: query.DirectionGregorianToHebrew, Status: query.OutcomeConverted},
			{Direction: query.DirectionHebrewToGregorian, Status: query.OutcomeNoParse},
		},
		Duration: 42 * time.Millisecond,
	}
}

func missResult() *query.Result {
	return &query.Result{
		Query: "nope",
		Outcomes: []query.Outcome{
			{Direction: query.DirectionGregorianToHebrew, Status: query.OutcomeNoParse},
			{Direction: query.DirectionHebrewToGregorian, Status: query.OutcomeNoParse},
		},
	}
}

func TestNewReport_Match(t *testing.T) {
	report := NewReport(gregorianMatchResult(), "/opt/hebdate/logo.svg")

	if len(report.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(report.Items))
	}
	item := report.Items[0]

	if item.Title != "25 Kislev 5784" {
		t.Errorf("Title = %q, want the converted value", item.Title)
	}
	if item.Subtext != "Gregorian → Hebrew: 2023-12-08" {
		t.Errorf("Subtext = %q, want direction label and input", item.Subtext)
	}
	if item.Icon != "/opt/hebdate/logo.svg" {
		t.Errorf("Icon = %q, want the configured icon", item.Icon)
	}

	if len(item.Actions) != 2 {
		t.Fatalf("Actions = %d, want 2", len(item.Actions))
	}
	copyAction := item.Actions[0]
	if copyAction.ID != ActionCopy || copyAction.Label != "Copy to clipboard" || copyAction.Text != "25 Kislev 5784" {
		t.Errorf("copy action = %+v", copyAction)
	}
	inputAction := item.Actions[1]
	if inputAction.ID != ActionCopyInput || inputAction.Label != "Copy input date" || inputAction.Text != "2023-12-08" {
		t.Errorf("copy-input action = %+v", inputAction)
	}

	if report.Metadata.Matches != 1 {
		t.Errorf("Matches = %d, want 1", report.Metadata.Matches)
	}
	if len(report.Metadata.Outcomes) != 2 {
		t.Errorf("Outcomes = %d, want 2", len(report.Metadata.Outcomes))
	}
}

func TestNewReport_TwoMatches(t *testing.T) {
	result := gregorianMatchResult()
	result.Matches = append(result.Matches, &query.Match{
		Direction: query.DirectionHebrewToGregorian,
		Input:     "25 Adar 5784",
		Converted: "2024-03-05",
	})

	report := NewReport(result, "")
	if len(report.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(report.Items))
	}
	if report.Items[1].Subtext != "Hebrew → Gregorian: 25 Adar 5784" {
		t.Errorf("second Subtext = %q", report.Items[1].Subtext)
	}
}

func TestNewReport_Placeholder(t *testing.T) {
	result := &query.Result{
		Query: "not a date",
		Outcomes: []query.Outcome{
			{Direction: query.DirectionGregorianToHebrew, Status: query.OutcomeNoParse},
			{Direction: query.DirectionHebrewToGregorian, Status: query.OutcomeNoParse},
		},
	}

	report := NewReport(result, "icon.svg")
	if len(report.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(report.Items))
	}
	item := report.Items[0]
	if item.Title != "Invalid date format" {
		t.Errorf("Title = %q", item.Title)
	}
	if !strings.Contains(item.Subtext, "5784 Kislev 25") {
		t.Errorf("Subtext = %q, want format examples", item.Subtext)
	}
	if len(item.Actions) != 0 {
		t.Errorf("placeholder carries %d actions, want none", len(item.Actions))
	}
	if report.Matched() {
		t.Error("Matched() = true for a placeholder report")
	}
}

func TestNewReport_EmptyQueryHint(t *testing.T) {
	report := NewReport(&query.Result{Empty: true}, "")

	if len(report.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(report.Items))
	}
	item := report.Items[0]
	if item.Title != "Hebrew Calendar Converter" {
		t.Errorf("Title = %q", item.Title)
	}
	if item.Subtext != "Enter a Hebrew or Gregorian date to convert" {
		t.Errorf("Subtext = %q", item.Subtext)
	}
	if len(item.Actions) != 0 {
		t.Errorf("hint carries %d actions, want none", len(item.Actions))
	}
}

func TestNewReport_FailureDetailKept(t *testing.T) {
	result := &query.Result{
		Query: "2023-12-08",
		Outcomes: []query.Outcome{
			{
				Direction: query.DirectionGregorianToHebrew,
				Status:    query.OutcomeFailed,
				Err:       errTest("converter service unavailable: connection refused"),
			},
			{Direction: query.DirectionHebrewToGregorian, Status: query.OutcomeNoParse},
		},
	}

	report := NewReport(result, "")
	if len(report.Metadata.Outcomes) != 2 {
		t.Fatalf("Outcomes = %d, want 2", len(report.Metadata.Outcomes))
	}
	if report.Metadata.Outcomes[0].Detail != "converter service unavailable: connection refused" {
		t.Errorf("Detail = %q", report.Metadata.Outcomes[0].Detail)
	}
}

func TestReport_FirstConverted(t *testing.T) {
	report := NewReport(gregorianMatchResult(), "")
	if got := report.FirstConverted(); got != "25 Kislev 5784" {
		t.Errorf("FirstConverted() = %q, want %q", got, "25 Kislev 5784")
	}

	miss := NewReport(&query.Result{Query: "nope"}, "")
	if got := miss.FirstConverted(); got != "" {
		t.Errorf("FirstConverted() = %q for a miss, want empty", got)
	}
}

// errTest is a trivial error for exercising outcome details.
type errTest string

func (e errTest) Error() string { return string(e) }
