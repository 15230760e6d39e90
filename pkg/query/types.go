package query

import (
	"time"

	"github.com/guykh/hebdate/pkg/dateparse"
)

// Direction identifies which way a conversion runs.
type Direction string

const (
	DirectionGregorianToHebrew Direction = "g2h"
	DirectionHebrewToGregorian Direction = "h2g"
)

// Label returns the direction name used in result subtexts.
func (d Direction) Label() string {
	switch d {
	case DirectionGregorianToHebrew:
		return "Gregorian → Hebrew"
	case DirectionHebrewToGregorian:
		return "Hebrew → Gregorian"
	}
	return string(d)
}

// Match is one successful conversion. Input and Converted are the display
// strings; the typed records carry both calendars regardless of direction.
type Match struct {
	Direction Direction                `json:"direction"`
	Input     string                   `json:"input"`
	Converted string                   `json:"converted"`
	Gregorian *dateparse.GregorianDate `json:"gregorian,omitempty"`
	Hebrew    *dateparse.HebrewDate    `json:"hebrew,omitempty"`
}

// OutcomeStatus classifies what one direction did with a query.
type OutcomeStatus string

const (
	// OutcomeNoParse means the query is not a date in this direction's
	// input calendar.
	OutcomeNoParse OutcomeStatus = "no-parse"

	// OutcomeConverted means the direction parsed and converted the query.
	OutcomeConverted OutcomeStatus = "converted"

	// OutcomeFailed means the query parsed but the conversion service
	// did not produce a result.
	OutcomeFailed OutcomeStatus = "failed"
)

// Outcome records one direction's verdict, for diagnostics and verbose
// output.
type Outcome struct {
	Direction Direction     `json:"direction"`
	Status    OutcomeStatus `json:"status"`
	Err       error         `json:"-"`
}

// Result is the complete outcome of one query.
type Result struct {
	// Query is the trimmed input the directions saw.
	Query string `json:"query"`

	// Empty reports that the query was blank after trimming; no parsing
	// was attempted.
	Empty bool `json:"empty,omitempty"`

	// Matches holds every successful conversion, in direction order. One
	// input can match both calendars and then yields two entries.
	Matches []*Match `json:"matches"`

	// Outcomes records the per-direction verdicts.
	Outcomes []Outcome `json:"outcomes,omitempty"`

	// Duration is the wall-clock time the query took.
	Duration time.Duration `json:"duration"`
}

// Matched reports whether any direction produced a conversion.
func (r *Result) Matched() bool {
	return len(r.Matches) > 0
}
