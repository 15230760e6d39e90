// Package dateparse turns free-text date strings into structured Gregorian
// or Hebrew date records using coarse heuristics. Records are transient:
// they exist for a single query and carry no validity guarantees beyond the
// numeric extraction itself (calendar correctness is the conversion
// service's job).
package dateparse

import "fmt"

// GregorianDate is a civil calendar date extracted from query text.
type GregorianDate struct {
	// Year is the full Gregorian year (two-digit inputs are expanded to 20xx).
	Year int `json:"year"`

	// Month is the month number as extracted; the ISO and slash forms do
	// not enforce the 1-12 range.
	Month int `json:"month"`

	// Day is the day number as extracted.
	Day int `json:"day"`
}

// String formats the date as YYYY-MM-DD with zero-padded month and day.
func (d GregorianDate) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// HebrewDate is a Hebrew calendar date extracted from query text.
type HebrewDate struct {
	// Year is the Hebrew year; the parser only accepts values above 5000.
	Year int `json:"year"`

	// Month is one of the canonical display names from HebrewMonthNames.
	Month string `json:"month"`

	// Day is the day number, 1-30.
	Day int `json:"day"`
}

// String formats the date as "D Month YYYY".
func (d HebrewDate) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, d.Month, d.Year)
}
