package dateparse

import (
	"regexp"
	"strconv"
	"strings"
)

// GregorianForm describes one recognized Gregorian input shape.
// Forms are tried in declaration order and the first match wins.
type GregorianForm struct {
	// Name identifies the form in parse diagnostics.
	Name string

	// Examples are inputs this form accepts, for help and diagnostics output.
	Examples []string

	// Ambiguous marks forms whose day/month ordering is guessed rather than
	// declared by the input (slash dates where both leading numbers are <= 12
	// default to month-first).
	Ambiguous bool

	parse func(string) (GregorianDate, bool)
}

var (
	isoPattern   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})`)
	slashPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	numberRuns   = regexp.MustCompile(`\d+`)
)

// gregorianMonths lists the English month names tried by the month-name
// form. Full names come before the three-letter abbreviations and the order
// is fixed so substring matching stays deterministic.
var gregorianMonths = []struct {
	name  string
	month int
}{
	{"january", 1}, {"february", 2}, {"march", 3}, {"april", 4},
	{"may", 5}, {"june", 6}, {"july", 7}, {"august", 8},
	{"september", 9}, {"october", 10}, {"november", 11}, {"december", 12},
	{"jan", 1}, {"feb", 2}, {"mar", 3}, {"apr", 4}, {"jun", 6},
	{"jul", 7}, {"aug", 8}, {"sep", 9}, {"oct", 10}, {"nov", 11}, {"dec", 12},
}

// GregorianForms returns the recognized Gregorian input forms in match order.
func GregorianForms() []*GregorianForm {
	return []*GregorianForm{
		{
			Name:     "ISO 8601 date",
			Examples: []string{"2023-12-08", "2023-1-8"},
			parse:    parseISO,
		},
		{
			Name:      "Slash-delimited date",
			Examples:  []string{"12/8/2023", "25/12/2023"},
			Ambiguous: true,
			parse:     parseSlash,
		},
		{
			Name:     "Month name date",
			Examples: []string{"December 8, 2023", "8 Dec 23"},
			parse:    parseMonthName,
		},
	}
}

// Gregorian parses a Gregorian date from free text, trying the ISO,
// slash-delimited and month-name forms in that order. The second return is
// false when no form matched; that is a normal outcome, not an error.
func Gregorian(s string) (GregorianDate, bool) {
	d, _, ok := GregorianMatch(s)
	return d, ok
}

// GregorianMatch is Gregorian plus the form that recognized the input, for
// callers that explain which shape matched.
func GregorianMatch(s string) (GregorianDate, *GregorianForm, bool) {
	for _, form := range GregorianForms() {
		if d, ok := form.parse(s); ok {
			return d, form, true
		}
	}
	return GregorianDate{}, nil, false
}

func parseISO(s string) (GregorianDate, bool) {
	m := isoPattern.FindStringSubmatch(s)
	if m == nil {
		return GregorianDate{}, false
	}
	return GregorianDate{Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3])}, true
}

func parseSlash(s string) (GregorianDate, bool) {
	m := slashPattern.FindStringSubmatch(s)
	if m == nil {
		return GregorianDate{}, false
	}
	first, second, year := atoi(m[1]), atoi(m[2]), atoi(m[3])

	// A leading number over 12 cannot be a month, so read the date
	// day-first. Everything else reads month-first.
	if first > 12 {
		return GregorianDate{Year: year, Month: second, Day: first}, true
	}
	return GregorianDate{Year: year, Month: first, Day: second}, true
}

func parseMonthName(s string) (GregorianDate, bool) {
	lower := strings.ToLower(s)
	for _, m := range gregorianMonths {
		if !strings.Contains(lower, m.name) {
			continue
		}

		// First numeric run is the day, last is the year. A lone number
		// cannot fill both slots.
		nums := numberRuns.FindAllString(s, -1)
		if len(nums) < 2 {
			return GregorianDate{}, false
		}
		day, year := atoi(nums[0]), atoi(nums[len(nums)-1])

		// Two-digit years mean 20xx; the shortcut only covers 2000-2099.
		if year < 100 {
			year += 2000
		}
		return GregorianDate{Year: year, Month: m.month, Day: day}, true
	}
	return GregorianDate{}, false
}

// atoi converts digit-only regex captures; the patterns guarantee the input.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
