package dateparse

import (
	"strconv"
	"strings"
)

// hebrewMonths maps lowercase month tokens to their canonical display
// names. Adar1 and Adar2 are the leap-year months; the conversion service
// accepts exactly these spellings.
var hebrewMonths = map[string]string{
	"tishrei": "Tishrei", "cheshvan": "Cheshvan", "kislev": "Kislev",
	"tevet": "Tevet", "shvat": "Shvat", "adar": "Adar", "adar1": "Adar1",
	"adar2": "Adar2", "nisan": "Nisan", "iyyar": "Iyyar", "sivan": "Sivan",
	"tamuz": "Tamuz", "av": "Av", "elul": "Elul",
}

// hebrewMonthOrder lists the canonical names in civil calendar order,
// starting at Tishrei, for help and diagnostics output.
var hebrewMonthOrder = []string{
	"Tishrei", "Cheshvan", "Kislev", "Tevet", "Shvat",
	"Adar", "Adar1", "Adar2",
	"Nisan", "Iyyar", "Sivan", "Tamuz", "Av", "Elul",
}

var hebrewPunctuation = strings.NewReplacer(",", "", ".", "")

// HebrewMonthNames returns the canonical month display names in calendar
// order. The returned slice is a copy.
func HebrewMonthNames() []string {
	names := make([]string, len(hebrewMonthOrder))
	copy(names, hebrewMonthOrder)
	return names
}

// Hebrew parses a Hebrew date written as any whitespace-separated
// arrangement of a year (above 5000), a day (1-30) and a month name.
// Commas and periods are stripped and matching is case-insensitive.
//
// Tokens are scanned independently: order does not matter, and when several
// tokens qualify for the same slot the last one seen wins. The scan has no
// conflict detection; that is a documented property of the heuristic, not
// an oversight. A record is produced only when all three slots were filled.
// The second return is false on no-match; that is a normal outcome, not an
// error.
func Hebrew(s string) (HebrewDate, bool) {
	cleaned := strings.ToLower(hebrewPunctuation.Replace(s))
	tokens := strings.Fields(cleaned)
	if len(tokens) < 3 {
		return HebrewDate{}, false
	}

	var d HebrewDate
	for _, tok := range tokens {
		if isDigits(tok) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				continue
			}
			switch {
			case n > 5000:
				d.Year = n
			case n >= 1 && n <= 30:
				d.Day = n
			}
			continue
		}
		if name, ok := hebrewMonths[tok]; ok {
			d.Month = name
		}
	}

	if d.Year == 0 || d.Month == "" || d.Day == 0 {
		return HebrewDate{}, false
	}
	return d, true
}

// isDigits reports whether s is a non-empty run of ASCII digits. Signed
// numbers deliberately do not qualify.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
