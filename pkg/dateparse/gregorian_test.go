package dateparse

import "testing"

func TestGregorian_ISO(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  GregorianDate
	}{
		{
			name:  "full ISO",
			input: "2023-12-08",
			want:  GregorianDate{Year: 2023, Month: 12, Day: 8},
		},
		{
			name:  "single digit month and day",
			input: "2023-1-8",
			want:  GregorianDate{Year: 2023, Month: 1, Day: 8},
		},
		{
			name:  "trailing text after the date",
			input: "2024-03-15 anything after",
			want:  GregorianDate{Year: 2024, Month: 3, Day: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Gregorian(tt.input)
			if !ok {
				t.Fatalf("Gregorian(%q) = no match, want %v", tt.input, tt.want)
			}
			if got != tt.want {
				t.Errorf("Gregorian(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGregorian_Slash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  GregorianDate
	}{
		{
			name:  "first number over 12 forces day-first",
			input: "25/12/2023",
			want:  GregorianDate{Year: 2023, Month: 12, Day: 25},
		},
		{
			name:  "both numbers at most 12 defaults month-first",
			input: "5/6/2023",
			want:  GregorianDate{Year: 2023, Month: 5, Day: 6},
		},
		{
			name:  "US style",
			input: "12/8/2023",
			want:  GregorianDate{Year: 2023, Month: 12, Day: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Gregorian(tt.input)
			if !ok {
				t.Fatalf("Gregorian(%q) = no match, want %v", tt.input, tt.want)
			}
			if got != tt.want {
				t.Errorf("Gregorian(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGregorian_MonthName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  GregorianDate
	}{
		{
			name:  "full month name",
			input: "December 8, 2023",
			want:  GregorianDate{Year: 2023, Month: 12, Day: 8},
		},
		{
			name:  "two digit year expands to 20xx",
			input: "December 8, 23",
			want:  GregorianDate{Year: 2023, Month: 12, Day: 8},
		},
		{
			name:  "abbreviated month",
			input: "8 Dec 2023",
			want:  GregorianDate{Year: 2023, Month: 12, Day: 8},
		},
		{
			name:  "month name inside longer text",
			input: "on 3 March 1999 something happened",
			want:  GregorianDate{Year: 1999, Month: 3, Day: 3},
		},
		{
			name:  "mixed case",
			input: "dEcEmBeR 8 2023",
			want:  GregorianDate{Year: 2023, Month: 12, Day: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Gregorian(tt.input)
			if !ok {
				t.Fatalf("Gregorian(%q) = no match, want %v", tt.input, tt.want)
			}
			if got != tt.want {
				t.Errorf("Gregorian(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGregorian_NoMatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "plain words", input: "hello world"},
		{name: "empty string", input: ""},
		{name: "hebrew date", input: "25 Kislev 5784"},
		{name: "month name with a single number", input: "December 2023"},
		{name: "slash form with two digit year", input: "12/8/23"},
		{name: "date not at the start", input: "on 2023-12-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := Gregorian(tt.input); ok {
				t.Errorf("Gregorian(%q) = %v, want no match", tt.input, got)
			}
		})
	}
}

func TestGregorianMatch_ReportsForm(t *testing.T) {
	tests := []struct {
		input         string
		wantForm      string
		wantAmbiguous bool
	}{
		{input: "2023-12-08", wantForm: "ISO 8601 date"},
		{input: "5/6/2023", wantForm: "Slash-delimited date", wantAmbiguous: true},
		{input: "December 8, 2023", wantForm: "Month name date"},
	}

	for _, tt := range tests {
		t.Run(tt.wantForm, func(t *testing.T) {
			_, form, ok := GregorianMatch(tt.input)
			if !ok {
				t.Fatalf("GregorianMatch(%q) = no match", tt.input)
			}
			if form.Name != tt.wantForm {
				t.Errorf("GregorianMatch(%q) form = %q, want %q", tt.input, form.Name, tt.wantForm)
			}
			if form.Ambiguous != tt.wantAmbiguous {
				t.Errorf("GregorianMatch(%q) ambiguous = %v, want %v", tt.input, form.Ambiguous, tt.wantAmbiguous)
			}
		})
	}
}

func TestGregorianForms_OrderAndExamples(t *testing.T) {
	forms := GregorianForms()
	if len(forms) != 3 {
		t.Fatalf("GregorianForms() returned %d forms, want 3", len(forms))
	}

	// The ISO form must win over the month-name scan for inputs that could
	// satisfy both.
	d, form, ok := GregorianMatch("2023-12-08 december")
	if !ok || form.Name != "ISO 8601 date" {
		t.Errorf("expected ISO form to win, got form %v (ok=%v)", form, ok)
	}
	if d.Month != 12 {
		t.Errorf("month = %d, want 12", d.Month)
	}

	// Every advertised example must actually parse with its own form.
	for _, f := range forms {
		for _, ex := range f.Examples {
			if _, ok := f.parse(ex); !ok {
				t.Errorf("form %q does not accept its own example %q", f.Name, ex)
			}
		}
	}
}
