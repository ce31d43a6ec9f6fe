package core

import "testing"

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whitespace trimmed", "  hello  ", "hello"},
		{"excel formula prefix", `="R-001"`, "R-001"},
		{"bare equals prefix", "=42", "42"},
		{"surrounding quotes", `"quoted"`, "quoted"},
		{"single quotes", "'quoted'", "quoted"},
		{"empty", "", ""},
		{"plain value untouched", "10K Resistor", "10K Resistor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"plain integer", "42", 42, true},
		{"thousands separator", "1,500", 1500, true},
		{"spreadsheet decimal", "5.0", 5, true},
		{"excel artifact", `="25"`, 25, true},
		{"non-numeric", "lots", 0, false},
		{"fractional", "2.5", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuantity(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseQuantity(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseQuantity(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"plain decimal", "123.45", 123.45, true},
		{"dollar sign", "$1,234.56", 1234.56, true},
		{"euro sign", "€99.99", 99.99, true},
		{"pound sign", "£50", 50, true},
		{"accounting negative", "(123.45)", -123.45, true},
		{"leading decimal point", ".99", 0.99, true},
		{"scientific notation", "1.5e2", 150, true},
		{"not a number", "free", 0, false},
		{"double decimal", "1.2.3", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMoney(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseMoney(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseMoney(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{1.006, 1.01},
		{1.004, 1.0},
		{-2.006, -2.01},
		{12.3449, 12.34},
		{0, 0},
	}

	for _, tt := range tests {
		if got := RoundCents(tt.input); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
