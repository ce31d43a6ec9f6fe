package core

// convert.go provides the type-coercion primitives shared by the row
// normalizer and the natural-language extractor.
//
// These functions handle the messy reality of user-provided import data:
// currency symbols and thousands separators in prices, accounting-style
// negatives, Excel formula prefixes (="value"), and stray quotes. They never
// return errors — a value that cannot be coerced reports ok=false and the
// caller substitutes the documented default.

import (
	"regexp"
	"strconv"
	"strings"
)

// numericRegex validates a string is numeric after cleanup. Matches integers,
// decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CleanCell removes common spreadsheet artifacts from a cell value:
// surrounding whitespace, the Excel formula prefix (="..."), and stray
// surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// ParseQuantity coerces a cell to a non-negative integer count. Decimal
// representations of whole numbers ("5.0") are accepted. Reports ok=false
// when the value cannot be read as an integer.
func ParseQuantity(s string) (int, bool) {
	s = CleanCell(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	// Tolerate "5.0" style exports from spreadsheets.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}
	return 0, false
}

// ParseMoney coerces a cell to a currency amount. It strips currency symbols
// and thousands separators and understands accounting-format negatives
// ("(123.45)"). Reports ok=false for anything that is not numeric afterwards.
func ParseMoney(s string) (float64, bool) {
	s = CleanCell(s)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if negative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// RoundCents rounds a currency amount to two decimal places. Extended costs
// are stored rounded so quantity*unitCost stays presentable.
func RoundCents(v float64) float64 {
	if v < 0 {
		return -RoundCents(-v)
	}
	return float64(int64(v*100+0.5)) / 100
}
