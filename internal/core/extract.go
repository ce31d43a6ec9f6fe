package core

// extract.go parses one free-text component description into a structured
// candidate item with a confidence score.
//
// Recognition is rule-based and explainable by construction: independent
// pattern passes each claim their tokens from the input and add a fixed
// weight to the confidence score, so every point of confidence is traceable
// to a specific recognized token. Users of the auto-fill feature can see why
// the engine guessed what it guessed; a black-box score would not earn that
// trust. Passes cover non-overlapping token classes, so their order does not
// change the result.

import (
	"regexp"
	"sort"
	"strings"
)

// builtinSuppliers are recognized even with an empty supplier vocabulary.
var builtinSuppliers = []string{
	"DigiKey", "Digi-Key", "Mouser", "McMaster-Carr", "McMaster",
	"Newark", "Arrow", "Adafruit", "SparkFun", "Amazon", "LCSC",
}

// builtinCategories maps description keywords to category labels.
var builtinCategories = map[string]string{
	"resistor":        "Resistors",
	"potentiometer":   "Resistors",
	"capacitor":       "Capacitors",
	"inductor":        "Inductors",
	"diode":           "Diodes",
	"led":             "LEDs",
	"transistor":      "Transistors",
	"mosfet":          "Transistors",
	"ic":              "ICs",
	"microcontroller": "ICs",
	"regulator":       "ICs",
	"opamp":           "ICs",
	"connector":       "Connectors",
	"header":          "Connectors",
	"terminal":        "Connectors",
	"switch":          "Switches",
	"relay":           "Switches",
	"screw":           "Hardware",
	"bolt":            "Hardware",
	"nut":             "Hardware",
	"washer":          "Hardware",
	"standoff":        "Hardware",
	"bracket":         "Hardware",
	"wire":            "Wire & Cable",
	"cable":           "Wire & Cable",
	"fuse":            "Protection",
	"crystal":         "Oscillators",
	"oscillator":      "Oscillators",
}

// Quantity patterns, tried in order. The first match wins and is consumed.
var quantityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bqty[:. \t]*(\d+)\b`),
	regexp.MustCompile(`(?i)\b(\d+)[ \t]*(?:pieces|piece|pcs|pc|units|unit)\b`),
	regexp.MustCompile(`(?i)\b(\d+)[ \t]*x\b`),
	regexp.MustCompile(`^[ \t]*(\d+)\b`),
}

// Cost patterns: "$1.25", "1.25 dollars", "1.25 each".
var costPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$[ \t]*(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)[ \t]*dollars?\b`),
	regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)[ \t]*(?:each|ea|apiece)\b`),
}

// Extract parses free text into one candidate item plus the recognized
// specification tokens and a confidence score in [0,1]. Identical input and
// options always yield an identical result.
func Extract(text string, opts Options) ParseResult {
	result := ParseResult{
		Input: text,
		Specs: map[string]string{},
		Item:  Item{Quantity: 1, Category: "Other"},
	}
	w := opts.weights()
	remaining := text

	// Quantity.
	if qty, rest, ok := takeQuantity(remaining); ok {
		result.Item.Quantity = qty
		remaining = rest
		result.Confidence += w.Quantity
	}

	// Component value, tolerance, and ratings in one shared pass.
	specs, classes, rest := RecognizeSpecs(remaining)
	remaining = rest
	for k, v := range specs {
		result.Specs[k] = v
	}
	if classes[classValue] {
		result.Confidence += w.ValueSpec
	}
	if classes[classTolerance] {
		result.Confidence += w.Tolerance
	}
	if classes[classRating] {
		result.Confidence += w.Rating
	}

	// Supplier.
	if name, rest, ok := takeSupplier(remaining, opts.Suppliers); ok {
		result.Item.Supplier = name
		remaining = rest
		result.Confidence += w.Supplier
	}

	// Cost.
	if cost, rest, ok := takeCost(remaining); ok {
		result.Item.UnitCost = cost
		remaining = rest
		result.Confidence += w.Cost
	}

	// Category keywords stay in the description; they are data too.
	if cat, ok := matchCategory(remaining, opts.Categories); ok {
		result.Item.Category = cat
		result.Confidence += w.Category
	}

	if result.Confidence > 1.0 {
		result.Confidence = 1.0
	}

	result.Item.Description = collapseSpaces(remaining)
	result.Item.ExtendedCost = RoundCents(float64(result.Item.Quantity) * result.Item.UnitCost)
	return result
}

// takeQuantity finds a quantity token, returning the value and the text with
// the token removed.
func takeQuantity(text string) (int, string, bool) {
	for _, re := range quantityPatterns {
		m := re.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		n, ok := ParseQuantity(text[m[2]:m[3]])
		if !ok {
			continue
		}
		return n, text[:m[0]] + " " + text[m[1]:], true
	}
	return 0, text, false
}

// takeCost finds a unit-cost token, returning the value and the text with
// the token removed.
func takeCost(text string) (float64, string, bool) {
	for _, re := range costPatterns {
		m := re.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		v, ok := ParseMoney(text[m[2]:m[3]])
		if !ok {
			continue
		}
		return v, text[:m[0]] + " " + text[m[1]:], true
	}
	return 0, text, false
}

// takeSupplier matches known supplier names case-insensitively as
// substrings. The longest name wins so "McMaster-Carr" beats "McMaster".
// A preceding "from" or "at" is consumed along with the name.
var supplierLeadIn = regexp.MustCompile(`(?i)\b(?:from|at|via)[ \t]*$`)

func takeSupplier(text string, extra []string) (string, string, bool) {
	names := append(append([]string{}, builtinSuppliers...), extra...)
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	lower := strings.ToLower(text)
	for _, name := range names {
		if name == "" {
			continue
		}
		idx := strings.Index(lower, strings.ToLower(name))
		if idx < 0 {
			continue
		}
		before := supplierLeadIn.ReplaceAllString(text[:idx], " ")
		return name, before + " " + text[idx+len(name):], true
	}
	return "", text, false
}

// matchCategory looks for a taxonomy keyword in the text. Configured
// categories take precedence over the built-in taxonomy; within each table
// keywords are checked in sorted order so the result is deterministic.
func matchCategory(text string, extra map[string]string) (string, bool) {
	words := WordSet(text)

	match := func(table map[string]string) (string, bool) {
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, kw := range keys {
			if containsKeyword(words, kw) {
				return table[kw], true
			}
		}
		return "", false
	}

	if cat, ok := match(extra); ok {
		return cat, true
	}
	return match(builtinCategories)
}

// containsKeyword reports whether the word set holds the keyword or its
// plural.
func containsKeyword(words map[string]struct{}, kw string) bool {
	if _, ok := words[kw]; ok {
		return true
	}
	if _, ok := words[kw+"s"]; ok {
		return true
	}
	return false
}

// collapseSpaces trims the residue text and squeezes runs of whitespace left
// behind by consumed tokens.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
