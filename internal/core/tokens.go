package core

// tokens.go holds the recognition primitives shared by the natural-language
// extractor and the similarity engine, so pattern logic exists once (a spec
// token recognized during extraction is the same token the similarity bonus
// looks for).

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// specClass groups specification tokens by how they contribute to confidence.
type specClass int

const (
	classValue specClass = iota // component value: resistance, capacitance, inductance
	classTolerance
	classRating // voltage, power, current
)

// specPattern recognizes one class of specification token in free text.
type specPattern struct {
	key   string // specs map key
	class specClass
	re    *regexp.Regexp
	canon func(m []string) string
}

// specPatterns are applied in order; earlier patterns consume their matches
// before later ones run, so "10k ohm" is taken as a resistance before the
// bare-suffix value pattern can see "10k".
var specPatterns = []specPattern{
	{
		key:   "value",
		class: classValue,
		re:    regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)[ \t]*(k|m(?:eg)?)?[ \t]*(?:ohms?|Ω)`),
		canon: func(m []string) string { return m[1] + siPrefix(m[2]) + "Ω" },
	},
	{
		key:   "value",
		class: classValue,
		re:    regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)[ \t]*([pnuµ])f\b`),
		canon: func(m []string) string { return m[1] + strings.ToLower(mu(m[2])) + "F" },
	},
	{
		key:   "value",
		class: classValue,
		re:    regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)[ \t]*([muµ])h\b`),
		canon: func(m []string) string { return m[1] + strings.ToLower(mu(m[2])) + "H" },
	},
	{
		key:   "tolerance",
		class: classTolerance,
		re:    regexp.MustCompile(`(?:±|\+/-)?[ \t]*(\d+(?:\.\d+)?)[ \t]*%`),
		canon: func(m []string) string { return m[1] + "%" },
	},
	{
		key:   "voltage",
		class: classRating,
		re:    regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)[ \t]*(k?)v\b`),
		canon: func(m []string) string { return m[1] + strings.ToLower(m[2]) + "V" },
	},
	{
		key:   "power",
		class: classRating,
		re:    regexp.MustCompile(`(?i)\b(\d+/\d+|\d+(?:\.\d+)?)[ \t]*w\b`),
		canon: func(m []string) string { return m[1] + "W" },
	},
	{
		key:   "current",
		class: classRating,
		re:    regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)[ \t]*(m?)a\b`),
		canon: func(m []string) string { return m[1] + strings.ToLower(m[2]) + "A" },
	},
	{
		// Bare metric suffix ("10k", "4.7M") with no unit word. Last so
		// explicit units win.
		key:   "value",
		class: classValue,
		re:    regexp.MustCompile(`\b(\d+(?:\.\d+)?)([kKM])\b`),
		canon: func(m []string) string { return m[1] + siPrefix(m[2]) },
	},
}

// siPrefix normalizes a metric multiplier suffix: k stays lowercase, any
// spelling of mega becomes "M".
func siPrefix(s string) string {
	switch strings.ToLower(s) {
	case "k":
		return "k"
	case "m", "meg":
		return "M"
	default:
		return ""
	}
}

// mu folds the micro sign to "u".
func mu(s string) string {
	if s == "µ" {
		return "u"
	}
	return s
}

// RecognizeSpecs finds specification tokens (component values, tolerances,
// voltage/power/current ratings) in text. It returns the canonical tokens
// keyed by kind, the set of confidence classes that matched, and the text
// with every recognized token removed. For repeated tokens of one kind the
// first occurrence is kept.
func RecognizeSpecs(text string) (map[string]string, map[specClass]bool, string) {
	specs := make(map[string]string)
	classes := make(map[specClass]bool)

	remaining := text
	for _, p := range specPatterns {
		p := p
		remaining = p.re.ReplaceAllStringFunc(remaining, func(match string) string {
			m := p.re.FindStringSubmatch(match)
			if _, taken := specs[p.key]; !taken {
				specs[p.key] = p.canon(m)
			}
			classes[p.class] = true
			return " "
		})
	}
	return specs, classes, remaining
}

// wordTrim holds the punctuation stripped from word edges. '%' and '/' stay,
// so "1%" and "1/4W" survive as comparable tokens.
const wordTrim = `.,;:!?()[]{}"'` + "`"

// WordSet tokenizes text into its set of lowercase words for overlap
// comparison. Text is NFKC-normalized first so full-width and composed forms
// from pasted spreadsheet data compare equal.
func WordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(norm.NFKC.String(text)) {
		w = strings.Trim(strings.ToLower(w), wordTrim)
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
