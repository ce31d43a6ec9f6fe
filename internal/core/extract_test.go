package core

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	res := Extract("10 pieces 10k ohm resistors 1% from DigiKey", DefaultOptions())

	if res.Item.Quantity != 10 {
		t.Errorf("quantity = %d, want 10", res.Item.Quantity)
	}
	if res.Specs["value"] != "10kΩ" {
		t.Errorf("value spec = %q, want 10kΩ", res.Specs["value"])
	}
	if res.Specs["tolerance"] != "1%" {
		t.Errorf("tolerance = %q, want 1%%", res.Specs["tolerance"])
	}
	if res.Item.Supplier != "DigiKey" {
		t.Errorf("supplier = %q, want DigiKey", res.Item.Supplier)
	}
	if res.Item.Category != "Resistors" {
		t.Errorf("category = %q, want Resistors", res.Item.Category)
	}
	if res.Confidence <= 0.7 {
		t.Errorf("confidence = %v, want > 0.7", res.Confidence)
	}
	if res.Item.Description != "resistors" {
		t.Errorf("description residue = %q, want %q", res.Item.Description, "resistors")
	}
}

func TestExtractDeterministic(t *testing.T) {
	const input = "qty: 25 100nF ceramic capacitor 50V $0.05 each from Mouser"

	a := Extract(input, DefaultOptions())
	b := Extract(input, DefaultOptions())

	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated extraction differs:\n%+v\n%+v", a, b)
	}
}

func TestExtractQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"pieces suffix", "5 pieces M3 screw", 5},
		{"qty prefix", "qty: 12 washers", 12},
		{"times marker", "3x bracket", 3},
		{"leading bare integer", "40 connector headers", 40},
		{"none defaults to one", "hookup wire", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.input, DefaultOptions())
			if res.Item.Quantity != tt.want {
				t.Errorf("Extract(%q).Quantity = %d, want %d", tt.input, res.Item.Quantity, tt.want)
			}
		})
	}
}

func TestExtractCost(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"dollar sign", "M3 screw $0.10", 0.10},
		{"dollars word", "bracket 2.50 dollars", 2.50},
		{"each marker", "connector 1.25 each", 1.25},
		{"no cost", "plain part", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.input, DefaultOptions())
			if res.Item.UnitCost != tt.want {
				t.Errorf("Extract(%q).UnitCost = %v, want %v", tt.input, res.Item.UnitCost, tt.want)
			}
		})
	}
}

func TestExtractSpecs(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want string
	}{
		{"resistance with unit word", "4.7k ohm resistor", "value", "4.7kΩ"},
		{"plain ohms", "100 ohm resistor", "value", "100Ω"},
		{"megohm", "1M ohm resistor", "value", "1MΩ"},
		{"capacitance", "100nF ceramic", "value", "100nF"},
		{"micro sign folded", "10µF electrolytic", "value", "10uF"},
		{"inductance", "22uH inductor", "value", "22uH"},
		{"voltage rating", "cap rated 50V", "voltage", "50V"},
		{"fractional power", "resistor 1/4W", "power", "1/4W"},
		{"current", "fuse 500mA", "current", "500mA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, _, _ := RecognizeSpecs(tt.text)
			if specs[tt.key] != tt.want {
				t.Errorf("RecognizeSpecs(%q)[%q] = %q, want %q", tt.text, tt.key, specs[tt.key], tt.want)
			}
		})
	}
}

func TestExtractCategoryDefault(t *testing.T) {
	res := Extract("mystery gadget", DefaultOptions())
	if res.Item.Category != "Other" {
		t.Errorf("category = %q, want Other", res.Item.Category)
	}
}

func TestExtractCustomVocabulary(t *testing.T) {
	opts := DefaultOptions()
	opts.Suppliers = []string{"Bolt Depot"}
	opts.Categories = map[string]string{"gasket": "Seals"}

	res := Extract("2 gasket sheets from Bolt Depot", opts)
	if res.Item.Supplier != "Bolt Depot" {
		t.Errorf("supplier = %q, want Bolt Depot", res.Item.Supplier)
	}
	if res.Item.Category != "Seals" {
		t.Errorf("category = %q, want Seals", res.Item.Category)
	}
}

func TestExtractConfidenceCapped(t *testing.T) {
	res := Extract("10x 10k ohm 1% 1/4W resistor $0.02 each from DigiKey", DefaultOptions())
	if res.Confidence > 1.0 {
		t.Errorf("confidence = %v, must be capped at 1.0", res.Confidence)
	}
	if res.Confidence < 0.9 {
		t.Errorf("confidence = %v, expected near-full recognition", res.Confidence)
	}
}
