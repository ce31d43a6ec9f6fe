package core

import "testing"

func TestSuggest(t *testing.T) {
	catalog := []CatalogItem{
		{PartNumber: "R-001", Description: "10K Resistor 1% 1/4W", Category: "Resistors"},
		{PartNumber: "C-001", Description: "100nF Ceramic Capacitor 50V", Category: "Capacitors"},
		{PartNumber: "H-001", Description: "M3 Hex Nut", Category: "Hardware"},
	}

	got := Suggest("10k resistor", catalog, DefaultOptions())

	if len(got) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	top := got[0]
	if top.PartNumber != "R-001" {
		t.Errorf("top suggestion = %s, want R-001", top.PartNumber)
	}
	if top.Score <= 0.15 {
		t.Errorf("top score = %v, want > 0.15", top.Score)
	}
	if top.CatalogIndex != 0 {
		t.Errorf("catalog index = %d, want 0", top.CatalogIndex)
	}
	if top.Reason == "" {
		t.Error("suggestion should carry a reason")
	}

	for _, s := range got {
		if s.PartNumber == "H-001" {
			t.Error("hex nut should fall below the similarity floor for a resistor query")
		}
	}
}

func TestSuggestFloor(t *testing.T) {
	catalog := []CatalogItem{
		{PartNumber: "X-1", Description: "completely unrelated bracket assembly"},
	}

	if got := Suggest("10k resistor", catalog, DefaultOptions()); len(got) != 0 {
		t.Errorf("expected no suggestions below the floor, got %d", len(got))
	}
}

func TestSuggestOrderingAndTies(t *testing.T) {
	catalog := []CatalogItem{
		{PartNumber: "A", Description: "steel bracket"},
		{PartNumber: "B", Description: "steel bracket"},
		{PartNumber: "C", Description: "steel bracket large flange mount kit"},
	}

	got := Suggest("steel bracket", catalog, DefaultOptions())
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}
	// Exact overlap first; equal scores keep catalog insertion order.
	if got[0].PartNumber != "A" || got[1].PartNumber != "B" {
		t.Errorf("tie order wrong: %s, %s", got[0].PartNumber, got[1].PartNumber)
	}
	if got[2].PartNumber != "C" {
		t.Errorf("weaker match should rank last, got %s", got[2].PartNumber)
	}
}

func TestSuggestTruncation(t *testing.T) {
	var catalog []CatalogItem
	for i := 0; i < 10; i++ {
		catalog = append(catalog, CatalogItem{PartNumber: "P", Description: "steel bracket"})
	}

	opts := DefaultOptions()
	opts.MaxSuggestions = 3

	if got := Suggest("steel bracket", catalog, opts); len(got) != 3 {
		t.Errorf("expected truncation to 3, got %d", len(got))
	}
}

func TestSuggestSpecBonus(t *testing.T) {
	catalog := []CatalogItem{
		{PartNumber: "R-100", Description: "Precision resistor 1%"},
		{PartNumber: "R-200", Description: "Precision resistor 5%"},
	}

	got := Suggest("precision resistor 1%", catalog, DefaultOptions())
	if len(got) < 2 {
		t.Fatalf("expected both resistors suggested, got %d", len(got))
	}
	if got[0].PartNumber != "R-100" {
		t.Errorf("spec token match should outrank, got %s first", got[0].PartNumber)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("bonus not applied: %v <= %v", got[0].Score, got[1].Score)
	}
}

func TestJaccard(t *testing.T) {
	a := WordSet("10k resistor")
	b := WordSet("10K Resistor 1% 1/4W")

	got := jaccard(a, b)
	if got != 0.5 {
		t.Errorf("jaccard = %v, want 0.5", got)
	}
	if jaccard(a, WordSet("")) != 0 {
		t.Error("empty set should yield zero")
	}
}
