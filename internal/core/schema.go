package core

// schema.go defines the column synonym table and header label matching.
//
// Real-world exports label the same column a dozen ways ("P/N",
// "part_number", "Part Number", "PartNumber"), so raw labels are reduced to a
// compact form — lowercase with separator characters dropped — before lookup.
// Many labels collapse onto one canonical field; unmatched labels are simply
// ignored for canonical output.

import "strings"

// DefaultSynonyms returns the built-in header synonym table, keyed by
// compact label form (see normalizeLabel). Callers may extend or replace it
// through [Options].
func DefaultSynonyms() map[string]Field {
	return map[string]Field{
		// Part number
		"partnumber": FieldPartNumber,
		"partno":     FieldPartNumber,
		"pn":         FieldPartNumber,
		"part":       FieldPartNumber,
		"sku":        FieldPartNumber,
		"itemnumber": FieldPartNumber,

		// Description
		"description":   FieldDescription,
		"desc":          FieldDescription,
		"componentname": FieldDescription,
		"component":     FieldDescription,
		"name":          FieldDescription,
		"item":          FieldDescription,

		// Category
		"category": FieldCategory,
		"type":     FieldCategory,
		"group":    FieldCategory,

		// Quantity
		"quantity":         FieldQuantity,
		"qty":              FieldQuantity,
		"quantityrequired": FieldQuantity,
		"qtyrequired":      FieldQuantity,
		"count":            FieldQuantity,
		"currentstock":     FieldQuantity,
		"stock":            FieldQuantity,

		// Unit of measure
		"unit": FieldUnit,
		"uom":  FieldUnit,
		"unitofmeasure": FieldUnit,

		// Unit cost
		"unitcost":  FieldUnitCost,
		"unitprice": FieldUnitCost,
		"cost":      FieldUnitCost,
		"price":     FieldUnitCost,
		"costeach":  FieldUnitCost,
		"priceeach": FieldUnitCost,

		// Supplier
		"supplier":     FieldSupplier,
		"vendor":       FieldSupplier,
		"manufacturer": FieldSupplier,
		"distributor":  FieldSupplier,

		// Lead time
		"leadtime":     FieldLeadTime,
		"leadtimedays": FieldLeadTime,

		// Distributor / manufacturer part numbers
		"digikeypn":            FieldDigikeyPN,
		"digikey":              FieldDigikeyPN,
		"digikeypartnumber":    FieldDigikeyPN,
		"mpn":                  FieldManufacturerPN,
		"manufacturerpn":       FieldManufacturerPN,
		"manufacturerpart":     FieldManufacturerPN,
		"manufacturerpartnumber": FieldManufacturerPN,
		"mfrpn":                FieldManufacturerPN,
		"mfgpn":                FieldManufacturerPN,

		// Stock floor
		"minstock":     FieldMinStock,
		"minimumstock": FieldMinStock,
		"reorderpoint": FieldMinStock,
		"minqty":       FieldMinStock,

		// Status
		"status":       FieldStatus,
		"availability": FieldStatus,
	}
}

// MergeSynonyms returns a copy of base extended with user-supplied label
// mappings. Extra keys are raw labels and get the same normalization as
// header cells; values must name canonical fields, unknown names are skipped.
func MergeSynonyms(base map[string]Field, extra map[string]string) map[string]Field {
	merged := make(map[string]Field, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for label, field := range extra {
		key := normalizeLabel(label)
		f := Field(field)
		if key == "" {
			continue
		}
		if _, ok := fieldKinds[f]; !ok {
			continue
		}
		merged[key] = f
	}
	return merged
}

// normalizeLabel reduces a raw header label to its compact lookup form:
// cleaned, lowercased, with whitespace and separator punctuation dropped.
// "Part Number", "part_number" and "P/N" become "partnumber" and "pn".
func normalizeLabel(label string) string {
	label = strings.ToLower(CleanCell(label))
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch r {
		case ' ', '\t', '_', '-', '.', '/', '#', ':', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// mapColumns resolves each header cell to a canonical field. The returned
// slice is positional: mapping[i] is the field for column i, or "" when the
// label is unrecognized. When two columns resolve to the same field the
// first one wins.
func mapColumns(header []string, synonyms map[string]Field) []Field {
	mapping := make([]Field, len(header))
	seen := make(map[Field]bool, len(header))

	for i, label := range header {
		key := normalizeLabel(label)
		if key == "" {
			continue
		}
		f, ok := synonyms[key]
		if !ok || seen[f] {
			continue
		}
		mapping[i] = f
		seen[f] = true
	}
	return mapping
}
