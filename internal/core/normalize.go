package core

// normalize.go maps raw rows below a chosen header into fixed-schema items.
//
// Width mismatches are reconciled, never fatal: short rows are padded with
// empty cells and long rows lose their trailing extras, so no row is dropped
// purely because its width disagrees with the header. The one legitimate skip
// is a row that is blank across every mapped column — that is a spacer, not
// data.

// NormalizeRows converts dataRows into items using the header's column
// mapping. Quantity coercion failures default to 1, cost failures to 0, and
// ExtendedCost is always recomputed. Returns ErrNoDataRows when nothing
// survives.
func NormalizeRows(header []string, dataRows [][]string, opts Options) ([]Item, error) {
	mapping := mapColumns(header, opts.synonyms())

	items := make([]Item, 0, len(dataRows))
	for _, row := range dataRows {
		row = fitWidth(row, len(header))
		if item, ok := normalizeRow(row, mapping); ok {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return nil, newImportError(ErrNoDataRows, nil)
	}
	return items, nil
}

// fitWidth pads row with empty cells or truncates trailing extras so its
// length equals width.
func fitWidth(row []string, width int) []string {
	switch {
	case len(row) == width:
		return row
	case len(row) > width:
		return row[:width]
	default:
		padded := make([]string, width)
		copy(padded, row)
		return padded
	}
}

// normalizeRow assigns mapped cells into canonical fields and coerces types.
// Reports ok=false for rows that are blank across every mapped column.
func normalizeRow(row []string, mapping []Field) (Item, bool) {
	item := Item{Quantity: 1}
	hasContent := false

	for i, field := range mapping {
		if field == "" {
			continue
		}
		raw := CleanCell(row[i])
		if raw == "" {
			continue
		}
		hasContent = true

		switch field {
		case FieldPartNumber:
			item.PartNumber = raw
		case FieldDescription:
			item.Description = raw
		case FieldCategory:
			item.Category = raw
		case FieldQuantity:
			if n, ok := ParseQuantity(raw); ok {
				item.Quantity = n
			}
		case FieldUnit:
			item.Unit = raw
		case FieldUnitCost:
			if v, ok := ParseMoney(raw); ok {
				item.UnitCost = v
			}
		case FieldSupplier:
			item.Supplier = raw
		case FieldLeadTime:
			if n, ok := ParseQuantity(raw); ok {
				item.LeadTime = n
			}
		case FieldDigikeyPN:
			item.DigikeyPN = raw
		case FieldManufacturerPN:
			item.ManufacturerPN = raw
		case FieldMinStock:
			if n, ok := ParseQuantity(raw); ok {
				item.MinStock = n
			}
		case FieldStatus:
			item.Status = raw
		}
	}

	item.ExtendedCost = RoundCents(float64(item.Quantity) * item.UnitCost)
	return item, hasContent
}
