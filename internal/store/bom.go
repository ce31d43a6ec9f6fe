package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListTemplates returns all BOM template headers with their part counts.
func (s *Store) ListTemplates(ctx context.Context) ([]TemplateSummary, error) {
	rows, err := s.db.Query(ctx,
		`SELECT t.bom_id, t.name, t.description, t.version, t.status,
		        COUNT(p.part_number) AS part_count,
		        t.total_estimated_cost, t.created_at
		 FROM bom_templates t
		 LEFT JOIN bom_template_parts p ON p.bom_id = t.bom_id
		 GROUP BY t.bom_id, t.name, t.description, t.version, t.status,
		          t.total_estimated_cost, t.created_at
		 ORDER BY t.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	templates := []TemplateSummary{}
	for rows.Next() {
		var t TemplateSummary
		err := rows.Scan(&t.BomID, &t.Name, &t.Description, &t.Version,
			&t.Status, &t.PartCount, &t.TotalEstimatedCost, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// GetTemplate returns one template with its parts expanded.
func (s *Store) GetTemplate(ctx context.Context, bomID string) (Template, error) {
	var t Template
	err := s.db.QueryRow(ctx,
		`SELECT bom_id, name, description, version, status,
		        total_estimated_cost, created_at
		 FROM bom_templates WHERE bom_id = $1`,
		bomID,
	).Scan(&t.BomID, &t.Name, &t.Description, &t.Version, &t.Status,
		&t.TotalEstimatedCost, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Template{}, ErrNotFound
	}
	if err != nil {
		return Template{}, fmt.Errorf("get template %q: %w", bomID, err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT part_number, description, category, quantity_required,
		        unit_cost, total_cost, supplier, digikey_pn
		 FROM bom_template_parts
		 WHERE bom_id = $1
		 ORDER BY part_number`,
		bomID,
	)
	if err != nil {
		return Template{}, fmt.Errorf("get template parts %q: %w", bomID, err)
	}
	defer rows.Close()

	t.Parts = []TemplatePart{}
	for rows.Next() {
		var p TemplatePart
		err := rows.Scan(&p.PartNumber, &p.Description, &p.Category,
			&p.QuantityRequired, &p.UnitCost, &p.TotalCost,
			&p.Supplier, &p.DigikeyPN)
		if err != nil {
			return Template{}, fmt.Errorf("scan template part: %w", err)
		}
		t.Parts = append(t.Parts, p)
	}
	t.PartCount = len(t.Parts)
	return t, rows.Err()
}

// CreateTemplate stores a new BOM template and its parts in one
// transaction and returns the generated BOM id. Line and total costs are
// recomputed here, never taken from the caller.
func (s *Store) CreateTemplate(ctx context.Context, name, description, version, createdBy string, parts []TemplatePart) (string, error) {
	bomID := "BOM-" + uuid.NewString()[:8]

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin create template: %w", err)
	}
	defer tx.Rollback(ctx)

	total := 0.0
	for i := range parts {
		parts[i].TotalCost = roundCents(float64(parts[i].QuantityRequired) * parts[i].UnitCost)
		total += parts[i].TotalCost
	}
	total = roundCents(total)

	_, err = tx.Exec(ctx,
		`INSERT INTO bom_templates (
			bom_id, name, description, version, status,
			total_estimated_cost, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, 'active', $5, $6, NOW(), NOW())`,
		bomID, name, description, version, total, createdBy,
	)
	if err != nil {
		return "", fmt.Errorf("insert template: %w", err)
	}

	for _, p := range parts {
		_, err = tx.Exec(ctx,
			`INSERT INTO bom_template_parts (
				bom_id, part_number, description, category,
				quantity_required, unit_cost, total_cost, supplier, digikey_pn
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			bomID, p.PartNumber, p.Description, p.Category,
			p.QuantityRequired, p.UnitCost, p.TotalCost, p.Supplier, p.DigikeyPN,
		)
		if err != nil {
			return "", fmt.Errorf("insert template part %q: %w", p.PartNumber, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit create template: %w", err)
	}
	return bomID, nil
}

// CheckAvailability compares a template's requirements against current
// inventory and reports what is missing.
func (s *Store) CheckAvailability(ctx context.Context, bomID string) (AvailabilityReport, error) {
	t, err := s.GetTemplate(ctx, bomID)
	if err != nil {
		return AvailabilityReport{}, err
	}

	report := AvailabilityReport{BomID: bomID, CanBuild: true, Lines: []AvailabilityLine{}}
	for _, p := range t.Parts {
		stock := 0
		err := s.db.QueryRow(ctx,
			`SELECT current_stock FROM inventory_items WHERE part_number = $1`,
			p.PartNumber,
		).Scan(&stock)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return AvailabilityReport{}, fmt.Errorf("check availability %q: %w", p.PartNumber, err)
		}

		line := AvailabilityLine{
			PartNumber:       p.PartNumber,
			Description:      p.Description,
			QuantityRequired: p.QuantityRequired,
			CurrentStock:     stock,
			Available:        stock >= p.QuantityRequired,
			Status:           availabilityStatus(stock, p.QuantityRequired),
		}
		if !line.Available {
			line.Shortage = p.QuantityRequired - stock
			report.CanBuild = false
			report.MissingParts++
		}
		report.Lines = append(report.Lines, line)
	}
	return report, nil
}

func availabilityStatus(stock, required int) string {
	switch {
	case stock >= required:
		return "available"
	case stock > 0:
		return "partial"
	default:
		return "unavailable"
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
