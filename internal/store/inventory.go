package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const inventoryColumns = `part_number, description, category, current_stock,
	min_stock, unit, unit_cost, supplier, lead_time, digikey_pn,
	manufacturer_pn, status, last_updated`

func scanInventoryItem(row pgx.Row) (InventoryItem, error) {
	var it InventoryItem
	err := row.Scan(
		&it.PartNumber, &it.Description, &it.Category, &it.CurrentStock,
		&it.MinStock, &it.Unit, &it.UnitCost, &it.Supplier, &it.LeadTime,
		&it.DigikeyPN, &it.ManufacturerPN, &it.Status, &it.LastUpdated,
	)
	return it, err
}

// ListInventory returns inventory items, optionally filtered by category
// and status. Empty filter values match everything.
func (s *Store) ListInventory(ctx context.Context, category, status string) ([]InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY part_number`

	rows, err := s.db.Query(ctx, query, category, status)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	items := []InventoryItem{}
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetInventory returns a single item by part number.
func (s *Store) GetInventory(ctx context.Context, partNumber string) (InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE part_number = $1`

	it, err := scanInventoryItem(s.db.QueryRow(ctx, query, partNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return InventoryItem{}, ErrNotFound
	}
	if err != nil {
		return InventoryItem{}, fmt.Errorf("get inventory %q: %w", partNumber, err)
	}
	return it, nil
}

const upsertInventorySQL = `INSERT INTO inventory_items (
		part_number, description, category, current_stock, min_stock,
		unit, unit_cost, supplier, lead_time, digikey_pn,
		manufacturer_pn, status, last_updated
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
	ON CONFLICT (part_number) DO UPDATE SET
		description     = EXCLUDED.description,
		category        = EXCLUDED.category,
		current_stock   = EXCLUDED.current_stock,
		min_stock       = EXCLUDED.min_stock,
		unit            = EXCLUDED.unit,
		unit_cost       = EXCLUDED.unit_cost,
		supplier        = EXCLUDED.supplier,
		lead_time       = EXCLUDED.lead_time,
		digikey_pn      = EXCLUDED.digikey_pn,
		manufacturer_pn = EXCLUDED.manufacturer_pn,
		status          = EXCLUDED.status,
		last_updated    = NOW()`

// UpsertInventory inserts or replaces a single inventory item.
func (s *Store) UpsertInventory(ctx context.Context, it InventoryItem) error {
	_, err := s.db.Exec(ctx, upsertInventorySQL,
		it.PartNumber, it.Description, it.Category, it.CurrentStock,
		it.MinStock, it.Unit, it.UnitCost, it.Supplier, it.LeadTime,
		it.DigikeyPN, it.ManufacturerPN, it.Status,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory %q: %w", it.PartNumber, err)
	}
	return nil
}

// UpsertInventoryBatch writes a set of imported items in one round trip
// and returns the number persisted.
func (s *Store) UpsertInventoryBatch(ctx context.Context, items []InventoryItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(upsertInventorySQL,
			it.PartNumber, it.Description, it.Category, it.CurrentStock,
			it.MinStock, it.Unit, it.UnitCost, it.Supplier, it.LeadTime,
			it.DigikeyPN, it.ManufacturerPN, it.Status,
		)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for i := range items {
		if _, err := results.Exec(); err != nil {
			return i, fmt.Errorf("upsert inventory %q: %w", items[i].PartNumber, err)
		}
	}
	return len(items), nil
}

// UpdateStock sets the current stock level for a part.
func (s *Store) UpdateStock(ctx context.Context, partNumber string, newStock int) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE inventory_items
		 SET current_stock = $2, last_updated = NOW()
		 WHERE part_number = $1`,
		partNumber, newStock,
	)
	if err != nil {
		return fmt.Errorf("update stock %q: %w", partNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// LowStock returns every active item at or below its minimum stock level.
func (s *Store) LowStock(ctx context.Context) ([]LowStockItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT part_number, description, current_stock, min_stock,
		        min_stock - current_stock AS shortage, supplier, lead_time
		 FROM inventory_items
		 WHERE current_stock <= min_stock AND status = 'active'
		 ORDER BY shortage DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()

	items := []LowStockItem{}
	for rows.Next() {
		var it LowStockItem
		err := rows.Scan(&it.PartNumber, &it.Description, &it.CurrentStock,
			&it.MinStock, &it.Shortage, &it.Supplier, &it.LeadTime)
		if err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
