package store

import "time"

// InventoryItem is one row of the inventory_items table.
type InventoryItem struct {
	PartNumber     string    `json:"partNumber"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	CurrentStock   int       `json:"currentStock"`
	MinStock       int       `json:"minStock"`
	Unit           string    `json:"unit"`
	UnitCost       float64   `json:"unitCost"`
	Supplier       string    `json:"supplier"`
	LeadTime       int       `json:"leadTime"`
	DigikeyPN      string    `json:"digikeyPN"`
	ManufacturerPN string    `json:"manufacturerPN"`
	Status         string    `json:"status"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// LowStockItem is an inventory item whose current stock has fallen to or
// below its minimum, with the shortage precomputed.
type LowStockItem struct {
	PartNumber   string `json:"partNumber"`
	Description  string `json:"description"`
	CurrentStock int    `json:"currentStock"`
	MinStock     int    `json:"minStock"`
	Shortage     int    `json:"shortage"`
	Supplier     string `json:"supplier"`
	LeadTime     int    `json:"leadTime"`
}

// TemplateSummary is a BOM template header with its part count.
type TemplateSummary struct {
	BomID              string    `json:"bomId"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Version            string    `json:"version"`
	Status             string    `json:"status"`
	PartCount          int       `json:"partCount"`
	TotalEstimatedCost float64   `json:"totalEstimatedCost"`
	CreatedAt          time.Time `json:"createdAt"`
}

// TemplatePart is one line of a BOM template.
type TemplatePart struct {
	PartNumber       string  `json:"partNumber"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	QuantityRequired int     `json:"quantityRequired"`
	UnitCost         float64 `json:"unitCost"`
	TotalCost        float64 `json:"totalCost"`
	Supplier         string  `json:"supplier"`
	DigikeyPN        string  `json:"digikeyPN"`
}

// Template is a BOM template with its parts expanded.
type Template struct {
	TemplateSummary
	Parts []TemplatePart `json:"parts"`
}

// AvailabilityLine reports whether inventory can cover one BOM part.
// Status is "available", "partial" (some stock, not enough), or
// "unavailable" (none at all).
type AvailabilityLine struct {
	PartNumber       string `json:"partNumber"`
	Description      string `json:"description"`
	QuantityRequired int    `json:"quantityRequired"`
	CurrentStock     int    `json:"currentStock"`
	Available        bool   `json:"available"`
	Status           string `json:"status"`
	Shortage         int    `json:"shortage"`
}

// AvailabilityReport summarizes an availability check across a template.
type AvailabilityReport struct {
	BomID        string             `json:"bomId"`
	CanBuild     bool               `json:"canBuild"`
	MissingParts int                `json:"missingParts"`
	Lines        []AvailabilityLine `json:"lines"`
}

// AuditEntry is one action recorded in the audit log.
type AuditEntry struct {
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Details    map[string]any `json:"details,omitempty"`
	UserID     string         `json:"userId"`
	Success    bool           `json:"success"`
}
