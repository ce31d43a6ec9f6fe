package store

import (
	"strings"
	"testing"
)

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.006, 1.01},
		{1.004, 1.0},
		{-2.006, -2.01},
		{12.3449, 12.34},
		{0, 0},
	}
	for _, tc := range cases {
		if got := roundCents(tc.in); got != tc.want {
			t.Errorf("roundCents(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSchemaCoversAllTables(t *testing.T) {
	for _, table := range []string{
		"inventory_items",
		"bom_templates",
		"bom_template_parts",
		"audit_log",
	} {
		if !strings.Contains(schemaSQL, table) {
			t.Errorf("schema.sql missing table %s", table)
		}
	}
}
