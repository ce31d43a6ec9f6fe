package core

import (
	"errors"
	"testing"
)

func TestSelectHeaderRow(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]string
		maxScan   int
		wantIndex int
		wantErr   error
	}{
		{
			name: "title and spacer rows before real header",
			rows: [][]string{
				{"Industrial Automation System Inventory"},
				{""},
				{"Part Number", "Description", "Quantity", "Cost"},
				{"R-001", "10K Resistor", "50", "0.12"},
			},
			wantIndex: 2,
		},
		{
			name: "header on first row",
			rows: [][]string{
				{"Part Number", "Description", "Qty"},
				{"C-1", "Ceramic cap", "10"},
			},
			wantIndex: 0,
		},
		{
			name: "tie prefers earlier row",
			rows: [][]string{
				{"Part Number", "Description"},
				{"Part Number", "Description"},
			},
			wantIndex: 0,
		},
		{
			name:    "empty input",
			rows:    nil,
			wantErr: ErrEmptyInput,
		},
		{
			name:    "all scanned rows blank",
			rows:    [][]string{{""}, {"", ""}, {" "}},
			wantErr: ErrNoHeaderFound,
		},
		{
			name: "header outside scan window is not found",
			rows: [][]string{
				{""}, {""},
				{"Part Number", "Description", "Quantity"},
			},
			maxScan: 2,
			wantErr: ErrNoHeaderFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectHeaderRow(tt.rows, tt.maxScan)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Index != tt.wantIndex {
				t.Errorf("header index = %d, want %d", got.Index, tt.wantIndex)
			}
		})
	}
}

func TestSelectHeaderRowDiagnostics(t *testing.T) {
	rows := [][]string{{""}, {"", ""}}

	_, err := SelectHeaderRow(rows, 5)

	var impErr *ImportError
	if !errors.As(err, &impErr) {
		t.Fatalf("expected *ImportError, got %T", err)
	}
	if len(impErr.Candidates) != 2 {
		t.Fatalf("expected 2 scored candidates, got %d", len(impErr.Candidates))
	}
	for i, c := range impErr.Candidates {
		if c.Index != i {
			t.Errorf("candidate %d has index %d", i, c.Index)
		}
		if c.Score != 0 {
			t.Errorf("blank row %d scored %d, want 0", i, c.Score)
		}
	}
}

func TestScoreHeaderRow(t *testing.T) {
	// Four keyword-bearing distinct cells: 2*4 + 5*4 + 3 + 5.
	row := []string{"Part Number", "Description", "Quantity", "Cost"}
	if got := scoreHeaderRow(row); got != 36 {
		t.Errorf("score = %d, want 36", got)
	}

	// Single title cell with a vocabulary word: 2*1 + 5*1.
	title := []string{"Industrial Automation System Inventory"}
	if got := scoreHeaderRow(title); got != 7 {
		t.Errorf("title score = %d, want 7", got)
	}
}
