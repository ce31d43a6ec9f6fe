package core

// header.go locates the true header row inside tabular data.
//
// Imported sheets frequently carry a title row, a blank spacer row, or a
// merged-cell artifact above the real header, so "row zero is the header"
// silently mis-imports them. Instead each of the first few rows is scored on
// how header-like it looks and the best row wins. This replaces the fallback
// retry chain some importers use: one scoring pass handles the title-row case
// directly.

import "strings"

// headerKeywords is the vocabulary of words that suggest a cell is a column
// label rather than data.
var headerKeywords = []string{
	"part", "number", "description", "component", "quantity", "qty",
	"cost", "price", "supplier", "vendor", "category", "type",
	"stock", "inventory", "unit", "lead", "status", "manufacturer",
}

// SelectHeaderRow scans the first maxScan rows (default 5) and returns the
// row that scores highest as a header, preferring earlier rows on ties. It
// returns ErrEmptyInput when rows is empty and ErrNoHeaderFound — wrapped in
// an [ImportError] carrying the scored candidates — when every scanned row
// scores zero.
func SelectHeaderRow(rows [][]string, maxScan int) (HeaderCandidate, error) {
	if len(rows) == 0 {
		return HeaderCandidate{}, newImportError(ErrEmptyInput, nil)
	}

	if maxScan <= 0 {
		maxScan = 5
	}
	if maxScan > len(rows) {
		maxScan = len(rows)
	}

	candidates := make([]HeaderCandidate, 0, maxScan)
	best := HeaderCandidate{Index: -1}

	for i := 0; i < maxScan; i++ {
		c := HeaderCandidate{Index: i, Row: rows[i], Score: scoreHeaderRow(rows[i])}
		candidates = append(candidates, c)
		if c.Score > best.Score {
			best = c
		}
	}

	if best.Index < 0 || best.Score == 0 {
		return HeaderCandidate{}, newImportError(ErrNoHeaderFound, candidates)
	}
	return best, nil
}

// scoreHeaderRow computes the header likelihood of one row:
//
//	2 x non-empty cells
//	5 x cells containing a header keyword
//	3   if the row holds more than one distinct value
//	5   if the row has at least two non-empty cells
func scoreHeaderRow(row []string) int {
	nonEmpty := 0
	keywordCells := 0
	distinct := make(map[string]struct{})

	for _, cell := range row {
		v := strings.ToLower(CleanCell(cell))
		if v == "" {
			continue
		}
		nonEmpty++
		distinct[v] = struct{}{}
		for _, kw := range headerKeywords {
			if strings.Contains(v, kw) {
				keywordCells++
				break
			}
		}
	}

	score := 2*nonEmpty + 5*keywordCells
	if len(distinct) > 1 {
		score += 3
	}
	if nonEmpty >= 2 {
		score += 5
	}
	return score
}
