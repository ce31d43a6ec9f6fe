package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three structural failures that halt an import.
// Everything else (bad quoting, width mismatches, unparseable numbers) is
// absorbed locally via default values and never surfaces as an error.
var (
	// ErrEmptyInput indicates there was no text or no rows at all.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoHeaderFound indicates every scanned row scored zero during
	// header inference.
	ErrNoHeaderFound = errors.New("no header row found")

	// ErrNoDataRows indicates a header was found but nothing below it
	// survived normalization.
	ErrNoDataRows = errors.New("no data rows after header")
)

// ImportError wraps one of the sentinel errors with the scanned-row
// diagnostics collected while looking for a header, so callers can show the
// user which rows were considered and how they scored instead of a bare
// "import failed".
type ImportError struct {
	Err        error
	Candidates []HeaderCandidate
}

func (e *ImportError) Error() string {
	if len(e.Candidates) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (scanned %d rows)", e.Err, len(e.Candidates))
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// newImportError builds an ImportError around a sentinel.
func newImportError(sentinel error, candidates []HeaderCandidate) *ImportError {
	return &ImportError{Err: sentinel, Candidates: candidates}
}
