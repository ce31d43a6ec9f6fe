// Package core implements the import and normalization engine for bill-of-materials
// data. It turns untrusted external input — delimited text, spreadsheet-derived cell
// matrices, and free-form component descriptions — into validated line items.
//
// The package is pure: it performs no I/O, holds no shared mutable state, and given
// the same input and vocabularies produces the same output every time. File reading,
// spreadsheet container decoding, persistence, and HTTP transport all live in
// sibling packages and hand this one plain in-memory data.
//
// # Pipeline
//
// Tabular input flows through three stages:
//
//  1. [TokenizeText] splits raw delimited text into rows of fields, honoring
//     CSV-style quoting. Spreadsheet input skips this stage (the sheet package
//     already yields a cell matrix).
//  2. [SelectHeaderRow] scores the first few rows and picks the most
//     header-like one, tolerating title rows and blank spacer rows.
//  3. [NormalizeRows] maps raw rows into [Item] records via the column synonym
//     table, reconciling row width and coercing types.
//
// Free-text input goes through [Extract], which recognizes quantities,
// component values, tolerances, ratings, suppliers, costs, and categories with
// deterministic pattern passes, and [Suggest], which ranks existing catalog
// entries by similarity to the input.
//
// # Failure semantics
//
// Ordinary dirt — bad quoting, short or long rows, unparseable numbers — never
// produces an error; the engine degrades to documented defaults and keeps
// going. Only three structural conditions halt processing: [ErrEmptyInput],
// [ErrNoHeaderFound], and [ErrNoDataRows]. Header failures carry per-row score
// diagnostics via [ImportError] so callers can show an actionable message.
package core
