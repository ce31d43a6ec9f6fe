package core

import "strings"

// pipeline.go ties the stages together for the two tabular input shapes the
// engine accepts: raw delimited text and an already-decoded cell matrix.

// ImportText runs the full pipeline on raw delimited text: tokenize, locate
// the header, normalize everything below it.
func ImportText(text string, opts Options) ([]Item, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newImportError(ErrEmptyInput, nil)
	}
	rows := TokenizeText(text, opts.delimiter())
	return ImportMatrix(rows, opts)
}

// ImportMatrix runs header inference and normalization on a cell matrix, as
// produced by the tokenizer or by an external sheet decoder.
func ImportMatrix(rows [][]string, opts Options) ([]Item, error) {
	header, err := SelectHeaderRow(rows, opts.maxHeaderScan())
	if err != nil {
		return nil, err
	}
	return NormalizeRows(header.Row, rows[header.Index+1:], opts)
}
