package web

// handlers_import.go serves the import pipeline: delimited text, spreadsheet
// workbooks, and free-text parsing. All three endpoints accept the upload,
// run the engine, and optionally persist the normalized items when the
// caller passes ?persist=true.

import (
	"io"
	"net/http"
	"strings"

	"github.com/partsbench/partsbench/internal/core"
	"github.com/partsbench/partsbench/internal/logging"
	"github.com/partsbench/partsbench/internal/sheet"
	"github.com/partsbench/partsbench/internal/store"
)

// ImportResponse reports the outcome of a CSV or sheet import.
type ImportResponse struct {
	HeaderRowIndex int         `json:"headerRowIndex"`
	Header         []string    `json:"header"`
	Count          int         `json:"count"`
	Items          []core.Item `json:"items"`
	Persisted      int         `json:"persisted"`
}

// ParseRequest is the body of POST /api/parse.
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseResponse carries the extraction result and catalog suggestions.
type ParseResponse struct {
	Result      core.ParseResult  `json:"result"`
	Suggestions []core.Suggestion `json:"suggestions"`
}

func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := s.readUpload(w, r)
	if err != nil {
		s.respondBadRequest(w, r, "could not read upload: "+err.Error())
		return
	}

	opts := s.requestOptions(r)
	text := string(data)
	if strings.TrimSpace(text) == "" {
		s.respondError(w, r, core.ErrEmptyInput)
		return
	}

	rows := core.TokenizeText(text, opts.Delimiter)
	s.finishImport(w, r, rows, opts, "import_csv")
}

func (s *Server) handleImportSheet(w http.ResponseWriter, r *http.Request) {
	data, err := s.readUpload(w, r)
	if err != nil {
		s.respondBadRequest(w, r, "could not read upload: "+err.Error())
		return
	}
	if len(data) == 0 {
		s.respondError(w, r, core.ErrEmptyInput)
		return
	}

	rows, err := sheet.ToMatrix(data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.finishImport(w, r, rows, s.requestOptions(r), "import_sheet")
}

// finishImport runs header inference and normalization over a decoded row
// matrix, persists when requested, and writes the response.
func (s *Server) finishImport(w http.ResponseWriter, r *http.Request, rows [][]string, opts core.Options, action string) {
	header, err := core.SelectHeaderRow(rows, opts.MaxHeaderScan)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	items, err := core.NormalizeRows(header.Row, rows[header.Index+1:], opts)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := ImportResponse{
		HeaderRowIndex: header.Index,
		Header:         header.Row,
		Count:          len(items),
		Items:          items,
	}

	if r.URL.Query().Get("persist") == "true" {
		records := make([]store.InventoryItem, len(items))
		for i, it := range items {
			records[i] = itemToRecord(it)
		}

		n, err := s.store.UpsertInventoryBatch(r.Context(), records)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		resp.Persisted = n

		s.audit(r, store.AuditEntry{
			Action:     action,
			EntityType: "inventory",
			Details:    map[string]any{"rows": len(items), "persisted": n},
			Success:    true,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := decodeJSON(r, &req, s.cfg.Import.MaxFileSize); err != nil {
		s.respondBadRequest(w, r, "invalid JSON body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.respondBadRequest(w, r, "text must not be empty")
		return
	}

	result := core.Extract(req.Text, s.opts)

	// Suggestions run against the live inventory as the catalog.
	inventory, err := s.store.ListInventory(r.Context(), "", "")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	catalog := make([]core.CatalogItem, len(inventory))
	for i, it := range inventory {
		catalog[i] = core.CatalogItem{
			PartNumber:  it.PartNumber,
			Description: it.Description,
			Category:    it.Category,
		}
	}

	writeJSON(w, http.StatusOK, ParseResponse{
		Result:      result,
		Suggestions: core.Suggest(req.Text, catalog, s.opts),
	})
}

// readUpload returns the request payload, from the "file" part of a
// multipart form when present, otherwise the raw body. Size is bounded by
// the configured import limit either way.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize)

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(s.cfg.Import.MaxFileSize); err != nil {
			return nil, err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return io.ReadAll(file)
	}
	return io.ReadAll(r.Body)
}

// requestOptions returns the engine options with any per-request overrides
// applied. ?delimiter= accepts a literal character or the word "tab".
func (s *Server) requestOptions(r *http.Request) core.Options {
	opts := s.opts
	if d := r.URL.Query().Get("delimiter"); d != "" {
		if d == "tab" {
			opts.Delimiter = '\t'
		} else if runes := []rune(d); len(runes) == 1 {
			opts.Delimiter = runes[0]
		}
	}
	return opts
}

// itemToRecord converts a normalized import item into its inventory record.
// Imported stock starts at the imported quantity.
func itemToRecord(it core.Item) store.InventoryItem {
	status := it.Status
	if status == "" {
		status = "active"
	}
	return store.InventoryItem{
		PartNumber:     it.PartNumber,
		Description:    it.Description,
		Category:       it.Category,
		CurrentStock:   it.Quantity,
		MinStock:       it.MinStock,
		Unit:           it.Unit,
		UnitCost:       it.UnitCost,
		Supplier:       it.Supplier,
		LeadTime:       it.LeadTime,
		DigikeyPN:      it.DigikeyPN,
		ManufacturerPN: it.ManufacturerPN,
		Status:         status,
	}
}

// audit records an action, logging rather than failing the request when the
// audit write itself fails.
func (s *Server) audit(r *http.Request, e store.AuditEntry) {
	if e.UserID == "" {
		e.UserID = r.RemoteAddr
	}
	if err := s.store.LogAction(r.Context(), e); err != nil {
		logging.FromContext(r.Context()).Warn("audit write failed",
			"action", e.Action, "error", err)
	}
}
