package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/partsbench/partsbench/internal/store"
)

func (s *Server) handleListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListInventory(r.Context(),
		r.URL.Query().Get("category"),
		r.URL.Query().Get("status"),
	)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(items),
		"items": items,
	})
}

func (s *Server) handleGetInventory(w http.ResponseWriter, r *http.Request) {
	it, err := s.store.GetInventory(r.Context(), chi.URLParam(r, "partNumber"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleUpsertInventory(w http.ResponseWriter, r *http.Request) {
	var it store.InventoryItem
	if err := decodeJSON(r, &it, s.cfg.Import.MaxFileSize); err != nil {
		s.respondBadRequest(w, r, "invalid JSON body: "+err.Error())
		return
	}
	if it.PartNumber == "" {
		s.respondBadRequest(w, r, "partNumber is required")
		return
	}
	if it.Status == "" {
		it.Status = "active"
	}

	if err := s.store.UpsertInventory(r.Context(), it); err != nil {
		s.respondError(w, r, err)
		return
	}

	s.audit(r, store.AuditEntry{
		Action:     "upsert_item",
		EntityType: "inventory",
		EntityID:   it.PartNumber,
		Success:    true,
	})
	writeJSON(w, http.StatusCreated, it)
}

// StockUpdateRequest is the body of PUT /api/inventory/{partNumber}/stock.
type StockUpdateRequest struct {
	CurrentStock int `json:"currentStock"`
}

func (s *Server) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	partNumber := chi.URLParam(r, "partNumber")

	var req StockUpdateRequest
	if err := decodeJSON(r, &req, 1<<16); err != nil {
		s.respondBadRequest(w, r, "invalid JSON body: "+err.Error())
		return
	}
	if req.CurrentStock < 0 {
		s.respondBadRequest(w, r, "currentStock must not be negative")
		return
	}

	if err := s.store.UpdateStock(r.Context(), partNumber, req.CurrentStock); err != nil {
		s.respondError(w, r, err)
		return
	}

	s.audit(r, store.AuditEntry{
		Action:     "update_stock",
		EntityType: "inventory",
		EntityID:   partNumber,
		Details:    map[string]any{"currentStock": req.CurrentStock},
		Success:    true,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"partNumber":   partNumber,
		"currentStock": req.CurrentStock,
	})
}

func (s *Server) handleLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.LowStock(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(items),
		"items": items,
	})
}
