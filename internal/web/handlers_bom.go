package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/partsbench/partsbench/internal/store"
)

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.store.ListTemplates(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(templates),
		"templates": templates,
	})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := s.store.GetTemplate(r.Context(), chi.URLParam(r, "bomID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CreateTemplateRequest is the body of POST /api/bom/templates.
type CreateTemplateRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Version     string               `json:"version"`
	CreatedBy   string               `json:"createdBy"`
	Parts       []store.TemplatePart `json:"parts"`
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if err := decodeJSON(r, &req, s.cfg.Import.MaxFileSize); err != nil {
		s.respondBadRequest(w, r, "invalid JSON body: "+err.Error())
		return
	}
	if req.Name == "" {
		s.respondBadRequest(w, r, "name is required")
		return
	}
	if len(req.Parts) == 0 {
		s.respondBadRequest(w, r, "parts must not be empty")
		return
	}
	if req.Version == "" {
		req.Version = "1.0"
	}

	bomID, err := s.store.CreateTemplate(r.Context(),
		req.Name, req.Description, req.Version, req.CreatedBy, req.Parts)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.audit(r, store.AuditEntry{
		Action:     "create_template",
		EntityType: "bom_template",
		EntityID:   bomID,
		Details:    map[string]any{"name": req.Name, "parts": len(req.Parts)},
		UserID:     req.CreatedBy,
		Success:    true,
	})
	writeJSON(w, http.StatusCreated, map[string]any{"bomId": bomID})
}

func (s *Server) handleCheckAvailability(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.CheckAvailability(r.Context(), chi.URLParam(r, "bomID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
