package web

// errors.go maps engine and store failures onto JSON error responses.
//
// Every error path logs the technical detail server-side with the request
// id, and returns a stable machine-readable code plus a human message with
// a suggested action. Header inference failures additionally carry the
// scored candidate rows so a client can show the user what was considered.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/partsbench/partsbench/internal/core"
	"github.com/partsbench/partsbench/internal/logging"
	"github.com/partsbench/partsbench/internal/sheet"
	"github.com/partsbench/partsbench/internal/store"
)

// ErrorResponse is the JSON shape of every error the API returns.
type ErrorResponse struct {
	Error      string                 `json:"error"`
	Message    string                 `json:"message"`
	Action     string                 `json:"action,omitempty"`
	Code       string                 `json:"code"`
	Candidates []core.HeaderCandidate `json:"candidates,omitempty"`
}

// mapError translates an error into an HTTP status and response body.
func mapError(err error) (int, ErrorResponse) {
	var resp ErrorResponse
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrEmptyInput):
		status = http.StatusBadRequest
		resp = ErrorResponse{
			Message: "The input was empty.",
			Action:  "Provide a file or text body with at least one row.",
			Code:    "IMPORT_EMPTY_INPUT",
		}
	case errors.Is(err, core.ErrNoHeaderFound):
		status = http.StatusUnprocessableEntity
		resp = ErrorResponse{
			Message: "No header row could be identified in the leading rows.",
			Action:  "Check that the file has a column header row near the top.",
			Code:    "IMPORT_NO_HEADER",
		}
	case errors.Is(err, core.ErrNoDataRows):
		status = http.StatusUnprocessableEntity
		resp = ErrorResponse{
			Message: "A header row was found but no data rows followed it.",
			Action:  "Check that the file has line items below the header.",
			Code:    "IMPORT_NO_DATA_ROWS",
		}
	case errors.Is(err, sheet.ErrNoSheets):
		status = http.StatusUnprocessableEntity
		resp = ErrorResponse{
			Message: "The workbook has no sheet with any data.",
			Action:  "Check that the spreadsheet is not empty.",
			Code:    "SHEET_EMPTY",
		}
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
		resp = ErrorResponse{
			Message: "The requested record does not exist.",
			Code:    "NOT_FOUND",
		}
	default:
		resp = ErrorResponse{
			Message: "An unexpected error occurred.",
			Action:  "Try again, and contact support if the problem persists.",
			Code:    "INTERNAL",
		}
	}
	resp.Error = resp.Message

	var importErr *core.ImportError
	if errors.As(err, &importErr) {
		resp.Candidates = importErr.Candidates
	}
	return status, resp
}

// respondError logs the technical error and writes the mapped JSON response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := mapError(err)

	logger := logging.FromContext(r.Context())
	logger.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", resp.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	writeJSON(w, status, resp)
}

// respondBadRequest reports a malformed request without an engine error to map.
func (s *Server) respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	logger := logging.FromContext(r.Context())
	logger.Warn("bad request",
		"path", r.URL.Path,
		"method", r.Method,
		"detail", message,
	)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   message,
		Message: message,
		Code:    "BAD_REQUEST",
	})
}

// writeJSON encodes v with the given status. Encoding failures are logged
// since the header is already out.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

// decodeJSON reads a bounded JSON request body into dst.
func decodeJSON(r *http.Request, dst any, maxBytes int64) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
