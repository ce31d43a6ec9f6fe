// Package web provides the HTTP server and JSON API for the BOM import
// service: inventory, BOM templates, and the import/parse endpoints that
// front the engine in internal/core.
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/partsbench/partsbench/internal/config"
	"github.com/partsbench/partsbench/internal/core"
	"github.com/partsbench/partsbench/internal/store"
	appmw "github.com/partsbench/partsbench/internal/web/middleware"
)

// Store is the persistence surface the handlers need. *store.Store
// satisfies it; tests substitute a fake.
type Store interface {
	ListInventory(ctx context.Context, category, status string) ([]store.InventoryItem, error)
	GetInventory(ctx context.Context, partNumber string) (store.InventoryItem, error)
	UpsertInventory(ctx context.Context, it store.InventoryItem) error
	UpsertInventoryBatch(ctx context.Context, items []store.InventoryItem) (int, error)
	UpdateStock(ctx context.Context, partNumber string, newStock int) error
	LowStock(ctx context.Context) ([]store.LowStockItem, error)

	ListTemplates(ctx context.Context) ([]store.TemplateSummary, error)
	GetTemplate(ctx context.Context, bomID string) (store.Template, error)
	CreateTemplate(ctx context.Context, name, description, version, createdBy string, parts []store.TemplatePart) (string, error)
	CheckAvailability(ctx context.Context, bomID string) (store.AvailabilityReport, error)

	LogAction(ctx context.Context, e store.AuditEntry) error
	RecentActions(ctx context.Context, limit int) ([]store.AuditRecord, error)
}

// Server is the HTTP server for the BOM import service.
type Server struct {
	store  Store
	cfg    *config.Config
	opts   core.Options
	router *chi.Mux
	server *http.Server
}

// NewServer wires the handlers to a store and configuration. The vocabulary
// is merged into the engine options once here, not per request.
func NewServer(st Store, cfg *config.Config, vocab *config.Vocabulary) *Server {
	s := &Server{
		store:  st,
		cfg:    cfg,
		opts:   buildOptions(cfg, vocab),
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(appmw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(appmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders)
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Health stays outside the API-key gate for load balancer probes.
		r.Get("/health", s.handleHealth)

		r.Group(func(r chi.Router) {
			r.Use(appmw.APIKeyAuth(&s.cfg.Security))

			// Inventory
			r.Get("/inventory", s.handleListInventory)
			r.Get("/inventory/low-stock", s.handleLowStock)
			r.Get("/inventory/{partNumber}", s.handleGetInventory)
			r.Post("/inventory", s.handleUpsertInventory)
			r.Put("/inventory/{partNumber}/stock", s.handleUpdateStock)

			// BOM templates
			r.Get("/bom/templates", s.handleListTemplates)
			r.Post("/bom/templates", s.handleCreateTemplate)
			r.Get("/bom/templates/{bomID}", s.handleGetTemplate)
			r.Get("/bom/templates/{bomID}/availability", s.handleCheckAvailability)

			// Import pipeline
			r.Post("/import/csv", s.handleImportCSV)
			r.Post("/import/sheet", s.handleImportSheet)
			r.Post("/import/parse", s.handleParse)

			// Audit log
			r.Get("/audit", s.handleAudit)
		})
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// buildOptions merges configuration and the optional vocabulary file over
// the engine defaults.
func buildOptions(cfg *config.Config, vocab *config.Vocabulary) core.Options {
	opts := core.DefaultOptions()
	opts.Delimiter = cfg.Import.DelimiterRune()
	opts.MaxHeaderScan = cfg.Import.HeaderScanRows
	opts.Weights = core.Weights{
		Quantity:  cfg.Parser.WeightQuantity,
		ValueSpec: cfg.Parser.WeightValueSpec,
		Tolerance: cfg.Parser.WeightTolerance,
		Rating:    cfg.Parser.WeightRating,
		Supplier:  cfg.Parser.WeightSupplier,
		Cost:      cfg.Parser.WeightCost,
		Category:  cfg.Parser.WeightCategory,
	}
	opts.SimilarityFloor = cfg.Parser.SimilarityFloor
	opts.MaxSuggestions = cfg.Parser.MaxSuggestions

	if vocab != nil {
		if len(vocab.Synonyms) > 0 {
			opts.Synonyms = core.MergeSynonyms(opts.Synonyms, vocab.Synonyms)
		}
		opts.Categories = vocab.Categories
		opts.Suppliers = vocab.Suppliers
	}
	return opts
}

// securityHeaders adds standard hardening headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
