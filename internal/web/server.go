// Package web serves the campaign editor: one form-driven page per tab
// over a single in-memory document, plus the import/export and schematic
// API endpoints.
package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/ports"
)

type Server struct {
	addr    string
	router  *http.ServeMux
	logger  *zap.Logger
	metrics ports.MetricsExporter
	files   ports.AttachmentStorage
	store   ports.DocumentStore
	docPath string // save target, empty when the session has no backing file

	// The editor holds exactly one document. Handlers take the lock for
	// the whole request so reads never see a half-applied edit.
	mu  sync.Mutex
	doc *campaign.Document
}

func NewServer(addr string, logger *zap.Logger, metrics ports.MetricsExporter, files ports.AttachmentStorage, store ports.DocumentStore, docPath string, doc *campaign.Document) *Server {
	s := &Server{
		addr:    addr,
		router:  http.NewServeMux(),
		logger:  logger,
		metrics: metrics,
		files:   files,
		store:   store,
		docPath: docPath,
		doc:     doc,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.HandleFunc("GET /", s.handleRoot)
	s.router.HandleFunc("GET /campaign", s.handleCampaign)
	s.router.HandleFunc("GET /circuits", s.handleCircuits)
	s.router.HandleFunc("GET /arms", s.handleArms)
	s.router.HandleFunc("GET /lagoons", s.handleLagoons)
	s.router.HandleFunc("GET /segments", s.handleSegments)
	s.router.HandleFunc("GET /analyses", s.handleAnalyses)
	s.router.HandleFunc("GET /attachments", s.handleAttachments)
	s.router.HandleFunc("GET /ontologies", s.handleOntologies)
	s.router.HandleFunc("GET /schematic", s.handleSchematic)
	s.router.HandleFunc("GET /validate", s.handleValidate)

	// Editor actions
	s.router.HandleFunc("POST /campaign/save", s.handleCampaignSave)
	s.router.HandleFunc("POST /circuits/add", s.handleCircuitAdd)
	s.router.HandleFunc("POST /arms/add", s.handleArmAdd)
	s.router.HandleFunc("POST /arms/timepoints/add", s.handleTimepointAdd)
	s.router.HandleFunc("POST /lagoons/add", s.handleLagoonAdd)
	s.router.HandleFunc("POST /lagoons/samples/add", s.handleSampleAdd)
	s.router.HandleFunc("POST /lagoons/libraries/add", s.handleLibraryAdd)
	s.router.HandleFunc("POST /lagoons/runs/add", s.handleRunAdd)
	s.router.HandleFunc("POST /segments/add", s.handleSegmentAdd)
	s.router.HandleFunc("POST /analyses/add", s.handleAnalysisAdd)
	s.router.HandleFunc("POST /attachments/add", s.handleAttachmentAdd)
	s.router.HandleFunc("POST /ontologies/set", s.handleOntologySet)
	s.router.HandleFunc("POST /sample/load", s.handleSampleLoad)
	s.router.HandleFunc("POST /reset", s.handleReset)
	s.router.HandleFunc("POST /save", s.handleSave)

	// API endpoints
	s.router.HandleFunc("POST /api/import", s.handleAPIImport)
	s.router.HandleFunc("GET /api/export/campaign", s.handleAPIExportCampaign)
	s.router.HandleFunc("GET /api/schematic.svg", s.handleAPISchematicSVG)
	s.router.HandleFunc("GET /api/schematic.json", s.handleAPISchematicJSON)
}

// Handler returns the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting campaign editor", zap.String("addr", s.addr))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", zap.Error(err))
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
