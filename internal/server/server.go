// Package server provides the local HTTP API the editor UI talks to:
// document state, pagination flags, preview box trees and exports.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jmallet/cv-builder/internal/document"
	"github.com/jmallet/cv-builder/internal/preview"
	"github.com/jmallet/cv-builder/internal/storage"
	"github.com/jmallet/cv-builder/internal/types"
)

// Server owns the live document and its persistence.
type Server struct {
	httpServer *http.Server
	store      *storage.Store
	autosave   *storage.Autosave
	preview    *preview.Host

	mu  sync.RWMutex
	doc *types.CVDocument
}

// Config holds server configuration
type Config struct {
	Addr          string
	Store         *storage.Store
	AutosaveDelay time.Duration
	PreviewDelay  time.Duration
}

// New creates a new server instance. The stored document is loaded if
// present; otherwise the server starts from a fresh default.
func New(cfg Config) (*Server, error) {
	doc, err := cfg.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if doc == nil {
		doc = document.New()
	}

	s := &Server{
		store: cfg.Store,
		doc:   doc,
	}
	s.autosave = storage.NewAutosave(cfg.Store, cfg.AutosaveDelay, func(err error) {
		log.Printf("autosave failed: %v", err)
	})
	s.preview = preview.NewHost(cfg.PreviewDelay, nil)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF prints can be slow
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document state
	mux.HandleFunc("GET /document", s.handleGetDocument)
	mux.HandleFunc("PUT /document", s.handlePutDocument)
	mux.HandleFunc("DELETE /document", s.handleDeleteDocument)

	// Pagination controls
	mux.HandleFunc("PATCH /document/section-start", s.handleSectionStart)
	mux.HandleFunc("PATCH /document/item-break", s.handleItemBreak)
	mux.HandleFunc("POST /document/reset-breaks", s.handleResetBreaks)
	mux.HandleFunc("PATCH /document/order", s.handleSectionOrder)

	// Rendering
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("PATCH /document/template", s.handleSetTemplate)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /export/html", s.handleExportHTML)
	mux.HandleFunc("GET /export/pdf", s.handleExportPDF)
	return mux
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Flush the last pending edit before exit.
	s.autosave.Close()
	s.preview.Close()
	log.Println("Server stopped")
	return nil
}

// current returns the live snapshot.
func (s *Server) current() *types.CVDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// replace installs a new snapshot and schedules persistence.
func (s *Server) replace(doc *types.CVDocument) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	s.autosave.Notify(doc)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
