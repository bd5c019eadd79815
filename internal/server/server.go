// Package server exposes the annotation pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/nlu"
	"github.com/clauselens/clauselens/internal/pipeline"
)

// Server serves the analysis API.
type Server struct {
	analyzer *pipeline.Analyzer
	nlu      *nlu.Service
	logger   *zap.Logger
	config   *model.Config
	http     *http.Server
}

// New creates a server over the given analyzer and NLU service.
func New(cfg *model.Config, analyzer *pipeline.Analyzer, nluService *nlu.Service, logger *zap.Logger) *Server {
	s := &Server{
		analyzer: analyzer,
		nlu:      nluService,
		logger:   logger,
		config:   cfg,
	}

	router := mux.NewRouter()
	router.Use(s.requestLogging)

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/api/analyze", s.handleAnalyze).Methods(http.MethodPost)
	router.HandleFunc("/api/compare", s.handleCompare).Methods(http.MethodPost)
	router.HandleFunc("/api/upload", s.handleUpload).Methods(http.MethodPost)
	router.HandleFunc("/api/nlu", s.handleNLU).Methods(http.MethodPost)

	s.http = &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// ListenAndServe starts serving until the listener fails or Shutdown is
// called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", zap.String("addr", s.config.HTTP.Addr))
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
