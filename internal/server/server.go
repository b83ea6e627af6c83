// Package server exposes the normalization pipeline over HTTP. It is a
// thin boundary: the body comes in, the pipeline runs, the artifact goes
// out. Nothing is persisted.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/relaylabs/relaylog/internal/format"
	"github.com/relaylabs/relaylog/internal/transcript"
)

// maxBodyBytes bounds request bodies; transcripts are held in memory.
const maxBodyBytes = 16 << 20

// Config holds server-specific configuration.
type Config struct {
	Addr string
}

// Server handles transcript ingestion requests.
type Server struct {
	logger *zap.Logger
}

// NewHTTPServer builds the chi router and wraps it in an http.Server.
func NewHTTPServer(cfg Config, logger *zap.Logger) *http.Server {
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: NewRouter(logger),
	}
}

// NewRouter builds the chi router serving the ingestion API.
func NewRouter(logger *zap.Logger) http.Handler {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/runs", s.handleCreateRun)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleCreateRun normalizes one transcript. A JSON body goes through the
// alternative ingestion path and fails with 400 on invalid JSON; anything
// else goes through the text pipeline, which never fails.
func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	var run *transcript.Run
	if isJSONRequest(r) {
		run, err = transcript.ParseJSON(body)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		run = transcript.Validate(transcript.Enrich(transcript.Parse(string(body))))
	}
	edges := transcript.Link(run)

	s.logger.Info("run normalized",
		zap.String("run_id", run.ID),
		zap.Int("events", len(run.Events)),
		zap.Int("edges", len(edges)),
		zap.Int("warnings", len(run.Warnings)),
	)

	out, err := format.CompactJSON(run, edges)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(out)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
