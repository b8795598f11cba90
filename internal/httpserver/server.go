package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/fdg312/workout-helper/internal/advisor"
	"github.com/fdg312/workout-helper/internal/ai"
	"github.com/fdg312/workout-helper/internal/config"
	"github.com/fdg312/workout-helper/internal/sheets"
)

// analyzer is the slice of the advisor service the handlers need.
type analyzer interface {
	Analyze(ctx context.Context) (*advisor.Result, error)
}

// Server serves the one-button UI and the analyze endpoint.
type Server struct {
	config   *config.Config
	mux      *http.ServeMux
	provider ai.Provider

	// newAnalyzer is rebuilt per request so every run re-authenticates
	// against Google Sheets; overridable in tests.
	newAnalyzer func(ctx context.Context) (analyzer, error)
}

// New creates the HTTP server and registers routes.
func New(cfg *config.Config) *Server {
	s := &Server{
		config:   cfg,
		mux:      http.NewServeMux(),
		provider: ai.NewProvider(cfg),
	}
	s.newAnalyzer = s.buildAnalyzer
	s.routes()
	return s
}

func (s *Server) routes() {
	// GET / - the one-button page
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	// GET /healthz - health check
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	// POST /v1/analyze - run the full read → advise → write pipeline
	s.mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
}

// buildAnalyzer wires a fresh Sheets client into the pipeline. No client
// state survives between invocations.
func (s *Server) buildAnalyzer(ctx context.Context) (analyzer, error) {
	if err := s.config.RequireGoogle(); err != nil {
		return nil, err
	}
	client, err := sheets.NewClient(ctx, s.config.Google)
	if err != nil {
		return nil, err
	}
	return advisor.NewService(client, s.provider, s.config), nil
}

// handleAnalyze runs one synchronous pipeline cycle. All pipeline errors
// are caught here, converted to a displayed message, and the run aborts;
// there is no partial-result response and no retry.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	svc, err := s.newAnalyzer(r.Context())
	if err != nil {
		writeError(w, http.StatusBadRequest, "config_error", err.Error())
		return
	}

	result, err := svc.Analyze(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "pipeline_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleHealthz returns the server status.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Start runs the HTTP server with the middleware chain
// CORS → Rate Limit → Router.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	var handler http.Handler = s.mux
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)

	log.Printf("Server listening on http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)

	return http.ListenAndServe(addr, handler)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
