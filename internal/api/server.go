// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jafrlab/jafr/internal/analysis"
	"github.com/jafrlab/jafr/internal/common"
	"github.com/jafrlab/jafr/internal/llm"
	"github.com/jafrlab/jafr/internal/sqlite"
)

const serviceName = "نظام الجفر الذكي المتقدم"

type Server struct {
	router  chi.Router
	service *analysis.Service
	store   *sqlite.Store
	llmCfg  llm.Config
}

func NewServer(service *analysis.Service, store *sqlite.Store, llmCfg llm.Config) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("analysis service required")
	}
	srv := &Server{
		router:  chi.NewRouter(),
		service: service,
		store:   store,
		llmCfg:  llmCfg,
	}
	srv.routes()
	common.Logger().Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			next.ServeHTTP(w, r)
			logger.Debug("request", "id", requestID, "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/v1/jafr/analyze", s.handleAnalyze)
	s.router.Get("/v1/jafr/history", s.handleHistory)
	s.router.Get("/v1/jafr/analyses/{id}", s.handleAnalysisByID)
	s.router.Post("/v1/keys/test", s.handleKeyTest)
	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": common.LogEntries(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string, errs ...string) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "message", message)
	} else {
		logger.Warn("request failed", "status", status, "message", message, "errors", len(errs))
	}
	writeJSON(w, status, errorResponse{Message: message, Errors: errs})
}
