// Package api exposes the command engine over HTTP for the conversational
// frontend.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"verse-trader/internal/command"
)

// Server is the HTTP API server wrapping the command engine.
type Server struct {
	engine  *command.Engine
	version string
}

// NewServer creates a Server around the given command engine.
func NewServer(engine *command.Engine, version string) *Server {
	return &Server{engine: engine, version: version}
}

// Handler returns the HTTP handler with all API routes and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/operations", s.handleOperations)
	mux.HandleFunc("POST /api/command/{name}", s.handleCommand)
	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"ready":   s.engine.Ready(),
		"version": s.version,
	})
}

func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.engine.Operations())
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if !s.engine.Ready() {
		writeError(w, http.StatusServiceUnavailable, "catalog still loading, try again shortly")
		return
	}

	name := r.PathValue("name")
	args := command.Args{}
	if r.Body != nil {
		// An empty body means an operation without arguments.
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
	}

	response, err := s.engine.Dispatch(r.Context(), name, args)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, map[string]string{"response": response})
}
