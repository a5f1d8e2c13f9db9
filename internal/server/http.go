package server

import (
	"encoding/json"
	"net/http"
)

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /v1/health) must include
// a valid Authorization: Bearer <token> header.
func (s *GanttServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/transform", s.handleTransform)
	mux.HandleFunc("GET /v1/views", s.handleListViews)
	mux.HandleFunc("PUT /v1/views/{name}", s.handleSaveView)
	mux.HandleFunc("GET /v1/views/{name}", s.handleGetView)
	mux.HandleFunc("DELETE /v1/views/{name}", s.handleDeleteView)
	mux.HandleFunc("PUT /v1/views/{name}/records", s.handleReplaceRecords)
	mux.HandleFunc("GET /v1/views/{name}/records", s.handleGetRecords)
	mux.HandleFunc("GET /v1/views/{name}/gantt", s.handleGetGantt)
	mux.HandleFunc("GET /v1/views/{name}/snapshots", s.handleListSnapshots)
	mux.HandleFunc("GET /v1/snapshots/{id}", s.handleGetSnapshot)
	mux.HandleFunc("DELETE /v1/snapshots/{id}", s.handleDeleteSnapshot)
	mux.HandleFunc("GET /v1/events/stream", s.handleEventStream)
	mux.HandleFunc("GET /v1/health", s.handleHealth)
	return AuthMiddleware(authToken, LoggingMiddleware(RecoveryMiddleware(mux)))
}

// handleHealth handles GET /v1/health.
func (s *GanttServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
