// Package api exposes the roster service over HTTP for local tooling.
//
// Logical outcomes (no match, empty roster) are 200 responses with a success
// flag; only malformed requests produce 4xx.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/obatools/rosterscout/internal/logger"
	"github.com/obatools/rosterscout/internal/match"
	"github.com/obatools/rosterscout/internal/service"
)

// Server routes HTTP requests to the roster service.
type Server struct {
	svc    *service.Service
	router *mux.Router
}

// NewServer builds the HTTP surface over a service.
func NewServer(svc *service.Service) *Server {
	s := &Server{svc: svc, router: mux.NewRouter()}
	s.router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/resolve", s.handleResolve).Methods(http.MethodPost)
	s.router.HandleFunc("/api/confirm", s.handleConfirm).Methods(http.MethodPost)
	s.router.HandleFunc("/api/roster", s.handleRoster).Methods(http.MethodGet)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"metrics": logger.GetMetricsSnapshot(),
	})
}

type resolveRequest struct {
	TeamName      string `json:"team_name"`
	Division      string `json:"division"`
	AffiliateHint string `json:"affiliate_hint,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.svc.Resolve(r.Context(), req.TeamName, req.Division, req.AffiliateHint)
	if err != nil {
		if errors.Is(err, match.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"resolution": res,
	})
}

type confirmRequest struct {
	Candidate match.Candidate `json:"candidate"`
	NoCache   bool            `json:"no_cache"`
}

func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Candidate.SourceURL == "" {
		writeError(w, http.StatusBadRequest, "candidate.source_url is required")
		return
	}

	res := s.svc.Confirm(r.Context(), req.Candidate, !req.NoCache)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}
	useCache := r.URL.Query().Get("no_cache") != "true"

	res := s.svc.GetRoster(r.Context(), url, useCache)
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("writing response failed", nil, err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}
