package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Tajudeen-boss/Neptune-task/internal/model"
	"github.com/Tajudeen-boss/Neptune-task/internal/search"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Search query is required and must be a non-empty string")
		return
	}
	s.logger.Debug("search request", zap.String("query", req.Query))

	result, err := s.pipeline.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			s.respondError(w, http.StatusBadRequest, "Search query is required and must be a non-empty string")
			return
		}
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to process search request. Please try again.")
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := s.store.ListProviders(r.Context())
	if err != nil {
		s.logger.Error("list providers failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve service providers")
		return
	}
	s.respondJSON(w, http.StatusOK, providers)
}

func (s *Server) handleRecentSearches(w http.ResponseWriter, r *http.Request) {
	searches, err := s.store.RecentSearches(r.Context())
	if err != nil {
		s.logger.Error("recent searches failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve recent searches")
		return
	}
	if searches == nil {
		searches = []model.SearchQuery{}
	}
	s.respondJSON(w, http.StatusOK, searches)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
