package server

import (
	"net/http"

	"github.com/verdant/green-matcher/internal/matching"
)

// handleFundingGaps sums funding_needed across all projects, grouped by
// sector
func (s *Server) handleFundingGaps(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	gaps, err := matching.FundingGapBySector(projects)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Data error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"funding_gaps": gaps})
}

// handleTagFrequency counts tag token occurrences across all projects
func (s *Server) handleTagFrequency(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"tag_frequency": matching.TagFrequency(projects)})
}
