package server

import (
	"net/http"
)

// handleListInvestors lists all loaded investors
func (s *Server) handleListInvestors(w http.ResponseWriter, r *http.Request) {
	investors, err := s.store.ListInvestors(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"investors": investors,
		"total":     len(investors),
	})
}

// handleGetInvestor retrieves one investor profile by display name
func (s *Server) handleGetInvestor(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Investor name is required")
		return
	}

	investor, err := s.store.GetInvestorByName(r.Context(), name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if investor == nil {
		s.errorResponse(w, http.StatusNotFound, "Investor not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, investor)
}
