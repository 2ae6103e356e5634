package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/verdant/green-matcher/internal/db"
)

var validate = validator.New()

// UpsertNoteRequest is the body for PUT /notes. A repeat write with the same
// (investor_name, project_name) key fully replaces the prior value.
type UpsertNoteRequest struct {
	InvestorName string `json:"investor_name" validate:"required"`
	ProjectName  string `json:"project_name" validate:"required"`
	Interested   bool   `json:"interested"`
	Notes        string `json:"notes"`
}

// Validate validates the UpsertNoteRequest using the validator.
func (r *UpsertNoteRequest) Validate() error {
	return validate.Struct(r)
}

// handleUpsertNote records an interest flag and note for one match
func (s *Server) handleUpsertNote(w http.ResponseWriter, r *http.Request) {
	var req UpsertNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid note: "+err.Error())
		return
	}

	note := db.InterestNote{
		InvestorName: req.InvestorName,
		ProjectName:  req.ProjectName,
		Interested:   req.Interested,
		Notes:        req.Notes,
	}
	if err := s.store.UpsertNote(r.Context(), note); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, note)
}

// handleGetNotes retrieves one note (investor + project) or all notes for an
// investor
func (s *Server) handleGetNotes(w http.ResponseWriter, r *http.Request) {
	investor := r.URL.Query().Get("investor")
	if investor == "" {
		s.errorResponse(w, http.StatusBadRequest, "investor query parameter is required")
		return
	}
	project := r.URL.Query().Get("project")

	if project != "" {
		note, err := s.store.GetNote(r.Context(), investor, project)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if note == nil {
			s.errorResponse(w, http.StatusNotFound, "Note not found")
			return
		}
		s.jsonResponse(w, http.StatusOK, note)
		return
	}

	notes, err := s.store.ListNotesByInvestor(r.Context(), investor)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"notes": notes,
		"total": len(notes),
	})
}
