package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/verdant/green-matcher/internal/matching"
)

// MatchesResponse is the response for the match endpoint. Matches is always
// present, so an empty list is distinguishable from an error.
type MatchesResponse struct {
	Investor   string                 `json:"investor"`
	Dimensions []string               `json:"dimensions"`
	Matches    []matching.MatchResult `json:"matches"`
	Total      int                    `json:"total"`
	Error      string                 `json:"error,omitempty"`
}

// parseDims reads the dims query parameter ("E,S,G"). Absent means all three
// dimensions are selected.
func parseDims(r *http.Request) []string {
	raw := r.URL.Query().Get("dims")
	if raw == "" {
		return []string{matching.DimensionE, matching.DimensionS, matching.DimensionG}
	}
	parts := strings.Split(raw, ",")
	dims := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			dims = append(dims, p)
		}
	}
	return dims
}

// handleMatches computes the ranked match list for one investor
func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	dims := parseDims(r)

	matches, err := s.computeMatches(r.Context(), name, dims)
	if err != nil {
		var badMin *matching.ErrInvalidMinInvestment
		if errors.As(err, &badMin) {
			// Data-quality error: reported, with an explicitly-empty result.
			s.jsonResponse(w, HTTPStatus(err), MatchesResponse{
				Investor:   name,
				Dimensions: dims,
				Matches:    []matching.MatchResult{},
				Total:      0,
				Error:      err.Error(),
			})
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchesResponse{
		Investor:   name,
		Dimensions: dims,
		Matches:    matches,
		Total:      len(matches),
	})
}

// computeMatches reloads both collections and recomputes the ranked match
// list, the same full pass every interaction triggers.
func (s *Server) computeMatches(ctx context.Context, investorName string, dims []string) ([]matching.MatchResult, error) {
	investor, err := s.store.GetInvestorByName(ctx, investorName)
	if err != nil {
		return nil, err
	}
	if investor == nil {
		return nil, &ErrInvestorNotFound{Name: investorName}
	}

	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	return matching.Match(*investor, projects, matching.ParseDimensions(dims))
}
