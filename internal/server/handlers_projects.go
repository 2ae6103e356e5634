package server

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/verdant/green-matcher/internal/matching"
)

// parseQueryFloat parses a float query parameter, falling back to a default
// when absent or malformed.
func parseQueryFloat(r *http.Request, key string, defaultValue float64) float64 {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return defaultValue
	}
	return val
}

// handleListProjects lists projects, optionally narrowed by the explorer
// filters: sector, dims (comma-separated dimension letters), min_funding,
// max_funding.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	sector := r.URL.Query().Get("sector")
	if strings.EqualFold(sector, "all") {
		sector = ""
	}

	var dims []string
	if raw := r.URL.Query().Get("dims"); raw != "" {
		for _, d := range strings.Split(raw, ",") {
			if d = strings.TrimSpace(d); d != "" {
				dims = append(dims, d)
			}
		}
	}

	minFunding := parseQueryFloat(r, "min_funding", 0)
	maxFunding := parseQueryFloat(r, "max_funding", math.MaxFloat64)

	filtered, err := matching.FilterProjects(projects, sector, dims, minFunding, maxFunding)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Data error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"projects": filtered,
		"total":    len(filtered),
	})
}
