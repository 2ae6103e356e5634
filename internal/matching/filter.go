package matching

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verdant/green-matcher/internal/db"
)

// FilterProjects applies the explorer filters to the full project collection,
// unrelated to any investor:
//
//   - funding_needed must fall inside [minFunding, maxFunding] inclusive,
//   - the raw tag string must contain one of the selected dimension letters,
//     case-insensitively, anywhere in its text (no selection matches all),
//   - sector must equal the selected sector, unless sector is empty ("all").
//
// Projects keep their stored order. A non-numeric funding_needed fails the
// whole call.
func FilterProjects(projects []db.Project, sector string, dims []string, minFunding, maxFunding float64) ([]db.Project, error) {
	filtered := make([]db.Project, 0)
	for _, p := range projects {
		funding, err := strconv.ParseFloat(p.FundingNeeded, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid funding_needed %q for project %q: %w", p.FundingNeeded, p.Name, err)
		}
		if funding < minFunding || funding > maxFunding {
			continue
		}
		if !containsAnyDimension(p.ESGTags, dims) {
			continue
		}
		if sector != "" && p.Sector != sector {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// containsAnyDimension reports whether the raw tag string contains any of the
// letters as a case-insensitive substring. An empty selection matches
// everything.
func containsAnyDimension(rawTags string, dims []string) bool {
	if len(dims) == 0 {
		return true
	}
	lower := strings.ToLower(rawTags)
	for _, d := range dims {
		if d == "" {
			return true
		}
		if strings.Contains(lower, strings.ToLower(d)) {
			return true
		}
	}
	return false
}
