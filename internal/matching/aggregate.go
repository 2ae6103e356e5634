package matching

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verdant/green-matcher/internal/db"
)

// FundingGapBySector sums funding_needed across all projects, grouped by
// sector. Sectors are grouped by their stored spelling. A non-numeric
// funding_needed fails the whole aggregation.
func FundingGapBySector(projects []db.Project) (map[string]float64, error) {
	gaps := make(map[string]float64)
	for _, p := range projects {
		funding, err := strconv.ParseFloat(p.FundingNeeded, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid funding_needed %q for project %q: %w", p.FundingNeeded, p.Name, err)
		}
		gaps[p.Sector] += funding
	}
	return gaps, nil
}

// TagFrequency counts every trimmed tag token across all projects' raw tag
// strings. No dimension stripping or lowercasing is applied; an empty token
// (for example from a trailing comma) is counted under the empty string.
func TagFrequency(projects []db.Project) map[string]int {
	counts := make(map[string]int)
	for _, p := range projects {
		for _, tok := range strings.Split(p.ESGTags, ",") {
			counts[strings.TrimSpace(tok)]++
		}
	}
	return counts
}
