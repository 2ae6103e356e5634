package matching

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/verdant/green-matcher/internal/db"
)

// ErrInvalidMinInvestment indicates an investor record whose
// min_investment_size is not numeric. It is a data-quality error: matching
// aborts for that investor and returns an empty result.
type ErrInvalidMinInvestment struct {
	InvestorName string
	Value        string
}

func (e *ErrInvalidMinInvestment) Error() string {
	return fmt.Sprintf("invalid min_investment_size %q for investor %q", e.Value, e.InvestorName)
}

// MatchResult is one ranked match. It is derived per request and never
// persisted.
type MatchResult struct {
	ProjectName   string  `json:"project_name"`
	Sector        string  `json:"sector"`
	FundingNeeded float64 `json:"funding_needed"`
	ESGScore      int     `json:"esg_score"`
	Readiness     string  `json:"readiness"`
}

// Match ranks the projects that fit one investor. A project matches when all
// four conditions hold:
//
//  1. its sector equals the investor's sector focus (case-insensitive),
//  2. its funding need is at least the investor's minimum investment size,
//  3. its normalized tag set shares at least one token with the investor's
//     preferred ESG criteria (the ESG score), and
//  4. at least one raw tag token leads with a selected dimension letter.
//
// Conditions 3 and 4 are independent: a project can score on an "E" tag and
// still pass a {S}-only dimension filter through a different raw token.
//
// Matches are sorted by ESG score descending, then funding needed ascending;
// full ties keep the projects' stored order. The returned slice is non-nil
// even when empty, so "no matches" is distinguishable from "not computed".
//
// A non-numeric min_investment_size returns ErrInvalidMinInvestment with an
// empty result. A non-numeric funding_needed on an individual project is a
// data-quality precondition violation and fails the whole call.
func Match(inv db.Investor, projects []db.Project, dims map[string]bool) ([]MatchResult, error) {
	investorSector := strings.ToLower(inv.SectorFocus)

	minInvestment, err := strconv.ParseFloat(inv.MinInvestmentSize, 64)
	if err != nil {
		return []MatchResult{}, &ErrInvalidMinInvestment{InvestorName: inv.Name, Value: inv.MinInvestmentSize}
	}

	preferred := SplitCriteria(inv.PreferredESGCriteria)

	matches := make([]MatchResult, 0)
	for _, p := range projects {
		funding, err := strconv.ParseFloat(p.FundingNeeded, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid funding_needed %q for project %q: %w", p.FundingNeeded, p.Name, err)
		}

		score := 0
		for tag := range NormalizeTags(p.ESGTags) {
			if preferred[tag] {
				score++
			}
		}

		if strings.ToLower(p.Sector) != investorSector || funding < minInvestment || score == 0 {
			continue
		}
		if !hasDimensionTag(p.ESGTags, dims) {
			continue
		}

		readiness := p.ReadinessLevel
		if readiness == "" {
			readiness = db.ReadinessIdea
		}

		matches = append(matches, MatchResult{
			ProjectName:   p.Name,
			Sector:        p.Sector,
			FundingNeeded: funding,
			ESGScore:      score,
			Readiness:     readiness,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].ESGScore != matches[j].ESGScore {
			return matches[i].ESGScore > matches[j].ESGScore
		}
		return matches[i].FundingNeeded < matches[j].FundingNeeded
	})

	return matches, nil
}

// ParseDimensions turns a list of dimension letters into a set, uppercasing
// and dropping empties. An empty list selects no dimensions.
func ParseDimensions(letters []string) map[string]bool {
	dims := make(map[string]bool)
	for _, l := range letters {
		l = strings.ToUpper(strings.TrimSpace(l))
		if l != "" {
			dims[l] = true
		}
	}
	return dims
}

// AllDimensions returns the default dimension filter selecting E, S, and G.
func AllDimensions() map[string]bool {
	return map[string]bool{DimensionE: true, DimensionS: true, DimensionG: true}
}
