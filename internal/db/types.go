package db

// Investor is one row of the investors table. Loaded read-only per request;
// matching never mutates it.
//
// MinInvestmentSize stays a string so that a non-numeric value imported from
// CSV is reported when the investor is matched, not rejected at import time.
type Investor struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	SectorFocus          string `json:"sector_focus"`
	MinInvestmentSize    string `json:"min_investment_size"`
	PreferredESGCriteria string `json:"preferred_esg_criteria"`
}

// Project is one row of the projects table.
type Project struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Sector               string `json:"sector"`
	Location             string `json:"location"`
	FundingNeeded        string `json:"funding_needed"`
	SustainabilityImpact string `json:"sustainability_impact"`
	ESGTags              string `json:"esg_tags"`
	ReadinessLevel       string `json:"readiness_level"`
}

// InterestNote records a user's interest flag and free-text note for one
// (investor, project) pair. Writes are last-write-wins full replacements.
type InterestNote struct {
	InvestorName string `json:"investor_name"`
	ProjectName  string `json:"project_name"`
	Interested   bool   `json:"interested"`
	Notes        string `json:"notes"`
}

// Readiness levels, ordered from least to most mature.
const (
	ReadinessIdea      = "Idea"
	ReadinessPrototype = "Prototype"
	ReadinessPiloted   = "Piloted"
	ReadinessScalable  = "Scalable"
)

// ReadinessLevels lists all valid readiness levels in ascending maturity order.
var ReadinessLevels = []string{ReadinessIdea, ReadinessPrototype, ReadinessPiloted, ReadinessScalable}

// ReadinessRank returns the position of a readiness level in the maturity
// order, or -1 for an unknown level.
func ReadinessRank(level string) int {
	for i, l := range ReadinessLevels {
		if l == level {
			return i
		}
	}
	return -1
}
