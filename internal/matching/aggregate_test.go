package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant/green-matcher/internal/db"
)

func TestFundingGapBySector(t *testing.T) {
	projects := []db.Project{
		{Name: "A", Sector: "energy", FundingNeeded: "15000"},
		{Name: "B", Sector: "energy", FundingNeeded: "5000.5"},
		{Name: "C", Sector: "water", FundingNeeded: "8000"},
	}

	gaps, err := FundingGapBySector(projects)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"energy": 20000.5, "water": 8000}, gaps)
}

func TestFundingGapBySector_InvalidFunding(t *testing.T) {
	projects := []db.Project{
		{Name: "A", Sector: "energy", FundingNeeded: "lots"},
	}

	_, err := FundingGapBySector(projects)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `project "A"`)
}

func TestTagFrequency(t *testing.T) {
	projects := []db.Project{
		{Name: "A", ESGTags: "E:green, S:jobs"},
		{Name: "B", ESGTags: "E:green,E:solar"},
	}

	counts := TagFrequency(projects)

	assert.Equal(t, map[string]int{"E:green": 2, "S:jobs": 1, "E:solar": 1}, counts)
}

func TestTagFrequency_CountsEmptyTokens(t *testing.T) {
	projects := []db.Project{
		{Name: "A", ESGTags: "E:green,"},
	}

	counts := TagFrequency(projects)

	assert.Equal(t, map[string]int{"E:green": 1, "": 1}, counts)
}
