// Package importer parses and validates tabular investor and project data for
// bulk import.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verdant/green-matcher/internal/db"
)

var validate = validator.New()

// Expected column sets. "id" may appear in exported files and is ignored;
// every other column must match exactly.
var (
	investorColumns = []string{"name", "sector_focus", "min_investment_size", "preferred_esg_criteria"}
	projectColumns  = []string{"name", "sector", "location", "funding_needed", "sustainability_impact", "esg_tags", "readiness_level"}
)

// investorRow mirrors one CSV line of investors. Money fields are not
// validated as numeric here: a bad min_investment_size is reported when the
// investor is matched, not at import time.
type investorRow struct {
	Name                 string `validate:"required"`
	SectorFocus          string `validate:"required"`
	MinInvestmentSize    string `validate:"required"`
	PreferredESGCriteria string
}

type projectRow struct {
	Name                 string `validate:"required"`
	Sector               string `validate:"required"`
	Location             string
	FundingNeeded        string `validate:"required"`
	SustainabilityImpact string
	ESGTags              string
	ReadinessLevel       string `validate:"omitempty,oneof=Idea Prototype Piloted Scalable"`
}

// validateHeader checks a CSV header against the expected column set and
// returns a column-name-to-index map. Missing and unknown columns both reject
// the file, so a malformed upload can never replace a table with a partial
// schema.
func validateHeader(header []string, expected []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	known := map[string]bool{"id": true}
	var missing []string
	for _, col := range expected {
		known[col] = true
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}

	var unknown []string
	for col := range index {
		if !known[col] {
			unknown = append(unknown, col)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown columns: %s", strings.Join(unknown, ", "))
	}
	return index, nil
}

// ParseInvestors reads investor records from CSV data.
func ParseInvestors(r io.Reader) ([]db.Investor, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read investors header: %w", err)
	}
	index, err := validateHeader(header, investorColumns)
	if err != nil {
		return nil, fmt.Errorf("invalid investors header: %w", err)
	}

	investors := make([]db.Investor, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read investors row: %w", err)
		}
		line++

		row := investorRow{
			Name:                 record[index["name"]],
			SectorFocus:          record[index["sector_focus"]],
			MinInvestmentSize:    record[index["min_investment_size"]],
			PreferredESGCriteria: record[index["preferred_esg_criteria"]],
		}
		if err := validate.Struct(&row); err != nil {
			return nil, fmt.Errorf("invalid investor on line %d: %w", line, err)
		}

		investors = append(investors, db.Investor{
			Name:                 row.Name,
			SectorFocus:          row.SectorFocus,
			MinInvestmentSize:    row.MinInvestmentSize,
			PreferredESGCriteria: row.PreferredESGCriteria,
		})
	}
	return investors, nil
}

// ParseProjects reads project records from CSV data. A missing readiness
// level defaults to Idea.
func ParseProjects(r io.Reader) ([]db.Project, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read projects header: %w", err)
	}
	index, err := validateHeader(header, projectColumns)
	if err != nil {
		return nil, fmt.Errorf("invalid projects header: %w", err)
	}

	projects := make([]db.Project, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read projects row: %w", err)
		}
		line++

		row := projectRow{
			Name:                 record[index["name"]],
			Sector:               record[index["sector"]],
			Location:             record[index["location"]],
			FundingNeeded:        record[index["funding_needed"]],
			SustainabilityImpact: record[index["sustainability_impact"]],
			ESGTags:              record[index["esg_tags"]],
			ReadinessLevel:       record[index["readiness_level"]],
		}
		if err := validate.Struct(&row); err != nil {
			return nil, fmt.Errorf("invalid project on line %d: %w", line, err)
		}
		if row.ReadinessLevel == "" {
			row.ReadinessLevel = db.ReadinessIdea
		}

		projects = append(projects, db.Project{
			Name:                 row.Name,
			Sector:               row.Sector,
			Location:             row.Location,
			FundingNeeded:        row.FundingNeeded,
			SustainabilityImpact: row.SustainabilityImpact,
			ESGTags:              row.ESGTags,
			ReadinessLevel:       row.ReadinessLevel,
		})
	}
	return projects, nil
}
