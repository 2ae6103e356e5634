package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ListProjects returns all projects in insertion order. Insertion order is
// significant: match ranking preserves it for fully tied results.
func (db *DB) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, sector, location, funding_needed, sustainability_impact, esg_tags, readiness_level
		 FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Sector, &p.Location, &p.FundingNeeded, &p.SustainabilityImpact, &p.ESGTags, &p.ReadinessLevel); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ReplaceProjects replaces the projects table wholesale with the given
// records, in one transaction.
func (db *DB) ReplaceProjects(ctx context.Context, projects []Project) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}

	rows := make([][]any, 0, len(projects))
	for _, p := range projects {
		readiness := p.ReadinessLevel
		if readiness == "" {
			readiness = ReadinessIdea
		}
		rows = append(rows, []any{p.Name, p.Sector, p.Location, p.FundingNeeded, p.SustainabilityImpact, p.ESGTags, readiness})
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"projects"},
		[]string{"name", "sector", "location", "funding_needed", "sustainability_impact", "esg_tags", "readiness_level"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy projects: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit projects replace: %w", err)
	}
	return nil
}
