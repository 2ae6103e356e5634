package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// UpsertNote stores an interest flag and note for one (investor, project)
// pair. A repeat write with the same key fully replaces the prior value.
func (db *DB) UpsertNote(ctx context.Context, note InterestNote) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO project_notes (investor_name, project_name, interested, notes)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (investor_name, project_name) DO UPDATE SET interested = $3, notes = $4`,
		note.InvestorName, note.ProjectName, note.Interested, note.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert note: %w", err)
	}
	return nil
}

// GetNote retrieves the note for one (investor, project) pair, or nil when
// none has been recorded.
func (db *DB) GetNote(ctx context.Context, investorName, projectName string) (*InterestNote, error) {
	var n InterestNote
	err := db.pool.QueryRow(ctx,
		`SELECT investor_name, project_name, interested, notes
		 FROM project_notes WHERE investor_name = $1 AND project_name = $2`,
		investorName, projectName,
	).Scan(&n.InvestorName, &n.ProjectName, &n.Interested, &n.Notes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &n, nil
}

// ListNotesByInvestor returns all notes recorded by one investor. Stale notes
// for projects that no longer match are included; nothing deletes them.
func (db *DB) ListNotesByInvestor(ctx context.Context, investorName string) ([]InterestNote, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT investor_name, project_name, interested, notes
		 FROM project_notes WHERE investor_name = $1 ORDER BY project_name`,
		investorName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]InterestNote, 0)
	for rows.Next() {
		var n InterestNote
		if err := rows.Scan(&n.InvestorName, &n.ProjectName, &n.Interested, &n.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}
