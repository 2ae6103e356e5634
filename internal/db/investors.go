package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ListInvestors returns all investors in insertion order.
func (db *DB) ListInvestors(ctx context.Context) ([]Investor, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, sector_focus, min_investment_size, preferred_esg_criteria
		 FROM investors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	defer rows.Close()

	investors := make([]Investor, 0)
	for rows.Next() {
		var inv Investor
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.SectorFocus, &inv.MinInvestmentSize, &inv.PreferredESGCriteria); err != nil {
			return nil, fmt.Errorf("failed to scan investor: %w", err)
		}
		investors = append(investors, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	return investors, nil
}

// GetInvestorByName retrieves an investor by display name. Returns nil when
// no investor has that name.
func (db *DB) GetInvestorByName(ctx context.Context, name string) (*Investor, error) {
	var inv Investor
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, sector_focus, min_investment_size, preferred_esg_criteria
		 FROM investors WHERE name = $1 ORDER BY id LIMIT 1`,
		name,
	).Scan(&inv.ID, &inv.Name, &inv.SectorFocus, &inv.MinInvestmentSize, &inv.PreferredESGCriteria)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get investor: %w", err)
	}
	return &inv, nil
}

// ReplaceInvestors replaces the investors table wholesale with the given
// records. The delete and the bulk copy run in one transaction, so a failed
// replace leaves the previous data intact.
func (db *DB) ReplaceInvestors(ctx context.Context, investors []Investor) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM investors`); err != nil {
		return fmt.Errorf("failed to clear investors: %w", err)
	}

	rows := make([][]any, 0, len(investors))
	for _, inv := range investors {
		rows = append(rows, []any{inv.Name, inv.SectorFocus, inv.MinInvestmentSize, inv.PreferredESGCriteria})
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"investors"},
		[]string{"name", "sector_focus", "min_investment_size", "preferred_esg_criteria"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy investors: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit investors replace: %w", err)
	}
	return nil
}
