// Package db provides PostgreSQL database access for investor, project, and
// interest-note storage.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Setup creates the three matcher tables if they do not exist.
//
// min_investment_size and funding_needed are TEXT: bulk import must accept
// non-numeric values, which only surface as errors once an investor is matched.
func (db *DB) Setup(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS investors (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			sector_focus TEXT NOT NULL DEFAULT '',
			min_investment_size TEXT NOT NULL DEFAULT '',
			preferred_esg_criteria TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			sector TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			funding_needed TEXT NOT NULL DEFAULT '',
			sustainability_impact TEXT NOT NULL DEFAULT '',
			esg_tags TEXT NOT NULL DEFAULT '',
			readiness_level TEXT NOT NULL DEFAULT 'Idea'
		)`,
		`CREATE TABLE IF NOT EXISTS project_notes (
			investor_name TEXT NOT NULL,
			project_name TEXT NOT NULL,
			interested BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (investor_name, project_name)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
