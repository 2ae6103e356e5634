package server

import (
	"context"

	"github.com/verdant/green-matcher/internal/db"
)

// Store is the repository interface the handlers depend on. *db.DB implements
// it; tests use a stub. Every operation takes a context and acquires its
// connection from the pool for the duration of that one call.
type Store interface {
	ListInvestors(ctx context.Context) ([]db.Investor, error)
	GetInvestorByName(ctx context.Context, name string) (*db.Investor, error)
	ReplaceInvestors(ctx context.Context, investors []db.Investor) error
	ListProjects(ctx context.Context) ([]db.Project, error)
	ReplaceProjects(ctx context.Context, projects []db.Project) error
	UpsertNote(ctx context.Context, note db.InterestNote) error
	GetNote(ctx context.Context, investorName, projectName string) (*db.InterestNote, error)
	ListNotesByInvestor(ctx context.Context, investorName string) ([]db.InterestNote, error)
}

var _ Store = (*db.DB)(nil)
