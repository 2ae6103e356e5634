package importer

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/verdant/green-matcher/internal/db"
)

// Store is the subset of database operations bulk import needs.
type Store interface {
	ReplaceInvestors(ctx context.Context, investors []db.Investor) error
	ReplaceProjects(ctx context.Context, projects []db.Project) error
}

// Summary describes one completed bulk import.
type Summary struct {
	ImportID  uuid.UUID `json:"import_id"`
	Investors int       `json:"investors"`
	Projects  int       `json:"projects"`
}

// BulkImport parses one or both CSV files and replaces the corresponding
// tables wholesale. Either reader may be nil to leave that table untouched.
//
// Both files are parsed and validated concurrently before either table is
// written, so a malformed upload never clobbers previously loaded data.
func BulkImport(ctx context.Context, store Store, investorsCSV, projectsCSV io.Reader) (Summary, error) {
	summary := Summary{ImportID: uuid.New()}
	if investorsCSV == nil && projectsCSV == nil {
		return summary, fmt.Errorf("no files to import")
	}

	var (
		investors []db.Investor
		projects  []db.Project
		mu        sync.Mutex
	)

	g, _ := errgroup.WithContext(ctx)
	if investorsCSV != nil {
		g.Go(func() error {
			parsed, err := ParseInvestors(investorsCSV)
			if err != nil {
				return err
			}
			mu.Lock()
			investors = parsed
			mu.Unlock()
			return nil
		})
	}
	if projectsCSV != nil {
		g.Go(func() error {
			parsed, err := ParseProjects(projectsCSV)
			if err != nil {
				return err
			}
			mu.Lock()
			projects = parsed
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}

	if investorsCSV != nil {
		if err := store.ReplaceInvestors(ctx, investors); err != nil {
			return summary, err
		}
		summary.Investors = len(investors)
	}
	if projectsCSV != nil {
		if err := store.ReplaceProjects(ctx, projects); err != nil {
			return summary, err
		}
		summary.Projects = len(projects)
	}

	log.Printf("[IMPORT] %s: %d investors, %d projects", summary.ImportID, summary.Investors, summary.Projects)
	return summary, nil
}
