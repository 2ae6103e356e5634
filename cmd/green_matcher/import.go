package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdant/green-matcher/internal/config"
	"github.com/verdant/green-matcher/internal/db"
	"github.com/verdant/green-matcher/internal/importer"
)

var (
	importInvestorsPath string
	importProjectsPath  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import investors and projects from CSV",
	Long: `Replace the investors and/or projects tables wholesale from CSV files.
Each file's columns must match the table schema; a file that fails validation
leaves the existing table untouched.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importInvestorsPath, "investors", "", "Path to investors CSV")
	importCmd.Flags().StringVar(&importProjectsPath, "projects", "", "Path to projects CSV")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	if importInvestorsPath == "" && importProjectsPath == "" {
		return fmt.Errorf("provide --investors and/or --projects")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	var investorsCSV, projectsCSV io.Reader
	if importInvestorsPath != "" {
		f, err := os.Open(importInvestorsPath)
		if err != nil {
			return fmt.Errorf("failed to open investors file: %w", err)
		}
		defer f.Close()
		investorsCSV = f
	}
	if importProjectsPath != "" {
		f, err := os.Open(importProjectsPath)
		if err != nil {
			return fmt.Errorf("failed to open projects file: %w", err)
		}
		defer f.Close()
		projectsCSV = f
	}

	summary, err := importer.BulkImport(cmd.Context(), database, investorsCSV, projectsCSV)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d investors, %d projects (import %s)\n", summary.Investors, summary.Projects, summary.ImportID)
	return nil
}
