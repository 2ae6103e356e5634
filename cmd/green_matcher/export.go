package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdant/green-matcher/internal/config"
	"github.com/verdant/green-matcher/internal/db"
	"github.com/verdant/green-matcher/internal/matching"
	"github.com/verdant/green-matcher/internal/report"
)

var (
	exportInvestor string
	exportDims     string
	exportDir      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an investor's match list to PDF",
	Long:  `Compute the ranked match list for one investor and print it to "<investor>_matches.pdf". Requires Chrome/Chromium.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportInvestor, "investor", "", "Investor display name (required)")
	exportCmd.Flags().StringVar(&exportDims, "dims", "E,S,G", "ESG dimension filter, comma-separated letters")
	exportCmd.Flags().StringVar(&exportDir, "out", "", "Output directory (overrides REPORT_DIR)")
	_ = exportCmd.MarkFlagRequired("investor")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	path, _, err := exportReport(cmd.Context(), exportInvestor, exportDims, exportDir)
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", path)
	return nil
}

// exportReport computes matches and writes the PDF; shared by export and
// email.
func exportReport(ctx context.Context, investorName, dimLetters, outDir string) (string, []matching.MatchResult, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return "", nil, err
	}
	if outDir == "" {
		outDir = cfg.ReportDir
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return "", nil, err
	}
	defer database.Close()

	investor, err := database.GetInvestorByName(ctx, investorName)
	if err != nil {
		return "", nil, err
	}
	if investor == nil {
		return "", nil, fmt.Errorf("investor not found: %s", investorName)
	}

	projects, err := database.ListProjects(ctx)
	if err != nil {
		return "", nil, err
	}

	dims := matching.ParseDimensions(strings.Split(dimLetters, ","))
	matches, err := matching.Match(*investor, projects, dims)
	if err != nil {
		return "", nil, err
	}

	path, err := report.Export(ctx, investor.Name, matches, outDir)
	if err != nil {
		return "", nil, err
	}
	return path, matches, nil
}
