package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdant/green-matcher/internal/config"
	"github.com/verdant/green-matcher/internal/db"
	"github.com/verdant/green-matcher/internal/matching"
	"github.com/verdant/green-matcher/internal/observability"
	"github.com/verdant/green-matcher/internal/report"
)

var (
	matchInvestor string
	matchDims     string
	matchMarkdown bool
	matchStats    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank matching projects for one investor",
	Long: `Compute the ranked match list for one investor: sector equality, funding
floor, ESG tag overlap, and the selected dimension-letter filter all must hold.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchInvestor, "investor", "", "Investor display name (required)")
	matchCmd.Flags().StringVar(&matchDims, "dims", "E,S,G", "ESG dimension filter, comma-separated letters")
	matchCmd.Flags().BoolVar(&matchMarkdown, "markdown", false, "Print the match list as markdown")
	matchCmd.Flags().BoolVar(&matchStats, "stats", false, "Also print per-sector funding gaps")
	_ = matchCmd.MarkFlagRequired("investor")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	investor, err := database.GetInvestorByName(cmd.Context(), matchInvestor)
	if err != nil {
		return err
	}
	if investor == nil {
		return fmt.Errorf("investor not found: %s", matchInvestor)
	}

	projects, err := database.ListProjects(cmd.Context())
	if err != nil {
		return err
	}

	dims := matching.ParseDimensions(strings.Split(matchDims, ","))
	matches, err := matching.Match(*investor, projects, dims)
	if err != nil {
		return err
	}

	if matchMarkdown {
		out, err := report.RenderMarkdown(investor.Name, matches)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintInvestorProfile(*investor)
	printer.PrintMatches(matches)

	if matchStats {
		gaps, err := matching.FundingGapBySector(projects)
		if err != nil {
			return err
		}
		sectors := make([]string, 0, len(gaps))
		for sector := range gaps {
			sectors = append(sectors, sector)
		}
		sort.Strings(sectors)
		printer.PrintFundingGaps(gaps, sectors)
	}
	return nil
}
