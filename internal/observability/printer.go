// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/verdant/green-matcher/internal/db"
	"github.com/verdant/green-matcher/internal/matching"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 72

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintInvestorProfile outputs a human-readable summary of one investor.
func (p *Printer) PrintInvestorProfile(inv db.Investor) {
	var b strings.Builder
	fmt.Fprintf(&b, "Sector focus:       %s\n", inv.SectorFocus)
	fmt.Fprintf(&b, "Min investment:     %s\n", inv.MinInvestmentSize)
	fmt.Fprintf(&b, "ESG criteria:       %s", inv.PreferredESGCriteria)
	p.printBox(fmt.Sprintf("Investor: %s", inv.Name), b.String())
}

// PrintMatches outputs the ranked match list as an aligned table.
func (p *Printer) PrintMatches(matches []matching.MatchResult) {
	if len(matches) == 0 {
		p.printBox("Matched Projects", "No matches found.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %-12s %12s %6s  %s\n", "Project", "Sector", "Funding", "Score", "Readiness")
	for _, m := range matches {
		fmt.Fprintf(&b, "%-24s %-12s %12.2f %6d  %s\n", m.ProjectName, m.Sector, m.FundingNeeded, m.ESGScore, m.Readiness)
	}
	p.printBox(fmt.Sprintf("Matched Projects (%d)", len(matches)), strings.TrimRight(b.String(), "\n"))
}

// PrintFundingGaps outputs per-sector funding totals.
func (p *Printer) PrintFundingGaps(gaps map[string]float64, order []string) {
	var b strings.Builder
	for _, sector := range order {
		fmt.Fprintf(&b, "%-24s %14.2f\n", sector, gaps[sector])
	}
	p.printBox("Funding Gaps by Sector", strings.TrimRight(b.String(), "\n"))
}
