package report

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/verdant/green-matcher/internal/matching"
)

// RenderMarkdown renders the ranked match list as a markdown table, used for
// CLI output and the plain-text email body.
func RenderMarkdown(investorName string, matches []matching.MatchResult) (string, error) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Project Matches for %s", investorName))

	if len(matches) == 0 {
		doc.PlainText("No matches found.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Project Name", "Sector", "Funding Needed", "ESG Score", "Readiness"},
			Rows:   [][]string{},
		}
		for _, m := range matches {
			table.Rows = append(table.Rows, []string{
				m.ProjectName,
				m.Sector,
				fmt.Sprintf("%.2f", m.FundingNeeded),
				fmt.Sprintf("%d", m.ESGScore),
				m.Readiness,
			})
		}
		doc.Table(table)
	}

	if err := doc.Build(); err != nil {
		return "", fmt.Errorf("failed to build markdown report: %w", err)
	}
	return buf.String(), nil
}
