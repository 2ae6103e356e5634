// Package report renders ranked match lists as HTML, markdown, and PDF.
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/verdant/green-matcher/internal/matching"
)

// readinessColors maps each readiness level to its badge color.
var readinessColors = map[string]string{
	"Idea":      "gray",
	"Prototype": "orange",
	"Piloted":   "blue",
	"Scalable":  "green",
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.InvestorName}} – Project Matches</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 2em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #f0f4f0; }
td.num { text-align: right; }
.readiness { font-weight: bold; }
</style>
</head>
<body>
<h1>Project Matches for {{.InvestorName}}</h1>
{{if .Matches}}
<table>
<tr><th>Project Name</th><th>Sector</th><th>Funding Needed</th><th>ESG Score</th><th>Readiness</th></tr>
{{range .Matches}}
<tr>
<td>{{.ProjectName}}</td>
<td>{{.Sector}}</td>
<td class="num">{{printf "%.2f" .FundingNeeded}}</td>
<td class="num">{{.ESGScore}}</td>
<td class="readiness" style="color: {{readinessColor .Readiness}}">{{.Readiness}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No matches found.</p>
{{end}}
</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"readinessColor": func(level string) string {
		if color, ok := readinessColors[level]; ok {
			return color
		}
		return "black"
	},
}).Parse(htmlTemplate))

// RenderHTML renders the ranked match list for one investor as a standalone
// HTML document, ready for PDF printing.
func RenderHTML(investorName string, matches []matching.MatchResult) (string, error) {
	var buf bytes.Buffer
	data := struct {
		InvestorName string
		Matches      []matching.MatchResult
	}{InvestorName: investorName, Matches: matches}

	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}
	return buf.String(), nil
}

// FileName returns the deterministic report file name for an investor.
func FileName(investorName string) string {
	return fmt.Sprintf("%s_matches.pdf", investorName)
}
