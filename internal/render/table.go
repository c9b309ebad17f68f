package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rotisserie/eris"

	"github.com/sells-group/ceac-cli/internal/ceac"
	"github.com/sells-group/ceac-cli/internal/model"
)

// Table formats accepted by the table renderers.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatHTML     = "html"
)

// ProportionTable writes the wide acceptability table: one row per
// threshold, one column per strategy.
func ProportionTable(w io.Writer, wide []model.Proportion, strategies model.StrategySet, format string) error {
	header := table.Row{"WTP"}
	for _, s := range strategies {
		header = append(header, s.Label)
	}

	rows := make([]table.Row, 0, len(wide))
	for _, p := range wide {
		row := table.Row{FormatCurrency(p.WTP)}
		for c := range strategies {
			var share float64
			if c < len(p.Shares) {
				share = p.Shares[c]
			}
			row = append(row, fmt.Sprintf("%.3f", share))
		}
		rows = append(rows, row)
	}

	return renderRows(w, header, rows, format)
}

// FrontierTable writes the acceptability frontier.
func FrontierTable(w io.Writer, points []model.FrontierPoint, format string) error {
	header := table.Row{"WTP", "Optimal Strategy", "Mean NMB", "P(Cost-Effective)"}
	rows := make([]table.Row, 0, len(points))
	for _, pt := range points {
		rows = append(rows, table.Row{
			FormatCurrency(pt.WTP), pt.Label, FormatCurrency(pt.MeanNMB), fmt.Sprintf("%.3f", pt.Share),
		})
	}
	return renderRows(w, header, rows, format)
}

// SummaryTable writes per-strategy means.
func SummaryTable(w io.Writer, summary []model.StrategySummary, format string) error {
	header := table.Row{"Strategy", "Runs", "Mean Disc. Cost", "Mean Disc. QALY", "Mean Lifespan", "Mean Cancer Cases"}
	rows := make([]table.Row, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, table.Row{
			s.Label, s.Runs, FormatCurrency(s.MeanDiscCost),
			fmt.Sprintf("%.4f", s.MeanDiscQALY), fmt.Sprintf("%.2f", s.MeanLifespan), fmt.Sprintf("%.2f", s.MeanCancerCases),
		})
	}
	return renderRows(w, header, rows, format)
}

// ValidationTable writes the thresholds that failed the sum-to-one check.
func ValidationTable(w io.Writer, report ceac.ValidationReport, format string) error {
	if report.OK() {
		_, _ = fmt.Fprintln(w, report.String())
		return nil
	}
	header := table.Row{"WTP", "Sum", "Winners Counted"}
	rows := make([]table.Row, 0, len(report.Violations))
	for _, v := range report.Violations {
		rows = append(rows, table.Row{FormatCurrency(v.WTP), fmt.Sprintf("%.12g", v.Sum), v.Count})
	}
	return renderRows(w, header, rows, format)
}

func renderRows(w io.Writer, header table.Row, rows []table.Row, format string) error {
	format = strings.ToLower(format)
	switch format {
	case "", FormatTable, FormatMarkdown, "md", FormatCSV, FormatHTML:
	default:
		return eris.Errorf("render: unsupported table format %q", format)
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(header)
	for _, r := range rows {
		t.AppendRow(r)
	}

	switch format {
	case "", FormatTable:
		t.Render()
		_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
	case FormatMarkdown, "md":
		t.RenderMarkdown()
	case FormatCSV:
		t.RenderCSV()
	case FormatHTML:
		t.RenderHTML()
	}
	return nil
}
