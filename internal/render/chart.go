// Package render draws and exports acceptability curves: line charts via
// gonum/plot, terminal tables via go-pretty, and CSV, JSON and XLSX files.
package render

import (
	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sells-group/ceac-cli/internal/model"
)

// ChartOptions holds chart labels.
type ChartOptions struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string
}

// Chart draws one line per strategy of win probability against
// willingness-to-pay. Lines are colored by position in the strategy set so a
// strategy keeps its color across charts.
func Chart(long []model.LongProportion, strategies model.StrategySet, opts ChartOptions) (*plot.Plot, error) {
	if len(long) == 0 {
		return nil, eris.New("render: no proportions to chart")
	}

	series := make([]plotter.XYs, len(strategies))
	for _, l := range long {
		c := strategies.Index(l.StrategyID)
		if c < 0 {
			return nil, eris.Errorf("render: unknown strategy id %d", l.StrategyID)
		}
		series[c] = append(series[c], plotter.XY{X: l.WTP, Y: l.Share})
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Tick.Marker = currencyTicks{}
	p.Add(plotter.NewGrid())

	p.Legend.Top = true
	if opts.LegendTitle != "" {
		p.Legend.Add(opts.LegendTitle)
	}

	for c, s := range strategies {
		if len(series[c]) == 0 {
			continue
		}
		line, err := plotter.NewLine(series[c])
		if err != nil {
			return nil, eris.Wrapf(err, "render: line for %s", s.Label)
		}
		line.Color = plotutil.Color(c)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	p.Y.Min = 0
	p.Y.Max = 1

	return p, nil
}

// SaveChart writes p to path. The extension picks the format: png, svg,
// pdf, jpg, tif or eps.
func SaveChart(p *plot.Plot, path string, widthIn, heightIn float64) error {
	if widthIn <= 0 || heightIn <= 0 {
		return eris.Errorf("render: invalid chart size %gx%g in", widthIn, heightIn)
	}
	if err := p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path); err != nil {
		return eris.Wrapf(err, "render: save chart %s", path)
	}
	return nil
}
