package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency formats a dollar amount rounded to whole dollars with
// thousands separators, e.g. "$250,000".
func FormatCurrency(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return printer.Sprintf("-$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}

// currencyTicks labels the default tick marks as dollar amounts.
type currencyTicks struct{}

var _ plot.Ticker = currencyTicks{}

func (currencyTicks) Ticks(min, max float64) []plot.Tick {
	if max <= min {
		return []plot.Tick{{Value: min, Label: FormatCurrency(min)}}
	}
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = FormatCurrency(ticks[i].Value)
		}
	}
	return ticks
}
