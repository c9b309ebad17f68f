package ceac

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/ceac-cli/internal/model"
)

// Summarize returns per-strategy means across PSA runs, in strategy order.
// Strategies with no rows are reported with zero runs.
func Summarize(rows []model.PSAResult, strategies model.StrategySet) []model.StrategySummary {
	type columns struct {
		cost, qaly, lifespan, cases []float64
	}
	cols := make([]columns, len(strategies))
	for _, r := range rows {
		c := strategies.Index(r.StrategyID)
		if c < 0 {
			continue
		}
		cols[c].cost = append(cols[c].cost, r.AvgDiscCost)
		cols[c].qaly = append(cols[c].qaly, r.AvgDiscQALYMult)
		cols[c].lifespan = append(cols[c].lifespan, r.AvgLifespan)
		cols[c].cases = append(cols[c].cases, float64(r.CancerCases))
	}

	out := make([]model.StrategySummary, len(strategies))
	for c, s := range strategies {
		out[c] = model.StrategySummary{StrategyID: s.ID, Label: s.Label, Runs: len(cols[c].cost)}
		if out[c].Runs == 0 {
			continue
		}
		out[c].MeanDiscCost = stat.Mean(cols[c].cost, nil)
		out[c].MeanDiscQALY = stat.Mean(cols[c].qaly, nil)
		out[c].MeanLifespan = stat.Mean(cols[c].lifespan, nil)
		out[c].MeanCancerCases = stat.Mean(cols[c].cases, nil)
	}
	return out
}
