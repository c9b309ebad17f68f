package ceac

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/ceac-cli/internal/model"
)

// strategyMeans holds the per-strategy means that expected NMB is linear in.
type strategyMeans struct {
	cost, qaly float64
	n          int
}

func meansByStrategy(rows []model.PSAResult, strategies model.StrategySet) []strategyMeans {
	costs := make([][]float64, len(strategies))
	qalys := make([][]float64, len(strategies))
	for _, r := range rows {
		c := strategies.Index(r.StrategyID)
		if c < 0 {
			continue
		}
		costs[c] = append(costs[c], r.AvgDiscCost)
		qalys[c] = append(qalys[c], r.AvgDiscQALYMult)
	}

	out := make([]strategyMeans, len(strategies))
	for c := range strategies {
		if len(costs[c]) == 0 {
			continue
		}
		out[c] = strategyMeans{
			cost: stat.Mean(costs[c], nil),
			qaly: stat.Mean(qalys[c], nil),
			n:    len(costs[c]),
		}
	}
	return out
}

// Frontier returns the cost-effectiveness acceptability frontier: for each
// threshold in wide, the strategy with the highest mean NMB across runs and
// the share of runs it wins. Ties on mean NMB go to the earlier strategy in
// the set.
func Frontier(rows []model.PSAResult, wide []model.Proportion, strategies model.StrategySet) []model.FrontierPoint {
	means := meansByStrategy(rows, strategies)

	out := make([]model.FrontierPoint, 0, len(wide))
	for _, p := range wide {
		best := -1
		var bestNMB float64
		for c, m := range means {
			if m.n == 0 {
				continue
			}
			nmb := p.WTP*m.qaly - m.cost
			if best < 0 || nmb > bestNMB {
				best, bestNMB = c, nmb
			}
		}
		if best < 0 {
			continue
		}

		point := model.FrontierPoint{
			WTP:        p.WTP,
			StrategyID: strategies[best].ID,
			Label:      strategies[best].Label,
			MeanNMB:    bestNMB,
		}
		if best < len(p.Shares) {
			point.Share = p.Shares[best]
		}
		out = append(out, point)
	}
	return out
}
