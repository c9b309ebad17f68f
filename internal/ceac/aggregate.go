package ceac

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/ceac-cli/internal/model"
)

// Aggregate counts, per threshold, how many runs each strategy won and
// divides by runs. Thresholds keep first-appearance order. Winners with a
// strategy outside the set are left out of every column so that Validate
// flags the threshold.
func Aggregate(winners []model.Winner, strategies model.StrategySet, runs int) ([]model.Proportion, error) {
	if runs <= 0 {
		return nil, eris.Errorf("ceac: aggregate needs a positive run count, got %d", runs)
	}

	col := make(map[int]int, len(strategies))
	for i, s := range strategies {
		col[s.ID] = i
	}

	index := make(map[float64]int)
	var out []model.Proportion
	for _, w := range winners {
		i, ok := index[w.WTP]
		if !ok {
			i = len(out)
			index[w.WTP] = i
			out = append(out, model.Proportion{
				WTP:    w.WTP,
				Counts: make([]int, len(strategies)),
				Shares: make([]float64, len(strategies)),
			})
		}

		p := &out[i]
		if c, ok := col[w.StrategyID]; ok {
			p.Counts[c]++
		}
		if w.Tied {
			p.Ties++
		}
	}

	for i := range out {
		for c, n := range out[i].Counts {
			out[i].Shares[c] = float64(n) / float64(runs)
		}
	}

	return out, nil
}
