package ceac

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/ceac-cli/internal/model"
)

// Reshape unpivots the wide proportion table into one row per threshold and
// strategy, in threshold then strategy order.
func Reshape(wide []model.Proportion, strategies model.StrategySet) []model.LongProportion {
	out := make([]model.LongProportion, 0, len(wide)*len(strategies))
	for _, p := range wide {
		for c, s := range strategies {
			var share float64
			if c < len(p.Shares) {
				share = p.Shares[c]
			}
			out = append(out, model.LongProportion{
				WTP:        p.WTP,
				StrategyID: s.ID,
				Label:      s.Label,
				Share:      share,
			})
		}
	}
	return out
}

// Pivot is the inverse of Reshape. It rebuilds WTP and Shares; integer counts
// are not carried by the long form.
func Pivot(long []model.LongProportion, strategies model.StrategySet) ([]model.Proportion, error) {
	col := make(map[int]int, len(strategies))
	for i, s := range strategies {
		col[s.ID] = i
	}

	index := make(map[float64]int)
	var out []model.Proportion
	for _, l := range long {
		c, ok := col[l.StrategyID]
		if !ok {
			return nil, eris.Errorf("ceac: pivot: unknown strategy id %d", l.StrategyID)
		}

		i, ok := index[l.WTP]
		if !ok {
			i = len(out)
			index[l.WTP] = i
			out = append(out, model.Proportion{WTP: l.WTP, Shares: make([]float64, len(strategies))})
		}
		out[i].Shares[c] = l.Share
	}
	return out, nil
}
