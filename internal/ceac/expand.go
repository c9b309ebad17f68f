package ceac

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/ceac-cli/internal/model"
)

// ExpandAt projects every row to its net monetary benefit at one threshold,
// keeping input order.
func ExpandAt(rows []model.PSAResult, wtp float64) []model.ExpandedRow {
	block := make([]model.ExpandedRow, len(rows))
	for i, r := range rows {
		block[i] = model.ExpandedRow{
			StrategyID: r.StrategyID,
			PSARunNum:  r.PSARunNum,
			NMB:        r.NMB(wtp),
			WTP:        wtp,
		}
	}
	return block
}

// Expand computes one ExpandAt block per threshold and concatenates them in
// sweep order. Blocks are independent and built by up to workers goroutines;
// the output is the same as a sequential map over the sweep.
func Expand(ctx context.Context, rows []model.PSAResult, sweep []float64, workers int) ([]model.ExpandedRow, error) {
	if workers < 1 {
		workers = 1
	}

	blocks := make([][]model.ExpandedRow, len(sweep))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, wtp := range sweep {
		i, wtp := i, wtp
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			blocks[i] = ExpandAt(rows, wtp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "ceac: expand")
	}

	out := make([]model.ExpandedRow, 0, len(rows)*len(sweep))
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out, nil
}
