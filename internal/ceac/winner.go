package ceac

import "github.com/sells-group/ceac-cli/internal/model"

type groupKey struct {
	run int
	wtp float64
}

// SelectWinners returns the row with the highest NMB in each (run, WTP)
// group, groups ordered by first appearance. On a tie the row met first in
// input order keeps the win and the winner is marked Tied.
func SelectWinners(expanded []model.ExpandedRow) []model.Winner {
	index := make(map[groupKey]int)
	var winners []model.Winner

	for _, r := range expanded {
		k := groupKey{run: r.PSARunNum, wtp: r.WTP}
		i, ok := index[k]
		if !ok {
			index[k] = len(winners)
			winners = append(winners, model.Winner{ExpandedRow: r})
			continue
		}

		w := &winners[i]
		switch {
		case r.NMB > w.NMB:
			w.ExpandedRow = r
			w.Tied = false
		case r.NMB == w.NMB:
			w.Tied = true
		}
	}

	return winners
}
