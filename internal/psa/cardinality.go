package psa

import (
	"fmt"
	"sort"

	"github.com/sells-group/ceac-cli/internal/model"
)

// CheckCardinality verifies that rows hold exactly one result per strategy
// per PSA run and returns the number of distinct runs. When wantRuns is
// positive the run count must match it.
func CheckCardinality(rows []model.PSAResult, strategies model.StrategySet, wantRuns int) (int, error) {
	n := len(strategies)
	if len(rows) == 0 {
		return 0, &InputCardinalityError{Reason: "no PSA results"}
	}
	if n == 0 {
		return 0, &InputCardinalityError{Reason: "no strategies configured", Rows: len(rows)}
	}

	seen := make(map[int]map[int]bool)
	for _, r := range rows {
		if strategies.Index(r.StrategyID) < 0 {
			return 0, &InputCardinalityError{
				Reason: fmt.Sprintf("run %d has unknown strategy id %d", r.PSARunNum, r.StrategyID),
				Rows:   len(rows),
				Runs:   len(seen),
			}
		}
		byStrategy, ok := seen[r.PSARunNum]
		if !ok {
			byStrategy = make(map[int]bool, n)
			seen[r.PSARunNum] = byStrategy
		}
		if byStrategy[r.StrategyID] {
			return 0, &InputCardinalityError{
				Reason: fmt.Sprintf("run %d has more than one row for strategy %d", r.PSARunNum, r.StrategyID),
				Rows:   len(rows),
				Runs:   len(seen),
			}
		}
		byStrategy[r.StrategyID] = true
	}

	runs := len(seen)
	if len(rows)%n != 0 {
		return runs, &InputCardinalityError{
			Reason: fmt.Sprintf("row count is not a multiple of %d strategies", n),
			Rows:   len(rows),
			Runs:   runs,
		}
	}

	var incomplete []int
	for run, byStrategy := range seen {
		if len(byStrategy) != n {
			incomplete = append(incomplete, run)
		}
	}
	if len(incomplete) > 0 {
		sort.Ints(incomplete)
		return runs, &InputCardinalityError{
			Reason: fmt.Sprintf("%d runs are missing strategies (first: run %d)", len(incomplete), incomplete[0]),
			Rows:   len(rows),
			Runs:   runs,
		}
	}

	if wantRuns > 0 && runs != wantRuns {
		return runs, &InputCardinalityError{
			Reason: fmt.Sprintf("expected %d PSA runs", wantRuns),
			Rows:   len(rows),
			Runs:   runs,
		}
	}

	return runs, nil
}
