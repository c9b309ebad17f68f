package ceac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ceac-cli/internal/model"
)

func TestSelectWinners_MaxPerGroup(t *testing.T) {
	t.Parallel()

	expanded := []model.ExpandedRow{
		{StrategyID: 1, PSARunNum: 1, NMB: 10, WTP: 0},
		{StrategyID: 2, PSARunNum: 1, NMB: 30, WTP: 0},
		{StrategyID: 3, PSARunNum: 1, NMB: 20, WTP: 0},
		{StrategyID: 1, PSARunNum: 2, NMB: 50, WTP: 0},
		{StrategyID: 2, PSARunNum: 2, NMB: 40, WTP: 0},
		{StrategyID: 3, PSARunNum: 2, NMB: -5, WTP: 0},
		{StrategyID: 1, PSARunNum: 1, NMB: 0, WTP: 100},
		{StrategyID: 2, PSARunNum: 1, NMB: 1, WTP: 100},
		{StrategyID: 3, PSARunNum: 1, NMB: 2, WTP: 100},
	}

	winners := SelectWinners(expanded)
	require.Len(t, winners, 3)

	assert.Equal(t, model.ExpandedRow{StrategyID: 2, PSARunNum: 1, NMB: 30, WTP: 0}, winners[0].ExpandedRow)
	assert.Equal(t, model.ExpandedRow{StrategyID: 1, PSARunNum: 2, NMB: 50, WTP: 0}, winners[1].ExpandedRow)
	assert.Equal(t, model.ExpandedRow{StrategyID: 3, PSARunNum: 1, NMB: 2, WTP: 100}, winners[2].ExpandedRow)
	for _, w := range winners {
		assert.False(t, w.Tied)
	}
}

func TestSelectWinners_TieGoesToFirstEncountered(t *testing.T) {
	t.Parallel()

	expanded := []model.ExpandedRow{
		{StrategyID: 3, PSARunNum: 1, NMB: 7, WTP: 0},
		{StrategyID: 1, PSARunNum: 1, NMB: 9, WTP: 0},
		{StrategyID: 2, PSARunNum: 1, NMB: 9, WTP: 0},
		{StrategyID: 4, PSARunNum: 1, NMB: 9, WTP: 0},
	}

	winners := SelectWinners(expanded)
	require.Len(t, winners, 1)
	assert.Equal(t, 1, winners[0].StrategyID)
	assert.True(t, winners[0].Tied)
}

func TestSelectWinners_LaterMaxClearsTie(t *testing.T) {
	t.Parallel()

	expanded := []model.ExpandedRow{
		{StrategyID: 1, PSARunNum: 1, NMB: 5, WTP: 0},
		{StrategyID: 2, PSARunNum: 1, NMB: 5, WTP: 0},
		{StrategyID: 3, PSARunNum: 1, NMB: 6, WTP: 0},
	}

	winners := SelectWinners(expanded)
	require.Len(t, winners, 1)
	assert.Equal(t, 3, winners[0].StrategyID)
	assert.False(t, winners[0].Tied)
}

func TestSelectWinners_OnePerGroup(t *testing.T) {
	t.Parallel()

	// Every strategy has identical outcomes: all groups tie.
	rows := make([]model.PSAResult, 0, 50)
	for r := 1; r <= 10; r++ {
		for s := 1; s <= 5; s++ {
			rows = append(rows, model.PSAResult{StrategyID: s, PSARunNum: r, AvgDiscCost: 100, AvgDiscQALYMult: 1})
		}
	}
	sweep := []float64{0, 50, 100}

	var expanded []model.ExpandedRow
	for _, wtp := range sweep {
		expanded = append(expanded, ExpandAt(rows, wtp)...)
	}

	winners := SelectWinners(expanded)
	require.Len(t, winners, 10*len(sweep))
	for _, w := range winners {
		assert.Equal(t, 1, w.StrategyID)
		assert.True(t, w.Tied)
	}
}

func TestSelectWinners_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, SelectWinners(nil))
}
