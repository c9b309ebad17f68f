package ceac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ceac-cli/internal/model"
)

func winner(strategy, run int, wtp float64) model.Winner {
	return model.Winner{ExpandedRow: model.ExpandedRow{StrategyID: strategy, PSARunNum: run, WTP: wtp}}
}

func TestAggregate_Shares(t *testing.T) {
	t.Parallel()

	winners := []model.Winner{
		winner(1, 1, 0), winner(1, 2, 0), winner(2, 3, 0), winner(1, 4, 0),
		winner(2, 1, 10), winner(2, 2, 10), winner(2, 3, 10), winner(3, 4, 10),
	}

	wide, err := Aggregate(winners, model.NumberedStrategies(3), 4)
	require.NoError(t, err)
	require.Len(t, wide, 2)

	assert.Equal(t, 0.0, wide[0].WTP)
	assert.Equal(t, []int{3, 1, 0}, wide[0].Counts)
	assert.Equal(t, []float64{0.75, 0.25, 0}, wide[0].Shares)

	assert.Equal(t, 10.0, wide[1].WTP)
	assert.Equal(t, []int{0, 3, 1}, wide[1].Counts)
	assert.Equal(t, []float64{0, 0.75, 0.25}, wide[1].Shares)
}

func TestAggregate_FollowsStrategySetOrder(t *testing.T) {
	t.Parallel()

	set := model.StrategySet{{ID: 2, Label: "B"}, {ID: 1, Label: "A"}}
	wide, err := Aggregate([]model.Winner{winner(1, 1, 0), winner(1, 2, 0)}, set, 2)
	require.NoError(t, err)
	require.Len(t, wide, 1)
	assert.Equal(t, []float64{0, 1}, wide[0].Shares)
}

func TestAggregate_CountsTies(t *testing.T) {
	t.Parallel()

	w := winner(1, 1, 0)
	w.Tied = true
	wide, err := Aggregate([]model.Winner{w, winner(2, 2, 0)}, model.NumberedStrategies(2), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, wide[0].Ties)
}

func TestAggregate_UnknownStrategyBreaksSum(t *testing.T) {
	t.Parallel()

	wide, err := Aggregate([]model.Winner{winner(1, 1, 0), winner(9, 2, 0)}, model.NumberedStrategies(2), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, wide[0].Counts)

	report := Validate(wide, 2, 1e-9)
	require.False(t, report.OK())
	assert.Equal(t, 0.5, report.Violations[0].Sum)
}

func TestAggregate_SumsToOneOnCleanInput(t *testing.T) {
	t.Parallel()

	rows := syntheticRows(5, 1000)
	sweep, err := Sweep(0, 500000, 50)
	require.NoError(t, err)

	var expanded []model.ExpandedRow
	for _, wtp := range sweep {
		expanded = append(expanded, ExpandAt(rows, wtp)...)
	}

	wide, err := Aggregate(SelectWinners(expanded), model.DefaultStrategies(), 1000)
	require.NoError(t, err)
	require.Len(t, wide, 50)

	for _, p := range wide {
		total := 0
		for _, n := range p.Counts {
			total += n
		}
		assert.Equal(t, 1000, total, "wtp=%g", p.WTP)
	}
	assert.True(t, Validate(wide, 1000, 1e-9).OK())
}

func TestAggregate_BadRunCount(t *testing.T) {
	t.Parallel()

	_, err := Aggregate(nil, model.DefaultStrategies(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive run count")
}
