package ceac

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ceac-cli/internal/model"
)

func wideFixture() []model.Proportion {
	return []model.Proportion{
		{WTP: 0, Counts: []int{4, 0, 0, 0, 0}, Shares: []float64{1, 0, 0, 0, 0}},
		{WTP: 250000, Counts: []int{1, 1, 1, 1, 0}, Shares: []float64{0.25, 0.25, 0.25, 0.25, 0}},
		{WTP: 500000, Counts: []int{0, 0, 0, 1, 3}, Shares: []float64{0, 0, 0, 0.25, 0.75}},
	}
}

func TestReshape_LongForm(t *testing.T) {
	t.Parallel()

	long := Reshape(wideFixture(), model.DefaultStrategies())
	require.Len(t, long, 15)

	assert.Equal(t, model.LongProportion{WTP: 0, StrategyID: 1, Label: "Never", Share: 1}, long[0])
	assert.Equal(t, model.LongProportion{WTP: 0, StrategyID: 5, Label: "Every 6 Months", Share: 0}, long[4])
	assert.Equal(t, model.LongProportion{WTP: 500000, StrategyID: 5, Label: "Every 6 Months", Share: 0.75}, long[14])
}

func TestReshape_DefaultSize(t *testing.T) {
	t.Parallel()

	wide := make([]model.Proportion, 50)
	for i := range wide {
		wide[i] = model.Proportion{WTP: float64(i), Shares: []float64{1, 0, 0, 0, 0}}
	}
	assert.Len(t, Reshape(wide, model.DefaultStrategies()), 250)
}

func TestReshape_PivotRoundTrip(t *testing.T) {
	t.Parallel()

	wide := wideFixture()
	long := Reshape(wide, model.DefaultStrategies())
	assert.Len(t, long, 5*len(wide))

	back, err := Pivot(long, model.DefaultStrategies())
	require.NoError(t, err)

	// Long form carries shares only.
	opts := cmpopts.IgnoreFields(model.Proportion{}, "Counts", "Ties")
	if diff := cmp.Diff(wide, back, opts); diff != "" {
		t.Errorf("Pivot(Reshape(wide)) mismatch (-want +got):\n%s", diff)
	}
}

func TestPivot_UnknownStrategy(t *testing.T) {
	t.Parallel()

	_, err := Pivot([]model.LongProportion{{WTP: 0, StrategyID: 8, Share: 1}}, model.DefaultStrategies())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy id 8")
}
