package model

import "strconv"

// Strategy is a screening strategy compared in the PSA.
type Strategy struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// StrategySet is an ordered list of strategies. Position in the set is the
// column index used by Proportion.Counts and Proportion.Shares.
type StrategySet []Strategy

// DefaultStrategies returns the five screening strategies of the reference
// analysis.
func DefaultStrategies() StrategySet {
	return StrategySet{
		{ID: 1, Label: "Never"},
		{ID: 2, Label: "One-Time"},
		{ID: 3, Label: "Every 2 Years"},
		{ID: 4, Label: "Every 1 Year"},
		{ID: 5, Label: "Every 6 Months"},
	}
}

// NumberedStrategies returns n strategies with ids 1..n, taking labels from
// the defaults where they exist and "Strategy <id>" otherwise.
func NumberedStrategies(n int) StrategySet {
	defaults := DefaultStrategies()
	set := make(StrategySet, 0, n)
	for id := 1; id <= n; id++ {
		label := "Strategy " + strconv.Itoa(id)
		if id <= len(defaults) {
			label = defaults[id-1].Label
		}
		set = append(set, Strategy{ID: id, Label: label})
	}
	return set
}

// IDs returns strategy ids in set order.
func (s StrategySet) IDs() []int {
	ids := make([]int, len(s))
	for i, st := range s {
		ids[i] = st.ID
	}
	return ids
}

// Index returns the position of id in the set, or -1.
func (s StrategySet) Index(id int) int {
	for i, st := range s {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// Label returns the display label for id, falling back to the numeric id.
func (s StrategySet) Label(id int) string {
	if i := s.Index(id); i >= 0 {
		return s[i].Label
	}
	return strconv.Itoa(id)
}
