package ceac

import "fmt"

// AggregationInvariantError reports thresholds whose win proportions do not
// sum to 1: a leaked tie, a missing strategy, or malformed input.
type AggregationInvariantError struct {
	Report ValidationReport
}

func (e *AggregationInvariantError) Error() string {
	v := e.Report.Violations
	if len(v) == 0 {
		return "ceac: aggregation invariant violated"
	}
	return fmt.Sprintf("ceac: proportions do not sum to 1 at %d of %d thresholds (first: wtp=%g sum=%.12g)",
		len(v), e.Report.Thresholds, v[0].WTP, v[0].Sum)
}
