package ceac

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/sells-group/ceac-cli/internal/model"
)

// Violation is a threshold whose win proportions do not sum to 1.
type Violation struct {
	WTP   float64 `json:"wtp"`
	Sum   float64 `json:"sum"`
	Count int     `json:"count,omitempty"` // winners counted; -1 when unknown
}

// ValidationReport lists every threshold that breaks the sum-to-one check.
type ValidationReport struct {
	Thresholds int         `json:"thresholds"`
	Violations []Violation `json:"violations,omitempty"`
}

// OK reports whether every threshold passed.
func (r ValidationReport) OK() bool {
	return len(r.Violations) == 0
}

func (r ValidationReport) String() string {
	if r.OK() {
		return fmt.Sprintf("all %d thresholds sum to 1", r.Thresholds)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d thresholds do not sum to 1:", len(r.Violations), r.Thresholds)
	for _, v := range r.Violations {
		fmt.Fprintf(&b, "\n  wtp=%g sum=%.12g", v.WTP, v.Sum)
	}
	return b.String()
}

// Validate checks that the proportions at each threshold sum to 1. Integer
// counts must sum to runs exactly; shares must sum to 1 within tol.
func Validate(wide []model.Proportion, runs int, tol float64) ValidationReport {
	report := ValidationReport{Thresholds: len(wide)}
	for _, p := range wide {
		sum := floats.Sum(p.Shares)
		count := -1
		countOK := true
		if p.Counts != nil {
			count = 0
			for _, n := range p.Counts {
				count += n
			}
			countOK = count == runs
		}
		if !countOK || math.Abs(sum-1) > tol {
			report.Violations = append(report.Violations, Violation{WTP: p.WTP, Sum: sum, Count: count})
		}
	}
	return report
}

// ValidateLong sums the long-form proportions per threshold and checks each
// sum is 1 within tol.
func ValidateLong(long []model.LongProportion, tol float64) ValidationReport {
	index := make(map[float64]int)
	var wtps []float64
	var sums []float64
	for _, l := range long {
		i, ok := index[l.WTP]
		if !ok {
			i = len(sums)
			index[l.WTP] = i
			wtps = append(wtps, l.WTP)
			sums = append(sums, 0)
		}
		sums[i] += l.Share
	}

	report := ValidationReport{Thresholds: len(sums)}
	for i, sum := range sums {
		if math.Abs(sum-1) > tol {
			report.Violations = append(report.Violations, Violation{WTP: wtps[i], Sum: sum, Count: -1})
		}
	}
	return report
}
