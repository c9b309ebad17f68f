// Package ceac computes cost-effectiveness acceptability curves from PSA
// results: net monetary benefit over a willingness-to-pay sweep, the winning
// strategy per run, and the share of runs each strategy wins.
package ceac

import (
	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/floats"
)

// Sweep returns steps evenly spaced willingness-to-pay thresholds from min
// to max inclusive. The endpoints are exact and max must exceed min, so
// every threshold is distinct.
func Sweep(min, max float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, eris.Errorf("ceac: sweep needs at least 2 steps, got %d", steps)
	}
	if !(max > min) {
		return nil, eris.Errorf("ceac: sweep max %g must exceed min %g", max, min)
	}

	out := floats.Span(make([]float64, steps), min, max)
	out[len(out)-1] = max
	return out, nil
}
