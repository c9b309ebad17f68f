package ceac

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/ceac-cli/internal/model"
	"github.com/sells-group/ceac-cli/internal/psa"
)

// Options configures a Pipeline.
type Options struct {
	Strategies model.StrategySet
	Runs       int // expected PSA runs; 0 infers from input
	WTPMin     float64
	WTPMax     float64
	Steps      int
	Workers    int
	Strict     bool // a failed sum-to-one check returns AggregationInvariantError
	Tolerance  float64
}

// Result holds every table the pipeline derives from one input.
type Result struct {
	RunID    string                  `json:"run_id"`
	Runs     int                     `json:"runs"`
	Sweep    []float64               `json:"sweep"`
	Expanded []model.ExpandedRow     `json:"-"`
	Winners  []model.Winner          `json:"-"`
	Wide     []model.Proportion      `json:"proportions"`
	Long     []model.LongProportion  `json:"ceac"`
	Frontier []model.FrontierPoint   `json:"frontier"`
	Summary  []model.StrategySummary `json:"summary"`
	Report   ValidationReport        `json:"validation"`
	Ties     int                     `json:"ties"`
}

// Pipeline turns PSA results into an acceptability curve.
type Pipeline struct {
	opts     Options
	validate func(wide []model.Proportion, runs int, tol float64) ValidationReport
}

// New creates a Pipeline.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts, validate: Validate}
}

// Run checks the input layout, expands NMB over the sweep, selects winners,
// aggregates and reshapes proportions, and validates them. When the
// sum-to-one check fails in strict mode Run returns the full Result together
// with an *AggregationInvariantError.
func (p *Pipeline) Run(ctx context.Context, rows []model.PSAResult) (*Result, error) {
	res := &Result{RunID: uuid.New().String()}
	log := zap.L().With(zap.String("run_id", res.RunID))
	start := time.Now()

	runs, err := psa.CheckCardinality(rows, p.opts.Strategies, p.opts.Runs)
	if err != nil {
		return nil, eris.Wrap(err, "ceac: check input")
	}
	res.Runs = runs

	res.Sweep, err = Sweep(p.opts.WTPMin, p.opts.WTPMax, p.opts.Steps)
	if err != nil {
		return nil, err
	}

	log.Info("ceac: starting",
		zap.Int("rows", len(rows)),
		zap.Int("runs", runs),
		zap.Int("strategies", len(p.opts.Strategies)),
		zap.Int("thresholds", len(res.Sweep)),
	)

	res.Expanded, err = Expand(ctx, rows, res.Sweep, p.opts.Workers)
	if err != nil {
		return nil, err
	}

	res.Winners = SelectWinners(res.Expanded)
	for _, w := range res.Winners {
		if w.Tied {
			res.Ties++
		}
	}
	if res.Ties > 0 {
		log.Warn("ceac: tied winners resolved by input order", zap.Int("ties", res.Ties))
	}

	res.Wide, err = Aggregate(res.Winners, p.opts.Strategies, runs)
	if err != nil {
		return nil, err
	}
	res.Long = Reshape(res.Wide, p.opts.Strategies)
	res.Frontier = Frontier(rows, res.Wide, p.opts.Strategies)
	res.Summary = Summarize(rows, p.opts.Strategies)

	res.Report = p.validate(res.Wide, runs, p.opts.Tolerance)

	log.Info("ceac: complete",
		zap.Int("expanded_rows", len(res.Expanded)),
		zap.Int("winners", len(res.Winners)),
		zap.Int("violations", len(res.Report.Violations)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if !res.Report.OK() {
		for _, v := range res.Report.Violations {
			log.Warn("ceac: proportions do not sum to 1",
				zap.Float64("wtp", v.WTP),
				zap.Float64("sum", v.Sum),
			)
		}
		if p.opts.Strict {
			return res, &AggregationInvariantError{Report: res.Report}
		}
	}

	return res, nil
}
