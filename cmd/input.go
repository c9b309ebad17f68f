package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/ceac-cli/internal/ceac"
	"github.com/sells-group/ceac-cli/internal/config"
	"github.com/sells-group/ceac-cli/internal/model"
	"github.com/sells-group/ceac-cli/internal/psa"
)

// analysisInput is what every subcommand needs before it can compute.
type analysisInput struct {
	strategies model.StrategySet
	rows       []model.PSAResult
}

func addInputFlags(cmd *cobra.Command, path *string, format *string) {
	cmd.Flags().StringVar(path, "input", "", "path to PSA results (.csv or .xlsx, required)")
	cmd.Flags().StringVar(format, "format", "table", "table format: table, markdown, csv, html")
	_ = cmd.MarkFlagRequired("input")
}

// runPipeline runs the acceptability pipeline. Tests replace it.
var runPipeline = func(ctx context.Context, opts ceac.Options, rows []model.PSAResult) (*ceac.Result, error) {
	return ceac.New(opts).Run(ctx, rows)
}

// loadInput reads the strategy labels and the PSA results file.
func loadInput(ctx context.Context, c *config.Config, path string) (*analysisInput, error) {
	strategies, err := config.LoadStrategies(c.Strategies.LabelsFile, c.Analysis.NumStrategies)
	if err != nil {
		return nil, err
	}

	rows, err := psa.Load(ctx, path, psa.Options{
		Format:    c.Input.Format,
		HasHeader: c.Input.HasHeader,
		Sheet:     c.Input.Sheet,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "load %s", path)
	}

	return &analysisInput{strategies: strategies, rows: rows}, nil
}

// pipelineOptions maps analysis config onto pipeline options.
func pipelineOptions(c *config.Config, strategies model.StrategySet) ceac.Options {
	return ceac.Options{
		Strategies: strategies,
		Runs:       c.Analysis.NumRuns,
		WTPMin:     c.Analysis.WTPMin,
		WTPMax:     c.Analysis.WTPMax,
		Steps:      c.Analysis.WTPSteps,
		Workers:    c.Analysis.Workers,
		Strict:     c.Analysis.Strict,
		Tolerance:  c.Analysis.Tolerance,
	}
}
