package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/ceac-cli/internal/render"
)

var (
	runInput   string
	runFormat  string
	runChart   string
	runOut     string
	runStrict  bool
	runWorkers int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the acceptability curve for a PSA results file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		in, err := loadInput(ctx, cfg, runInput)
		if err != nil {
			return err
		}

		opts := pipelineOptions(cfg, in.strategies)
		if cmd.Flags().Changed("strict") {
			opts.Strict = runStrict
		}
		if runWorkers > 0 {
			opts.Workers = runWorkers
		}

		res, runErr := runPipeline(ctx, opts, in.rows)
		if res == nil {
			return runErr
		}

		out := cmd.OutOrStdout()
		if err := render.ProportionTable(out, res.Wide, in.strategies, runFormat); err != nil {
			return err
		}
		if !res.Report.OK() {
			if err := render.ValidationTable(out, res.Report, runFormat); err != nil {
				return err
			}
		}

		if runChart != "" {
			p, err := render.Chart(res.Long, in.strategies, render.ChartOptions{
				Title:       cfg.Chart.Title,
				XLabel:      cfg.Chart.XLabel,
				YLabel:      cfg.Chart.YLabel,
				LegendTitle: cfg.Chart.LegendTitle,
			})
			if err != nil {
				return eris.Wrap(err, "build chart")
			}
			if err := render.SaveChart(p, runChart, cfg.Chart.WidthIn, cfg.Chart.HeightIn); err != nil {
				return err
			}
		}

		if runOut != "" {
			if err := render.Export(runOut, res, in.strategies); err != nil {
				return err
			}
		}

		zap.L().Info("run complete",
			zap.String("run_id", res.RunID),
			zap.String("input", runInput),
			zap.String("chart", runChart),
			zap.String("out", runOut),
		)
		return runErr
	},
}

func init() {
	addInputFlags(runCmd, &runInput, &runFormat)
	runCmd.Flags().StringVar(&runChart, "chart", "", "write the curve to this image (.png, .svg, .pdf)")
	runCmd.Flags().StringVar(&runOut, "out", "", "export results to this file (.csv, .json, .xlsx)")
	runCmd.Flags().BoolVar(&runStrict, "strict", true, "fail when proportions do not sum to 1")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "parallel expansion workers (0 = analysis.workers)")
	rootCmd.AddCommand(runCmd)
}
