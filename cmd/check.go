package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/ceac-cli/internal/ceac"
	"github.com/sells-group/ceac-cli/internal/render"
)

var (
	checkInput  string
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a PSA results file without writing outputs",
	Long:  "Runs the pipeline without strict mode and checks that win proportions sum to 1 at every threshold, in both the wide and the long form.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		in, err := loadInput(ctx, cfg, checkInput)
		if err != nil {
			return err
		}

		opts := pipelineOptions(cfg, in.strategies)
		opts.Strict = false

		res, err := runPipeline(ctx, opts, in.rows)
		if err != nil {
			return err
		}

		report := res.Report
		if report.OK() {
			report = ceac.ValidateLong(res.Long, opts.Tolerance)
		}

		if err := render.ValidationTable(cmd.OutOrStdout(), report, checkFormat); err != nil {
			return err
		}
		if !report.OK() {
			return &ceac.AggregationInvariantError{Report: report}
		}
		return nil
	},
}

func init() {
	addInputFlags(checkCmd, &checkInput, &checkFormat)
	rootCmd.AddCommand(checkCmd)
}
