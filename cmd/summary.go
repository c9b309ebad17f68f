package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/ceac-cli/internal/ceac"
	"github.com/sells-group/ceac-cli/internal/psa"
	"github.com/sells-group/ceac-cli/internal/render"
)

var (
	summaryInput  string
	summaryFormat string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-strategy mean outcomes across PSA runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		in, err := loadInput(cmd.Context(), cfg, summaryInput)
		if err != nil {
			return err
		}

		if _, err := psa.CheckCardinality(in.rows, in.strategies, cfg.Analysis.NumRuns); err != nil {
			return eris.Wrap(err, "check input")
		}

		return render.SummaryTable(cmd.OutOrStdout(), ceac.Summarize(in.rows, in.strategies), summaryFormat)
	},
}

func init() {
	addInputFlags(summaryCmd, &summaryInput, &summaryFormat)
	rootCmd.AddCommand(summaryCmd)
}
