package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/ceac-cli/internal/render"
)

var (
	frontierInput  string
	frontierFormat string
	frontierOut    string
)

var frontierCmd = &cobra.Command{
	Use:   "frontier",
	Short: "Show the strategy with the highest mean NMB at each threshold",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		in, err := loadInput(ctx, cfg, frontierInput)
		if err != nil {
			return err
		}

		res, err := runPipeline(ctx, pipelineOptions(cfg, in.strategies), in.rows)
		if err != nil {
			return err
		}

		if frontierOut != "" {
			if err := render.WriteCSV(frontierOut, res.Frontier); err != nil {
				return err
			}
		}
		return render.FrontierTable(cmd.OutOrStdout(), res.Frontier, frontierFormat)
	},
}

func init() {
	addInputFlags(frontierCmd, &frontierInput, &frontierFormat)
	frontierCmd.Flags().StringVar(&frontierOut, "out", "", "also write the frontier to this CSV file")
	rootCmd.AddCommand(frontierCmd)
}
