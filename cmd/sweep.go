package cmd

import (
	"fmt"
	"ur/experiments"
	"ur/experiments/metrics"

	"github.com/spf13/cobra"
)

func Sweep() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Measure tree size and time for a range of horizons",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			horizons, _ := cmd.Flags().GetIntSlice("horizons")
			outDir, _ := cmd.Flags().GetString("out")

			var writer *metrics.Writer
			if outDir != "" {
				writer, err = metrics.NewWriter(outDir)
				if err != nil {
					return err
				}
			}

			records, err := experiments.RunHorizonSweep(cfg, horizons, writer)
			if err != nil {
				return err
			}
			for _, record := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "horizon %d: %d nodes, %d terminal, %v\n",
					record.Horizon, record.Nodes, record.Terminals, record.Duration)
			}
			return nil
		},
	}

	cmd.Flags().IntSlice("horizons", experiments.DefaultHorizons, "Horizons to explore")
	cmd.Flags().String("out", "", "Directory for sweep.csv")

	return cmd
}
