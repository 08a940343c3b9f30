package main

import (
	"fmt"

	"connect4/config"
	"connect4/experiments"

	"github.com/spf13/cobra"
)

func newBenchCmd(root *rootOptions) *cobra.Command {
	var (
		configPath string
		positions  int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure the nodes, leaves and cutoffs of every search agent on random openings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			registry, err := newRegistry()
			if err != nil {
				return err
			}

			dir, err := experiments.RunThroughput(cmd.Context(), cfg, registry, positions, root.seed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "records written to %s\n", dir)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config whose agents are measured")
	cmd.Flags().IntVar(&positions, "positions", 20, "Number of random openings")
	return cmd
}
