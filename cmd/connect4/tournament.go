package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"connect4/config"
	"connect4/experiments"

	"github.com/spf13/cobra"
)

func newTournamentCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Run the match ups of a tournament config and write CSV records",
		Long: `Run every match up of a YAML tournament config and write agent_configs.csv,
game_records.csv and move_records.csv under <out_dir>/<name>/<timestamp>.

Without --config the default tournament is played. Write it with 'connect4 init'
to start from a template.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
				if !cmd.Flags().Changed("log-level") {
					if err := setupLogging(cfg.LogLevel); err != nil {
						return err
					}
				}
			}
			if outDir != "" {
				cfg.Tournament.OutDir = outDir
			}
			return runTournament(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the tournament YAML config")
	cmd.Flags().StringVar(&outDir, "out", "", "Override the output directory of the config")
	return cmd
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	var (
		base     config.AgentConfig
		maxDepth int
		games    int
		parallel int
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Play an algorithm against itself one ply deeper, for every depth up to --max-depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base.Seed = root.seed
			agents, matchUps, err := experiments.DepthSweep(base, maxDepth)
			if err != nil {
				return err
			}

			cfg := config.Default()
			cfg.Agents = agents
			cfg.Tournament = config.Tournament{
				Name:     "sweep_" + base.Algorithm,
				Games:    games,
				Parallel: parallel,
				OutDir:   outDir,
				MatchUps: matchUps,
			}
			return runTournament(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&base.Algorithm, "algorithm", config.AlphaBetaAlgorithm, "Algorithm to sweep: minimax or alphabeta")
	cmd.Flags().StringVar(&base.Evaluation, "eval", config.DefaultEvaluation, "Evaluation function")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 4, "Deepest search of the sweep")
	cmd.Flags().IntVar(&games, "games", 10, "Games per match up")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "Games played concurrently")
	cmd.Flags().StringVar(&outDir, "out", "experiments", "Output directory")
	return cmd
}

func runTournament(cmd *cobra.Command, cfg config.Config) error {
	registry, err := newRegistry()
	if err != nil {
		return err
	}
	report, err := experiments.Run(cmd.Context(), cfg, registry)
	if err != nil {
		return err
	}
	return printReport(cmd.OutOrStdout(), report)
}

func printReport(w io.Writer, report experiments.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "X\tO\tX wins\tO wins\tdraws\tunfinished")
	for _, s := range report.Standings {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\n", s.X, s.O, s.XWins, s.OWins, s.Draws, s.Unfinished)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "records written to %s\n", report.Dir)
	return err
}
