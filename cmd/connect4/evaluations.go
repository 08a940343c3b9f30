package main

import (
	"fmt"

	"connect4/config"

	"github.com/spf13/cobra"
)

func newEvaluationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluations",
		Short: "List the registered evaluation functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := newRegistry()
			if err != nil {
				return err
			}
			for _, name := range registry.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init PATH",
		Short: "Write the default tournament config to PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Write(args[0], config.Default()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return err
		},
	}
}
