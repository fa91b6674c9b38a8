package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"schelling/internal/sims/schelling"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Show the parameters of the configured model",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			m, err := schelling.New(cfg.Model)
			if err != nil {
				return err
			}
			snap := m.Parameters()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd.OutOrStdout(), snap)
			}
			w := cmd.OutOrStdout()
			for _, g := range snap.Groups {
				fmt.Fprintf(w, "%s\n", g.Name)
				for _, p := range g.Params {
					fmt.Fprintf(w, "  %-20s %s\n", p.Label, p.Value)
				}
			}
			return nil
		},
	}
}
