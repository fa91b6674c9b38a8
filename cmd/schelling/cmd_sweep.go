package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"schelling/internal/config"
	"schelling/internal/sims/schelling"
	"schelling/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run many seeded models across densities and homophily values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applySweepFlags(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			results, err := sweep.Run(cmd.Context(), sweep.Options{
				Base:       cfg.Model,
				Densities:  cfg.Sweep.Densities,
				Homophily:  cfg.Sweep.Homophily,
				Replicates: cfg.Sweep.Replicates,
				Steps:      cfg.Sweep.Steps,
				Workers:    cfg.SweepWorkers(),
				Logger:     logger,
			})
			if err != nil {
				return err
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "density\thomophily\tbaseline\tfinal\tmin\tmax\thappy\tlast moves")
			for _, r := range results {
				fmt.Fprintf(tw, "%.2f\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.1f\n",
					r.Density, r.Homophily,
					schelling.Round3(r.Baseline),
					schelling.Round3(r.MeanFinal),
					schelling.Round3(r.MinFinal),
					schelling.Round3(r.MaxFinal),
					schelling.Round3(r.MeanHappy),
					r.MeanLastMove)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64Slice("densities", nil, "Densities to sweep (comma separated)")
	cmd.Flags().IntSlice("homophily", nil, "Homophily values to sweep (comma separated)")
	cmd.Flags().Int("replicates", 0, "Seeds per grid point")
	cmd.Flags().Int("steps", 0, "Steps per run")
	cmd.Flags().Int("workers", 0, "Parallel runs (0 = one per CPU)")
	cmd.Flags().Int("w", 0, "Grid width")
	cmd.Flags().Int("h", 0, "Grid height")
	cmd.Flags().Int64("seed", 0, "Base seed; replicate r uses seed+r")
	return cmd
}

func applySweepFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("densities") {
		cfg.Sweep.Densities, err = flags.GetFloat64Slice("densities")
	}
	if err == nil && flags.Changed("homophily") {
		cfg.Sweep.Homophily, err = flags.GetIntSlice("homophily")
	}
	if err == nil && flags.Changed("replicates") {
		cfg.Sweep.Replicates, err = flags.GetInt("replicates")
	}
	if err == nil && flags.Changed("steps") {
		cfg.Sweep.Steps, err = flags.GetInt("steps")
	}
	if err == nil && flags.Changed("workers") {
		cfg.Sweep.Workers, err = flags.GetInt("workers")
	}
	if err == nil && flags.Changed("w") {
		cfg.Model.Width, err = flags.GetInt("w")
	}
	if err == nil && flags.Changed("h") {
		cfg.Model.Height, err = flags.GetInt("h")
	}
	if err == nil && flags.Changed("seed") {
		cfg.Model.Seed, err = flags.GetInt64("seed")
	}
	return err
}
