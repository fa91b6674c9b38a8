package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"schelling/internal/config"
	"schelling/internal/registry"
	"schelling/internal/sims/schelling"
)

type runOutput struct {
	Create  registry.CreateResult   `json:"create"`
	Step    *registry.StepResult    `json:"step,omitempty"`
	Metrics *registry.MetricsResult `json:"metrics,omitempty"`
	Stats   schelling.Stats         `json:"stats"`
	History []float64               `json:"history"`
	Moves   []int                   `json:"moves"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Create a model and step it",
		Long: `Create a Schelling model, run it for the requested number of steps and
report the segregation history. Flags override values from --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyRunFlags(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)
			reg := registry.New(logger)

			out := runOutput{}
			out.Create, err = reg.Create(cfg.Run.ModelID, cfg.Model)
			if err != nil {
				return err
			}
			id := out.Create.ModelID
			logger.Info("model created", "model_id", id, "agents", out.Create.NumAgents)

			if cfg.Run.Steps > 0 {
				step, err := reg.Step(id, cfg.Run.Steps)
				if err != nil {
					return err
				}
				out.Step = &step
				metrics, err := reg.Metrics(id)
				if err != nil {
					return err
				}
				out.Metrics = &metrics
			}
			err = reg.With(id, func(m *schelling.Model) error {
				out.Stats = m.Stats()
				out.History = m.History().Values()
				out.Moves = m.Moves()
				return nil
			})
			if err != nil {
				return err
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return printRun(cmd, cfg, out)
		},
	}

	cmd.Flags().String("model-id", "", "Registry id for the model (generated when empty)")
	cmd.Flags().Int("w", 0, "Grid width")
	cmd.Flags().Int("h", 0, "Grid height")
	cmd.Flags().Float64("density", 0, "Fraction of cells occupied (0-1)")
	cmd.Flags().Float64("minority", 0, "Fraction of agents of the minority type (0-1)")
	cmd.Flags().Int("homophily", 0, "Similar neighbours wanted, out of 8")
	cmd.Flags().Int64("seed", 0, "Random seed")
	cmd.Flags().Int("steps", 0, "Number of steps to run")
	return cmd
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("model-id") {
		cfg.Run.ModelID, err = flags.GetString("model-id")
	}
	if err == nil && flags.Changed("w") {
		cfg.Model.Width, err = flags.GetInt("w")
	}
	if err == nil && flags.Changed("h") {
		cfg.Model.Height, err = flags.GetInt("h")
	}
	if err == nil && flags.Changed("density") {
		cfg.Model.Density, err = flags.GetFloat64("density")
	}
	if err == nil && flags.Changed("minority") {
		cfg.Model.MinorityFraction, err = flags.GetFloat64("minority")
	}
	if err == nil && flags.Changed("homophily") {
		cfg.Model.Homophily, err = flags.GetInt("homophily")
	}
	if err == nil && flags.Changed("seed") {
		cfg.Model.Seed, err = flags.GetInt64("seed")
	}
	if err == nil && flags.Changed("steps") {
		cfg.Run.Steps, err = flags.GetInt("steps")
	}
	return err
}

func printRun(cmd *cobra.Command, cfg *config.Config, out runOutput) error {
	w := cmd.OutOrStdout()
	c := out.Create
	fmt.Fprintf(w, "model %s: %dx%d, %d agents, homophily %d/8, seed %d\n",
		c.ModelID, c.Width, c.Height, c.NumAgents, cfg.Model.Homophily, cfg.Model.Seed)
	fmt.Fprintf(w, "initial segregation: %.3f\n", c.InitialSegregation)

	if len(out.History) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "step\tsegregation\tmoves")
		for i, v := range out.History {
			fmt.Fprintf(tw, "%d\t%.3f\t%d\n", i, schelling.Round3(v), out.Moves[i])
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if out.Step != nil {
		fmt.Fprintf(w, "steps completed: %d (total %d)\n", out.Step.StepsCompleted, out.Step.TotalSteps)
		fmt.Fprintf(w, "segregation: current %.3f, initial %.3f\n", out.Step.CurrentSegregation, out.Step.InitialSegregation)
	}
	if out.Metrics != nil {
		fmt.Fprintf(w, "history: mean %.3f, max %.3f\n", out.Metrics.Mean, out.Metrics.Max)
	}
	fmt.Fprintf(w, "now: segregation %.3f, happy %.3f, unsatisfied %d\n",
		schelling.Round3(out.Stats.Segregation), schelling.Round3(out.Stats.HappyFraction), out.Stats.Unsatisfied)
	return nil
}
