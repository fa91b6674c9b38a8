// Package sweep runs seeded Schelling models across a grid of densities and
// homophily values and aggregates the final segregation of each grid point.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"schelling/internal/logging"
	"schelling/internal/sims/schelling"
)

// Point is one cell of the parameter grid.
type Point struct {
	Density   float64 `json:"density"`
	Homophily int     `json:"homophily"`
}

func (p Point) String() string {
	return fmt.Sprintf("density=%.2f homophily=%d", p.Density, p.Homophily)
}

// Options configures a sweep. Replicate r of every point is seeded with
// Base.Seed+r, so points are compared on common random numbers.
type Options struct {
	Base       schelling.Config
	Densities  []float64
	Homophily  []int
	Replicates int
	Steps      int
	Workers    int
	Logger     *slog.Logger
}

// Result aggregates the replicates of one point. Segregation values are full
// precision; callers round for display.
type Result struct {
	Point
	Replicates   int     `json:"replicates"`
	Baseline     float64 `json:"baseline_segregation"`
	MeanFinal    float64 `json:"mean_final_segregation"`
	MinFinal     float64 `json:"min_final_segregation"`
	MaxFinal     float64 `json:"max_final_segregation"`
	MeanHappy    float64 `json:"mean_happy_fraction"`
	MeanLastMove float64 `json:"mean_last_step_moves"`
}

type job struct {
	point     Point
	replicate int
}

type outcome struct {
	baseline float64
	final    float64
	happy    float64
	lastMove int
}

// Run executes every (point, replicate) pair on a bounded worker pool and
// returns one Result per point ordered by density then homophily.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Replicates < 1 {
		opts.Replicates = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	points := Grid(opts.Densities, opts.Homophily)
	var jobs []job
	for _, p := range points {
		cfg := opts.Base
		cfg.Density = p.Density
		cfg.Homophily = p.Homophily
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("sweep point %v: %w", p, err)
		}
		for r := 0; r < opts.Replicates; r++ {
			jobs = append(jobs, job{point: p, replicate: r})
		}
	}

	logger.Info("sweeping parameter grid",
		"points", len(points),
		"replicates", opts.Replicates,
		"workers", opts.Workers,
		"steps", opts.Steps,
	)

	outcomes := make([]outcome, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := runScenario(opts.Base, j, opts.Steps)
			if err != nil {
				return fmt.Errorf("sweep %v replicate %d: %w", j.point, j.replicate, err)
			}
			logger.Log(ctx, logging.LevelTrace, "scenario done",
				"density", j.point.Density,
				"homophily", j.point.Homophily,
				"replicate", j.replicate,
				"final", out.final,
			)
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(points))
	for pi, p := range points {
		res := Result{Point: p, Replicates: opts.Replicates, MinFinal: math.Inf(1), MaxFinal: math.Inf(-1)}
		for r := 0; r < opts.Replicates; r++ {
			out := outcomes[pi*opts.Replicates+r]
			res.Baseline += out.baseline
			res.MeanFinal += out.final
			res.MeanHappy += out.happy
			res.MeanLastMove += float64(out.lastMove)
			res.MinFinal = math.Min(res.MinFinal, out.final)
			res.MaxFinal = math.Max(res.MaxFinal, out.final)
		}
		n := float64(opts.Replicates)
		res.Baseline /= n
		res.MeanFinal /= n
		res.MeanHappy /= n
		res.MeanLastMove /= n
		results = append(results, res)
	}
	return results, nil
}

// Grid expands densities x homophily into points sorted by density, then
// homophily. Duplicate values collapse.
func Grid(densities []float64, homophily []int) []Point {
	seen := map[Point]bool{}
	var points []Point
	for _, d := range densities {
		for _, h := range homophily {
			p := Point{Density: d, Homophily: h}
			if seen[p] {
				continue
			}
			seen[p] = true
			points = append(points, p)
		}
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Density != points[j].Density {
			return points[i].Density < points[j].Density
		}
		return points[i].Homophily < points[j].Homophily
	})
	return points
}

func runScenario(base schelling.Config, j job, steps int) (outcome, error) {
	cfg := base
	cfg.Density = j.point.Density
	cfg.Homophily = j.point.Homophily
	cfg.Seed = base.Seed + int64(j.replicate)

	m, err := schelling.New(cfg)
	if err != nil {
		return outcome{}, err
	}
	out := outcome{baseline: m.MeasureSegregation()}
	if err := m.Run(steps); err != nil {
		return outcome{}, err
	}
	stats := m.Stats()
	out.final = stats.Segregation
	out.happy = stats.HappyFraction
	if moves := m.Moves(); len(moves) > 0 {
		out.lastMove = moves[len(moves)-1]
	}
	return out, nil
}
