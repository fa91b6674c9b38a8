package schelling

import (
	"fmt"

	"schelling/internal/core"
	pcore "schelling/pkg/core"
)

// Model is a single Schelling run: grid, agents, scheduler and metric log.
// A Model is not safe for concurrent use; distinct models share no state.
type Model struct {
	cfg       Config
	threshold float64

	rng     *pcore.RNG
	grid    *Grid
	agents  []*Agent
	sched   Scheduler
	history History
	moves   []int

	display *core.ByteGrid
}

// New builds a model seeded from cfg.Seed.
func New(cfg Config) (*Model, error) {
	return NewWithRNG(cfg, pcore.NewRNG(cfg.Seed))
}

// NewWithRNG builds a model that draws all randomness from rng.
func NewWithRNG(cfg Config, rng *pcore.RNG) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = pcore.NewRNG(cfg.Seed)
	}
	m := &Model{
		cfg:       cfg,
		threshold: cfg.Threshold(),
		rng:       rng,
		display:   core.NewByteGrid(cfg.Width, cfg.Height),
	}
	if err := m.populate(); err != nil {
		return nil, err
	}
	return m, nil
}

// populate types and places every agent. Cells are drawn uniformly and
// redrawn while occupied.
func (m *Model) populate() error {
	n := m.cfg.AgentCount()
	m.grid = NewGrid(m.cfg.Width, m.cfg.Height)
	m.agents = make([]*Agent, 0, n)
	m.history = History{}
	m.moves = nil
	m.sched = Scheduler{}

	for i := 0; i < n; i++ {
		kind := Majority
		if m.rng.Chance(m.cfg.MinorityFraction) {
			kind = Minority
		}
		a := NewAgent(i, kind)
		if m.grid.EmptyCount() == 0 {
			return fmt.Errorf("placing agent %d: %w", i, ErrGridFull)
		}
		for {
			p := Position{X: m.rng.IntN(m.cfg.Width), Y: m.rng.IntN(m.cfg.Height)}
			if !m.grid.IsEmpty(p) {
				continue
			}
			if err := m.grid.Place(a, p); err != nil {
				return err
			}
			break
		}
		m.agents = append(m.agents, a)
	}
	return nil
}

// Name returns the simulation identifier.
func (m *Model) Name() string { return "schelling" }

// Size returns the grid dimensions.
func (m *Model) Size() core.Size { return m.grid.Size() }

// Config returns the configuration of the current run.
func (m *Model) Config() Config { return m.cfg }

// Grid exposes the spatial grid for inspection.
func (m *Model) Grid() *Grid { return m.grid }

// Agents returns the population in id order.
func (m *Model) Agents() []*Agent { return append([]*Agent(nil), m.agents...) }

// Positions returns every agent's position in id order.
func (m *Model) Positions() []Position {
	out := make([]Position, len(m.agents))
	for i, a := range m.agents {
		out[i] = a.pos
	}
	return out
}

// History exposes the segregation log.
func (m *Model) History() *History { return &m.history }

// Series returns a copy of the recorded segregation values.
func (m *Model) Series() []float64 { return m.history.Values() }

// Moves returns the number of relocations in each completed step.
func (m *Model) Moves() []int { return append([]int(nil), m.moves...) }

// Steps returns the number of steps taken.
func (m *Model) Steps() int { return m.sched.Steps() }

// Reset starts a new run with the same configuration. A zero seed reuses the
// configured seed.
func (m *Model) Reset(seed int64) error {
	if seed != 0 {
		m.cfg.Seed = seed
	}
	m.rng = pcore.NewRNG(m.cfg.Seed)
	return m.populate()
}

// MeasureSegregation returns the fraction of agent-neighbour pairs that share
// a type, or 0 when no agent has a neighbour.
func (m *Model) MeasureSegregation() float64 {
	similar, total := 0, 0
	for _, a := range m.agents {
		s, t := m.grid.countNeighbors(a.pos, a.kind)
		similar += s
		total += t
	}
	if total == 0 {
		return 0
	}
	return float64(similar) / float64(total)
}

// Step records the current segregation and then activates every agent once.
func (m *Model) Step() error {
	m.history.Append(m.MeasureSegregation())
	moved := 0
	err := m.sched.ActivateAll(m.agents, m.rng, func(a *Agent) error {
		ok, err := a.Step(m.grid, m.threshold, m.rng)
		if ok {
			moved++
		}
		return err
	})
	m.moves = append(m.moves, moved)
	if err != nil {
		return fmt.Errorf("step %d: %w", m.history.Count()-1, err)
	}
	return nil
}

// Run takes n steps in sequence. Steps completed before a failure stay in the
// history.
func (m *Model) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Unsatisfied returns how many agents would relocate if activated now.
func (m *Model) Unsatisfied() int {
	n := 0
	for _, a := range m.agents {
		if !a.IsSatisfied(m.grid, m.threshold) {
			n++
		}
	}
	return n
}

// UnsatisfiedMask marks, in row-major order, the cells whose agent is
// currently unsatisfied.
func (m *Model) UnsatisfiedMask() []bool {
	mask := make([]bool, m.cfg.Cells())
	for _, a := range m.agents {
		if !a.IsSatisfied(m.grid, m.threshold) {
			mask[m.grid.index(a.pos)] = true
		}
	}
	return mask
}

// Stats summarises the current state of the run.
type Stats struct {
	Agents        int     `json:"agents"`
	Minority      int     `json:"minority"`
	Empty         int     `json:"empty"`
	Unsatisfied   int     `json:"unsatisfied"`
	HappyFraction float64 `json:"happy_fraction"`
	Steps         int     `json:"steps"`
	Segregation   float64 `json:"segregation"`
}

// Stats computes a summary of the current state.
func (m *Model) Stats() Stats {
	s := Stats{
		Agents:      len(m.agents),
		Empty:       m.grid.EmptyCount(),
		Unsatisfied: m.Unsatisfied(),
		Steps:       m.Steps(),
		Segregation: m.MeasureSegregation(),
	}
	for _, a := range m.agents {
		if a.kind == Minority {
			s.Minority++
		}
	}
	if s.Agents > 0 {
		s.HappyFraction = float64(s.Agents-s.Unsatisfied) / float64(s.Agents)
	}
	return s
}

func init() {
	core.Register("schelling", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
