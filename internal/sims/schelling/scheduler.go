package schelling

import pcore "schelling/pkg/core"

// Scheduler activates every agent once per step in a freshly shuffled order.
type Scheduler struct {
	order []*Agent
	steps int
}

// ActivateAll shuffles a copy of agents with rng and calls fn on each agent
// exactly once in that order. The first error from fn stops the pass.
func (s *Scheduler) ActivateAll(agents []*Agent, rng *pcore.RNG, fn func(*Agent) error) error {
	s.order = append(s.order[:0], agents...)
	rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	s.steps++
	for _, a := range s.order {
		if err := fn(a); err != nil {
			return err
		}
	}
	return nil
}

// Steps returns how many activation passes have run.
func (s *Scheduler) Steps() int { return s.steps }
