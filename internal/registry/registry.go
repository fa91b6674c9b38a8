// Package registry keeps live Schelling models addressable by a string id and
// exposes the create / step / query operations used by the CLI.
//
// Each model is guarded by its own mutex: two steps of the same model never
// overlap, while different models may be stepped from different goroutines.
// Values returned from the registry are rounded to three decimals; the models
// themselves keep full precision.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"schelling/internal/logging"
	"schelling/internal/sims/schelling"
)

var (
	// ErrModelNotFound is returned for ids the registry does not hold.
	ErrModelNotFound = errors.New("registry: model not found")
	// ErrInvalidSteps is returned for negative step counts.
	ErrInvalidSteps = errors.New("registry: step count must not be negative")
)

type entry struct {
	mu    sync.Mutex
	model *schelling.Model
}

// Registry maps ids to models.
type Registry struct {
	mu     sync.RWMutex
	models map[string]*entry
	logger *slog.Logger
}

// New returns an empty registry. A nil logger discards output.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Registry{models: map[string]*entry{}, logger: logger}
}

// CreateResult describes a newly created model.
type CreateResult struct {
	ModelID            string  `json:"model_id"`
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	NumAgents          int     `json:"num_agents"`
	InitialSegregation float64 `json:"initial_segregation"`
}

// StepResult reports the outcome of stepping a model.
type StepResult struct {
	ModelID            string  `json:"model_id"`
	StepsCompleted     int     `json:"steps_completed"`
	TotalSteps         int     `json:"total_steps"`
	CurrentSegregation float64 `json:"current_segregation"`
	InitialSegregation float64 `json:"initial_segregation"`
}

// MetricsResult summarises a model's segregation history.
type MetricsResult struct {
	ModelID    string  `json:"model_id"`
	Current    float64 `json:"current_segregation"`
	Mean       float64 `json:"mean_segregation"`
	Max        float64 `json:"max_segregation"`
	TotalSteps int     `json:"total_steps"`
}

// Create builds a model from cfg and stores it under id, replacing any model
// already stored there. An empty id gets a generated one.
func (r *Registry) Create(id string, cfg schelling.Config) (CreateResult, error) {
	m, err := schelling.New(cfg)
	if err != nil {
		return CreateResult{}, fmt.Errorf("create model %q: %w", id, err)
	}
	if id == "" {
		id = uuid.NewString()
	}

	r.mu.Lock()
	_, replaced := r.models[id]
	r.models[id] = &entry{model: m}
	r.mu.Unlock()

	if replaced {
		r.logger.Info("replaced model", "model_id", id)
	}
	r.logger.Debug("created model",
		"model_id", id,
		"width", cfg.Width,
		"height", cfg.Height,
		"agents", len(m.Agents()),
		"seed", cfg.Seed,
	)

	size := m.Size()
	return CreateResult{
		ModelID:            id,
		Width:              size.W,
		Height:             size.H,
		NumAgents:          len(m.Agents()),
		InitialSegregation: schelling.Round3(m.MeasureSegregation()),
	}, nil
}

func (r *Registry) lookup(id string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.models[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, id)
	}
	return e, nil
}

// Step advances the model n steps and reports the segregation recorded before
// the last of them. A count of zero is treated as one, the default step count
// of a request that names none; callers that want no step should not call
// Step. Negative counts return ErrInvalidSteps.
func (r *Registry) Step(id string, n int) (StepResult, error) {
	if n < 0 {
		return StepResult{}, fmt.Errorf("%w: %d", ErrInvalidSteps, n)
	}
	if n == 0 {
		n = 1
	}
	e, err := r.lookup(id)
	if err != nil {
		return StepResult{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.model.Run(n); err != nil {
		return StepResult{}, fmt.Errorf("step model %q: %w", id, err)
	}
	h := e.model.History()
	current, err := h.Latest()
	if err != nil {
		return StepResult{}, err
	}
	initial, err := h.First()
	if err != nil {
		return StepResult{}, err
	}
	r.logger.Debug("stepped model", "model_id", id, "steps", n, "total_steps", h.Count(), "segregation", current)

	return StepResult{
		ModelID:            id,
		StepsCompleted:     n,
		TotalSteps:         h.Count(),
		CurrentSegregation: schelling.Round3(current),
		InitialSegregation: schelling.Round3(initial),
	}, nil
}

// Metrics summarises the model's recorded history.
func (r *Registry) Metrics(id string) (MetricsResult, error) {
	e, err := r.lookup(id)
	if err != nil {
		return MetricsResult{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.model.History()
	current, err := h.Latest()
	if err != nil {
		return MetricsResult{}, fmt.Errorf("metrics for %q: %w", id, err)
	}
	mean, _ := h.Mean()
	max, _ := h.Max()
	return MetricsResult{
		ModelID:    id,
		Current:    schelling.Round3(current),
		Mean:       schelling.Round3(mean),
		Max:        schelling.Round3(max),
		TotalSteps: h.Count(),
	}, nil
}

// Stats returns the live summary of the model.
func (r *Registry) Stats(id string) (schelling.Stats, error) {
	var stats schelling.Stats
	err := r.With(id, func(m *schelling.Model) error {
		stats = m.Stats()
		return nil
	})
	return stats, err
}

// With runs fn while holding the model's lock.
func (r *Registry) With(id string, fn func(*schelling.Model) error) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.model)
}

// Delete removes the model and reports whether it existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	_, ok := r.models[id]
	delete(r.models, id)
	r.mu.Unlock()
	if ok {
		r.logger.Debug("deleted model", "model_id", id)
	}
	return ok
}

// IDs lists stored model ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Len returns the number of stored models.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}
