package schelling

import "slices"

// History is an append-only log of segregation measurements, one per step.
// Entry 0 is the baseline taken before any agent moved.
type History struct {
	values []float64
}

// Append records a measurement.
func (h *History) Append(v float64) { h.values = append(h.values, v) }

// Count returns the number of recorded measurements.
func (h *History) Count() int { return len(h.values) }

// Latest returns the most recent measurement.
func (h *History) Latest() (float64, error) {
	if len(h.values) == 0 {
		return 0, ErrEmptyHistory
	}
	return h.values[len(h.values)-1], nil
}

// First returns the baseline measurement.
func (h *History) First() (float64, error) {
	if len(h.values) == 0 {
		return 0, ErrEmptyHistory
	}
	return h.values[0], nil
}

// Mean returns the arithmetic mean of all measurements.
func (h *History) Mean() (float64, error) {
	if len(h.values) == 0 {
		return 0, ErrEmptyHistory
	}
	sum := 0.0
	for _, v := range h.values {
		sum += v
	}
	return sum / float64(len(h.values)), nil
}

// Max returns the largest measurement.
func (h *History) Max() (float64, error) {
	if len(h.values) == 0 {
		return 0, ErrEmptyHistory
	}
	return slices.Max(h.values), nil
}

// Values returns a copy of all measurements in step order.
func (h *History) Values() []float64 { return slices.Clone(h.values) }
