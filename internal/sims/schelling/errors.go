package schelling

import "errors"

var (
	// ErrInvalidConfig reports a configuration that cannot produce a model:
	// dimensions, fractions or homophily out of range, or more agents than cells.
	ErrInvalidConfig = errors.New("schelling: invalid config")

	// ErrGridFull is returned when an empty cell is required but none exists.
	// During relocation it is absorbed and the agent stays put.
	ErrGridFull = errors.New("schelling: no empty cell")

	// ErrOccupiedCell signals a placement onto a taken cell. Correct grid
	// bookkeeping never produces it.
	ErrOccupiedCell = errors.New("schelling: cell already occupied")

	// ErrAgentNotPlaced signals a move of an agent the grid does not hold at
	// its recorded position.
	ErrAgentNotPlaced = errors.New("schelling: agent not on grid")

	// ErrAgentPlaced signals a placement of an agent the grid already holds.
	ErrAgentPlaced = errors.New("schelling: agent already on grid")

	// ErrEmptyHistory is returned by history queries before any step ran.
	ErrEmptyHistory = errors.New("schelling: metric history is empty")
)
