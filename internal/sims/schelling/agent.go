package schelling

import (
	"errors"

	pcore "schelling/pkg/core"
)

// AgentType labels which group an agent belongs to.
type AgentType uint8

const (
	// Majority is the type assigned with probability 1-MinorityFraction.
	Majority AgentType = 0
	// Minority is the type assigned with probability MinorityFraction.
	Minority AgentType = 1
)

func (t AgentType) String() string {
	if t == Minority {
		return "minority"
	}
	return "majority"
}

// Agent is a resident of the grid. Its id and type never change; its position
// is owned by the Grid.
type Agent struct {
	id   int
	kind AgentType
	pos  Position
}

// NewAgent creates an unplaced agent.
func NewAgent(id int, kind AgentType) *Agent {
	return &Agent{id: id, kind: kind}
}

// ID returns the agent's unique id.
func (a *Agent) ID() int { return a.id }

// Type returns the agent's group.
func (a *Agent) Type() AgentType { return a.kind }

// Pos returns the cell the agent currently occupies.
func (a *Agent) Pos() Position { return a.pos }

// IsSatisfied reports whether at least threshold of the agent's occupied
// neighbours share its type. An agent with no neighbours is satisfied.
func (a *Agent) IsSatisfied(g *Grid, threshold float64) bool {
	similar, total := g.countNeighbors(a.pos, a.kind)
	if total == 0 {
		return true
	}
	return float64(similar)/float64(total) >= threshold
}

// Step relocates an unsatisfied agent to a random empty cell. A full grid
// leaves the agent where it is. It reports whether the agent moved.
func (a *Agent) Step(g *Grid, threshold float64, rng *pcore.RNG) (bool, error) {
	if a.IsSatisfied(g, threshold) {
		return false, nil
	}
	dst, err := g.FindEmptyCell(rng)
	if errors.Is(err, ErrGridFull) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := g.Move(a, dst); err != nil {
		return false, err
	}
	return true, nil
}
