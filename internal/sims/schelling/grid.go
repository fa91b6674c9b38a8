package schelling

import (
	"fmt"

	"schelling/internal/core"
	pcore "schelling/pkg/core"
)

// Position is a cell coordinate on the torus.
type Position struct {
	X, Y int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Grid is a toroidal lattice holding at most one agent per cell.
//
// Empty cells are tracked in a dense index so that a uniformly random empty
// cell can be drawn without scanning the board.
type Grid struct {
	w, h  int
	cells []*Agent

	empty []int // cell indices currently empty, unordered
	slot  []int // slot[i] is the position of cell i in empty, or -1 if occupied
}

// NewGrid allocates an empty w*h grid.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	total := w * h
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]*Agent, total),
		empty: make([]int, total),
		slot:  make([]int, total),
	}
	for i := range g.empty {
		g.empty[i] = i
		g.slot[i] = i
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Wrap applies toroidal wrapping to p.
func (g *Grid) Wrap(p Position) Position {
	return Position{
		X: (p.X%g.w + g.w) % g.w,
		Y: (p.Y%g.h + g.h) % g.h,
	}
}

func (g *Grid) index(p Position) int {
	p = g.Wrap(p)
	return p.Y*g.w + p.X
}

func (g *Grid) position(idx int) Position {
	return Position{X: idx % g.w, Y: idx / g.w}
}

// At returns the agent at p, or nil when the cell is empty.
func (g *Grid) At(p Position) *Agent { return g.cells[g.index(p)] }

// IsEmpty reports whether p holds no agent.
func (g *Grid) IsEmpty(p Position) bool { return g.At(p) == nil }

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int { return len(g.empty) }

// Occupied returns the number of occupied cells.
func (g *Grid) Occupied() int { return len(g.cells) - len(g.empty) }

// neighborIndices writes the distinct Moore-neighbour cell indices of p into
// buf and returns how many there are. On grids narrower than three cells
// wrapped offsets collapse onto each other or onto p itself; each cell is
// reported once and p never.
func (g *Grid) neighborIndices(p Position, buf *[8]int) int {
	p = g.Wrap(p)
	center := p.Y*g.w + p.X
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (p.X + dx + g.w) % g.w
			ny := (p.Y + dy + g.h) % g.h
			idx := ny*g.w + nx
			if idx == center || seen(buf[:n], idx) {
				continue
			}
			buf[n] = idx
			n++
		}
	}
	return n
}

func seen(idxs []int, idx int) bool {
	for _, v := range idxs {
		if v == idx {
			return true
		}
	}
	return false
}

// Neighbors returns the agents in the occupied Moore-neighbour cells of p, in
// row-major offset order.
func (g *Grid) Neighbors(p Position) []*Agent {
	var buf [8]int
	n := g.neighborIndices(p, &buf)
	out := make([]*Agent, 0, n)
	for _, idx := range buf[:n] {
		if a := g.cells[idx]; a != nil {
			out = append(out, a)
		}
	}
	return out
}

// countNeighbors returns how many occupied neighbours of p have type kind and
// how many occupied neighbours there are in total.
func (g *Grid) countNeighbors(p Position, kind AgentType) (similar, total int) {
	var buf [8]int
	n := g.neighborIndices(p, &buf)
	for _, idx := range buf[:n] {
		a := g.cells[idx]
		if a == nil {
			continue
		}
		total++
		if a.kind == kind {
			similar++
		}
	}
	return similar, total
}

// FindEmptyCell returns a uniformly selected empty cell.
func (g *Grid) FindEmptyCell(rng *pcore.RNG) (Position, error) {
	if len(g.empty) == 0 {
		return Position{}, ErrGridFull
	}
	return g.position(g.empty[rng.IntN(len(g.empty))]), nil
}

// Place puts a at p and records p as the agent's position. An agent already
// on the grid must be relocated with Move.
func (g *Grid) Place(a *Agent, p Position) error {
	if g.cells[g.index(a.pos)] == a {
		return fmt.Errorf("%w: agent %d at %v", ErrAgentPlaced, a.id, a.pos)
	}
	p = g.Wrap(p)
	idx := g.index(p)
	if other := g.cells[idx]; other != nil {
		return fmt.Errorf("%w: %v holds agent %d", ErrOccupiedCell, p, other.id)
	}
	g.occupy(idx, a)
	a.pos = p
	return nil
}

// Move relocates a to p. The grid is left unchanged when p is taken.
func (g *Grid) Move(a *Agent, p Position) error {
	p = g.Wrap(p)
	from := g.index(a.pos)
	if g.cells[from] != a {
		return fmt.Errorf("%w: agent %d at %v", ErrAgentNotPlaced, a.id, a.pos)
	}
	to := g.index(p)
	if to == from {
		return nil
	}
	if other := g.cells[to]; other != nil {
		return fmt.Errorf("%w: %v holds agent %d", ErrOccupiedCell, p, other.id)
	}
	g.occupy(to, a)
	g.vacate(from)
	a.pos = p
	return nil
}

func (g *Grid) occupy(idx int, a *Agent) {
	g.cells[idx] = a
	s := g.slot[idx]
	last := len(g.empty) - 1
	moved := g.empty[last]
	g.empty[s] = moved
	g.slot[moved] = s
	g.empty = g.empty[:last]
	g.slot[idx] = -1
}

func (g *Grid) vacate(idx int) {
	g.cells[idx] = nil
	g.slot[idx] = len(g.empty)
	g.empty = append(g.empty, idx)
}
