package schelling

import (
	"testing"

	"github.com/stretchr/testify/require"

	pcore "schelling/pkg/core"
)

func placeAll(t *testing.T, g *Grid, pos ...Position) []*Agent {
	t.Helper()
	agents := make([]*Agent, len(pos))
	for i, p := range pos {
		agents[i] = NewAgent(i, Majority)
		require.NoError(t, g.Place(agents[i], p))
	}
	return agents
}

func TestNeighborsWrapAroundCorner(t *testing.T) {
	g := NewGrid(5, 5)
	agents := placeAll(t, g,
		Position{0, 0},
		Position{4, 4},
		Position{1, 0},
		Position{0, 4},
		Position{2, 2},
	)

	got := g.Neighbors(Position{0, 0})
	require.Equal(t, []*Agent{agents[1], agents[3], agents[2]}, got,
		"neighbours should follow row-major offset order and skip the non-adjacent agent")
}

func TestNeighborsExcludeCenterAndEmptyCells(t *testing.T) {
	g := NewGrid(4, 4)
	placeAll(t, g, Position{1, 1})
	require.Empty(t, g.Neighbors(Position{1, 1}))
}

func TestNeighborsSmallGridsCountDistinctCells(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		at   Position
		want int
	}{
		{name: "1x1", w: 1, h: 1, at: Position{0, 0}, want: 0},
		{name: "1x3", w: 1, h: 3, at: Position{0, 1}, want: 2},
		{name: "2x2", w: 2, h: 2, at: Position{0, 0}, want: 3},
		{name: "2x3", w: 2, h: 3, at: Position{1, 1}, want: 5},
		{name: "3x3", w: 3, h: 3, at: Position{1, 1}, want: 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.w, tc.h)
			id := 0
			for y := 0; y < tc.h; y++ {
				for x := 0; x < tc.w; x++ {
					require.NoError(t, g.Place(NewAgent(id, Majority), Position{x, y}))
					id++
				}
			}
			require.Len(t, g.Neighbors(tc.at), tc.want)
		})
	}
}

func TestPlaceOccupiedCell(t *testing.T) {
	g := NewGrid(3, 3)
	agents := placeAll(t, g, Position{1, 1})

	intruder := NewAgent(9, Minority)
	err := g.Place(intruder, Position{1, 1})
	require.ErrorIs(t, err, ErrOccupiedCell)
	require.Same(t, agents[0], g.At(Position{1, 1}))
	require.Equal(t, 8, g.EmptyCount())
}

func TestPlaceAgentAlreadyOnGrid(t *testing.T) {
	g := NewGrid(3, 3)
	agents := placeAll(t, g, Position{0, 0})

	err := g.Place(agents[0], Position{1, 1})
	require.ErrorIs(t, err, ErrAgentPlaced)
	require.Equal(t, 1, g.Occupied())
	require.Equal(t, Position{0, 0}, agents[0].Pos())
	require.Same(t, agents[0], g.At(Position{0, 0}))
	require.True(t, g.IsEmpty(Position{1, 1}))

	require.ErrorIs(t, g.Place(agents[0], Position{0, 0}), ErrAgentPlaced)
	require.Equal(t, 8, g.EmptyCount())
}

func TestPlaceWrapsPosition(t *testing.T) {
	g := NewGrid(3, 3)
	a := NewAgent(0, Majority)
	require.NoError(t, g.Place(a, Position{-1, 4}))
	require.Equal(t, Position{2, 1}, a.Pos())
	require.Same(t, a, g.At(Position{2, 1}))
}

func TestMoveIsAtomic(t *testing.T) {
	g := NewGrid(3, 3)
	agents := placeAll(t, g, Position{0, 0}, Position{2, 2})

	err := g.Move(agents[0], Position{2, 2})
	require.ErrorIs(t, err, ErrOccupiedCell)
	require.Equal(t, Position{0, 0}, agents[0].Pos())
	require.Same(t, agents[0], g.At(Position{0, 0}))
	require.Same(t, agents[1], g.At(Position{2, 2}))
	require.Equal(t, 7, g.EmptyCount())

	require.NoError(t, g.Move(agents[0], Position{1, 2}))
	require.Equal(t, Position{1, 2}, agents[0].Pos())
	require.True(t, g.IsEmpty(Position{0, 0}))
	require.Same(t, agents[0], g.At(Position{1, 2}))
	require.Equal(t, 7, g.EmptyCount())
	require.Equal(t, 2, g.Occupied())
}

func TestMoveUnplacedAgent(t *testing.T) {
	g := NewGrid(3, 3)
	err := g.Move(NewAgent(0, Majority), Position{1, 1})
	require.ErrorIs(t, err, ErrAgentNotPlaced)
	require.Equal(t, 9, g.EmptyCount())
}

func TestFindEmptyCellFullGrid(t *testing.T) {
	g := NewGrid(2, 1)
	placeAll(t, g, Position{0, 0}, Position{1, 0})
	_, err := g.FindEmptyCell(pcore.NewRNG(1))
	require.ErrorIs(t, err, ErrGridFull)
}

func TestFindEmptyCellUniform(t *testing.T) {
	g := NewGrid(3, 2)
	placeAll(t, g, Position{0, 0}, Position{2, 0}, Position{1, 1})

	rng := pcore.NewRNG(5)
	counts := map[Position]int{}
	const draws = 3000
	for i := 0; i < draws; i++ {
		p, err := g.FindEmptyCell(rng)
		require.NoError(t, err)
		require.True(t, g.IsEmpty(p), "drew occupied cell %v", p)
		counts[p]++
	}
	require.Len(t, counts, 3)
	for p, n := range counts {
		require.Greater(t, n, draws/3-200, "cell %v drawn %d times", p, n)
	}
}

func TestEmptyIndexTracksMoves(t *testing.T) {
	g := NewGrid(4, 4)
	rng := pcore.NewRNG(3)
	agents := placeAll(t, g, Position{0, 0}, Position{1, 0}, Position{2, 0}, Position{3, 0})

	for i := 0; i < 200; i++ {
		a := agents[i%len(agents)]
		p, err := g.FindEmptyCell(rng)
		require.NoError(t, err)
		require.NoError(t, g.Move(a, p))
	}

	require.Equal(t, 12, g.EmptyCount())
	empty := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if g.IsEmpty(Position{x, y}) {
				empty++
			}
		}
	}
	require.Equal(t, 12, empty)
	for _, a := range agents {
		require.Same(t, a, g.At(a.Pos()))
	}
}
