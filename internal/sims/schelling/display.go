package schelling

import "image/color"

const (
	cellEmpty    = 0
	cellMajority = 1
	cellMinority = 2
)

var schellingPalette = []color.RGBA{
	cellEmpty:    {R: 24, G: 24, B: 28, A: 255},
	cellMajority: {R: 70, G: 130, B: 200, A: 255},
	cellMinority: {R: 230, G: 120, B: 50, A: 255},
}

// Cells renders the grid into the display buffer: 0 empty, 1 majority,
// 2 minority.
func (m *Model) Cells() []uint8 {
	m.display.Clear()
	for _, a := range m.agents {
		v := uint8(cellMajority)
		if a.kind == Minority {
			v = cellMinority
		}
		m.display.Set(a.pos.X, a.pos.Y, v)
	}
	return m.display.Cells()
}

// Palette exposes the color palette used for rendering display values.
func (m *Model) Palette() []color.RGBA {
	return schellingPalette
}
