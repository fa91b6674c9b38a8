//go:build ebiten

package ui

import (
	"image/color"

	"schelling/internal/core"
	"schelling/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type unsatisfiedProvider interface {
	UnsatisfiedMask() []bool
}

var unsatisfiedTint = color.RGBA{R: 220, G: 40, B: 60, A: 200}

// Overlay draws optional debugging visuals on top of the base simulation.
// Key 1 toggles highlighting of unsatisfied agents.
type Overlay struct {
	sim             core.Sim
	scale           int
	showUnsatisfied bool
	painter         *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{sim: sim, scale: scale, painter: render.NewGridPainter(size.W, size.H)}
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showUnsatisfied = !o.showUnsatisfied
	}
}

// Draw renders the enabled overlays.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showUnsatisfied {
		return
	}
	provider, ok := o.sim.(unsatisfiedProvider)
	if !ok {
		return
	}
	o.painter.BlitMask(screen, provider.UnsatisfiedMask(), unsatisfiedTint, o.scale)
}
