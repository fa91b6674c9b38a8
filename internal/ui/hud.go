//go:build ebiten

package ui

import (
	"image/color"

	"schelling/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 14
	lineHeight     = 16
	sparkHeight    = 48
)

type seriesProvider interface {
	Series() []float64
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []hudLine
	series     []float64

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the cached parameter lines and segregation series.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = nil
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.lines = parameterLines(provider.Parameters())
	}
	h.series = nil
	if provider, ok := h.sim.(seriesProvider); ok {
		h.series = provider.Series()
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range h.lines {
		y += lineHeight
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		x := panelPadding + 8
		if line.header {
			y += 4
			col = color.RGBA{R: 160, G: 160, B: 170, A: 255}
			x = panelPadding
		}
		text.Draw(h.panel, line.text, face, x, y, col)
	}
	h.drawSeries(height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// drawSeries plots the segregation history as bars along the panel bottom.
func (h *HUD) drawSeries(height int) {
	plotW := h.width - 2*panelPadding
	bottom := height - panelPadding
	if plotW <= 0 || bottom-sparkHeight < 0 {
		return
	}
	h.fillRect(panelPadding, bottom-sparkHeight, plotW, sparkHeight, color.RGBA{R: 28, G: 28, B: 34, A: 255})
	for i, bar := range sparkHeights(h.series, plotW, sparkHeight) {
		if bar == 0 {
			continue
		}
		h.fillRect(panelPadding+i, bottom-bar, 1, bar, color.RGBA{R: 120, G: 200, B: 140, A: 255})
	}
}

func (h *HUD) fillRect(x, y, w, hgt int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hgt))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}
