//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"schelling/internal/core"
	"schelling/internal/render"
	"schelling/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxCatchUp bounds the steps taken in one frame after a stall.
const maxCatchUp = 4

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep
	logger  *slog.Logger

	palette  []color.RGBA
	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, logger *slog.Logger) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		stepper:  core.NewFixedStep(cfg.SPS),
		logger:   logger,
		palette:  []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Model.Seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	if err := g.sim.Reset(seed); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	g.logger.Info("model reset", "seed", seed)
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	g.overlay.Update()

	steps := g.stepper.Due(maxCatchUp)
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		if err := g.sim.Step(); err != nil {
			return err
		}
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
