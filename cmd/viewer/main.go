//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"schelling/internal/app"
	"schelling/internal/logging"
	"schelling/internal/sims/schelling"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)
	model, err := schelling.New(cfg.Model)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("model created", "width", cfg.Model.Width, "height", cfg.Model.Height,
		"agents", len(model.Agents()), "seed", cfg.Model.Seed)

	game := app.New(model, cfg, logger)
	size := model.Size()

	ebiten.SetWindowTitle("schelling - " + model.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
