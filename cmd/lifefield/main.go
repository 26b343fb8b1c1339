//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/app"
	_ "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/boids"
	_ "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	c := app.NewConfig()
	c.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, c.LogJSON)
	cfg, session, out, err := app.Start(c, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	game := app.New(session, cfg, c.TPS)

	ebiten.SetWindowTitle("lifefield - " + session.Name())
	ebiten.SetTPS(c.TPS)
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "background", session.Name(), "seed", session.Seed(), "tps", c.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	logger.Info("stopped", session.Summary()...)
}
