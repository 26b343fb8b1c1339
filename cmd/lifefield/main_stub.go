//go:build !ebiten

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/app"
	_ "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/boids"
	_ "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/life"
)

func main() {
	c := app.NewConfig()
	c.Bind(flag.CommandLine)
	flag.Parse()

	fmt.Fprintln(os.Stderr, "The GUI build of lifefield requires the ebiten build tag; running headless.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifefield` for the window.")

	logger := app.NewLogger(os.Stderr, c.LogJSON)
	slog.SetDefault(logger)

	_, session, out, err := app.Start(c, logger)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting headless run", "background", session.Name(), "seed", session.Seed(), "frames", c.Frames)
	if err := app.RunHeadless(ctx, session, c.Frames, c.FrameDT()); err != nil {
		slog.Error("headless run stopped", "error", err)
	}
}
