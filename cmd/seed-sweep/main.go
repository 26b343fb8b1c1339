// Command seed-sweep runs the life background headless for many seeds and
// reports which layouts keep the field busy.
//
// Usage: go run ./cmd/seed-sweep -seeds 200 -generations 300
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/config"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/life"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sweep"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	count := flag.Int("seeds", 100, "number of seeds to evaluate")
	first := flag.Int64("first-seed", 1, "first seed of the range")
	generations := flag.Int("generations", 200, "generations to run per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	fps := flag.Int("fps", 60, "frames per second fed to the generation clock")
	outPath := flag.String("out", "", "CSV output path (empty = stdout)")
	top := flag.Int("top", 5, "results to log")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	base := life.FromMap(config.Cfg().Overrides("life"))

	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = *first + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("sweeping seeds", "seeds", len(seeds), "workers", *workers, "generations", *generations)
	start := time.Now()
	recs, err := sweep.Run(ctx, base, seeds, sweep.Options{
		Generations: *generations,
		Workers:     *workers,
		FrameDT:     1 / float64(max(*fps, 1)),
	})
	if err != nil {
		slog.Error("sweep interrupted", "error", err, "completed", len(recs))
		os.Exit(1)
	}

	extinct := 0
	for _, r := range recs {
		if r.Extinct {
			extinct++
		}
	}
	slog.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond), "extinct", extinct)
	for i := 0; i < len(recs) && i < *top; i++ {
		r := recs[i]
		slog.Info("top seed", "rank", i+1, "seed", r.Seed, "final_alive", r.FinalAlive, "peak_alive", r.PeakAlive)
	}

	if err := writeCSV(*outPath, recs); err != nil {
		slog.Error("writing results", "error", err)
		os.Exit(1)
	}
}

func writeCSV(path string, recs []telemetry.SweepRecord) error {
	if path == "" {
		return telemetry.NewWriter[telemetry.SweepRecord](os.Stdout).Write(recs...)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := telemetry.NewWriter[telemetry.SweepRecord](f).Write(recs...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
