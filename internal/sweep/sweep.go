// Package sweep runs many independently seeded life worlds in parallel and
// summarises how each seed evolves.
package sweep

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/life"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/telemetry"
)

// Options controls a sweep.
type Options struct {
	Generations int
	Workers     int
	// FrameDT is the fixed frame delta fed to the generation clock.
	FrameDT float64
}

// Run evaluates every seed with its own World and returns one record per
// seed, most survivors first. Each worker owns its worlds; nothing is
// shared between goroutines except the job and result channels.
func Run(ctx context.Context, base life.Config, seeds []int64, opts Options) ([]telemetry.SweepRecord, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if opts.FrameDT <= 0 {
		opts.FrameDT = 1.0 / 60
	}

	jobs := make(chan int64)
	results := make(chan telemetry.SweepRecord)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(ctx, base, seed, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range seeds {
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]telemetry.SweepRecord, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return all, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].FinalAlive != all[j].FinalAlive {
			return all[i].FinalAlive > all[j].FinalAlive
		}
		return all[i].Seed < all[j].Seed
	})
	return all, nil
}

// runSeed steps one world until the generation target, extinction or
// cancellation. The record carries the seed the world actually used.
func runSeed(ctx context.Context, base life.Config, seed int64, opts Options) telemetry.SweepRecord {
	cfg := base
	cfg.Seed = seed
	world := life.New(cfg)
	world.Reset(seed)

	first := world.Stats().Alive
	rec := telemetry.SweepRecord{Seed: world.Seed(), FirstAlive: first, PeakAlive: first}
	for world.Stats().Generation < opts.Generations {
		if ctx.Err() != nil {
			break
		}
		if !world.Advance(opts.FrameDT) {
			continue
		}
		st := world.Stats()
		rec.Births += st.Births
		rec.Deaths += st.Deaths
		if st.Alive > rec.PeakAlive {
			rec.PeakAlive = st.Alive
		}
		if st.Alive == 0 {
			break
		}
	}
	st := world.Stats()
	rec.Generations = st.Generation
	rec.FinalAlive = st.Alive
	rec.Extinct = st.Alive == 0
	return rec
}
