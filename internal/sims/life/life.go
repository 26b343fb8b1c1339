package life

import (
	"log/slog"
	"time"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/render"
	pcore "github.com/Mohd-Sayeedul-Hoda/portfolio/pkg/core"
)

// Stats summarises the most recent generation.
type Stats struct {
	Generation int
	Alive      int
	Births     int
	Deaths     int
}

// LogValue implements slog.LogValuer for structured logging.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.Generation),
		slog.Int("alive", s.Alive),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
	)
}

// World is Conway's Game of Life on a torus, rendered as a field of cubes
// that grow and shrink smoothly as cells are born and die.
type World struct {
	cfg Config
	n   int

	grid   *core.BoolGrid
	next   *core.BoolGrid
	scales []float32

	clock *core.Interval
	buf   *render.InstanceBuffer

	paused   bool
	dragging bool
	seed     int64
	stats    Stats

	logger *slog.Logger
}

// New returns a World with the given configuration. The grid starts empty;
// call Reset to place the seed patterns.
func New(cfg Config) *World {
	if cfg.N <= 0 {
		cfg.N = DefaultConfig().N
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultConfig().CellSize
	}
	if cfg.MinScale <= 0 {
		cfg.MinScale = DefaultConfig().MinScale
	}
	total := cfg.N * cfg.N
	w := &World{
		cfg:    cfg,
		n:      cfg.N,
		grid:   core.NewBoolGrid(cfg.N),
		next:   core.NewBoolGrid(cfg.N),
		scales: make([]float32, total),
		clock:  core.NewInterval(cfg.Interval),
		buf:    render.NewInstanceBuffer(total),
		logger: slog.Default(),
	}
	colorSeed := cfg.Seed
	if colorSeed == 0 {
		colorSeed = time.Now().UnixNano()
	}
	render.AssignColors(w.buf, render.ParsePalette(cfg.Palette), nil, pcore.NewRNG(colorSeed))
	return w
}

// SetLogger replaces the logger used for lifecycle messages.
func (w *World) SetLogger(l *slog.Logger) {
	if l != nil {
		w.logger = l
	}
}

// Name returns the background identifier.
func (w *World) Name() string { return "life" }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Size returns the side of the grid.
func (w *World) Size() int { return w.n }

// Grid exposes the current generation.
func (w *World) Grid() *core.BoolGrid { return w.grid }

// Scales exposes the per-cell visual scale buffer.
func (w *World) Scales() []float32 { return w.scales }

// Instances exposes the per-cell transforms and colours.
func (w *World) Instances() *render.InstanceBuffer { return w.buf }

// Stats returns statistics for the latest generation.
func (w *World) Stats() Stats { return w.stats }

// Seed returns the seed used by the last Reset.
func (w *World) Seed() int64 { return w.seed }

// Clock exposes the generation timer.
func (w *World) Clock() *core.Interval { return w.clock }

// SetPaused freezes or resumes generation stepping.
func (w *World) SetPaused(paused bool) { w.paused = paused }

// Paused reports whether stepping is frozen.
func (w *World) Paused() bool { return w.paused }

// Index returns the flat index of (x, y), or -1 outside the grid.
func (w *World) Index(x, y int) int { return w.grid.Index(x, y) }

// Alive reports whether (x, y) is alive; out-of-range cells are dead.
func (w *World) Alive(x, y int) bool { return w.grid.Alive(x, y) }

// Set marks (x, y) alive; out-of-range coordinates are ignored.
func (w *World) Set(x, y int) { w.grid.Set(x, y) }

// Clear kills every cell and collapses every scale.
func (w *World) Clear() {
	w.grid.Clear()
	w.next.Clear()
	for i := range w.scales {
		w.scales[i] = 0
	}
}

// Reset clears the grid, stamps the seed layout and snaps scales to the new
// state. A zero seed falls back to the configured seed, then to the clock.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if effective == 0 {
		effective = time.Now().UnixNano()
	}
	w.seed = effective

	w.Clear()
	Seed(w.grid, w.cfg.Gliders, pcore.NewRNG(effective))
	cells := w.grid.Cells()
	for i, alive := range cells {
		if alive {
			w.scales[i] = 1
		}
	}
	w.clock.Reset()
	w.dragging = false
	w.stats = Stats{Alive: w.grid.Count()}

	w.logger.Debug("background reset", "background", w.Name(), "seed", effective, "alive", w.stats.Alive)
}

// Update advances the generation clock by dt unless paused.
func (w *World) Update(dt float64) {
	if w.paused {
		return
	}
	w.Advance(dt)
}

// Advance adds dt to the generation clock and steps once when the interval
// elapses. It reports whether a generation ran.
func (w *World) Advance(dt float64) bool {
	if !w.clock.Tick(dt) {
		return false
	}
	w.Step()
	return true
}

// Neighbors counts the live cells among the eight wrapped neighbours of
// (x, y) in the current generation.
func (w *World) Neighbors(x, y int) int {
	n := w.n
	cells := w.grid.Cells()
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%n + n) % n
			ny := ((y+dy)%n + n) % n
			if cells[nx*n+ny] {
				count++
			}
		}
	}
	return count
}

// Step advances the grid by one generation. The next generation is computed
// entirely from the current one, then swapped in.
func (w *World) Step() {
	n := w.n
	cur := w.grid.Cells()
	nxt := w.next.Cells()
	births, deaths, alive := 0, 0, 0
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			idx := x*n + y
			neighbors := w.Neighbors(x, y)
			was := cur[idx]
			now := neighbors == 3 || (was && neighbors == 2)
			nxt[idx] = now
			switch {
			case now && !was:
				births++
			case was && !now:
				deaths++
			}
			if now {
				alive++
			}
		}
	}
	w.grid, w.next = w.next, w.grid
	w.stats = Stats{
		Generation: w.stats.Generation + 1,
		Alive:      alive,
		Births:     births,
		Deaths:     deaths,
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Background {
		return New(FromMap(cfg))
	})
}
