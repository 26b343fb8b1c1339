package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/config"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/boids"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/life"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/telemetry"
)

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func TestNewSessionUnknownBackground(t *testing.T) {
	if _, err := NewSession(loadDefaults(t), "ripple", 1, nil, nil); err == nil {
		t.Fatal("expected error for unknown background")
	}
}

func TestSessionRecordsGenerations(t *testing.T) {
	dir := t.TempDir()
	out, err := telemetry.NewOutput(dir)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSession(loadDefaults(t), "life", 5, out, nil)
	if err != nil {
		t.Fatal(err)
	}

	// 0.6s interval: a generation every third 0.25s frame.
	if err := RunHeadless(context.Background(), s, 9, 0.25); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	world := s.Background().(*life.World)
	if got := world.Stats().Generation; got != 3 {
		t.Fatalf("expected 3 generations, got %d", got)
	}
	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %q", data)
	}
}

func TestSessionPauseFreezesStepping(t *testing.T) {
	s, err := NewSession(loadDefaults(t), "life", 5, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.SetPaused(true)
	world := s.Background().(*life.World)
	before := append([]bool(nil), world.Grid().Cells()...)

	for i := 0; i < 10; i++ {
		s.Frame(0.5)
	}
	if world.Stats().Generation != 0 || s.Elapsed() != 0 {
		t.Fatal("paused session must not step or accumulate time")
	}
	for i, alive := range world.Grid().Cells() {
		if alive != before[i] {
			t.Fatal("paused grid changed")
		}
	}

	s.TogglePause()
	s.Frame(0.7)
	if world.Stats().Generation != 1 {
		t.Fatal("unpaused session should step again")
	}
}

func TestSessionSwitchKeepsPauseAndSeed(t *testing.T) {
	s, err := NewSession(loadDefaults(t), "life", 11, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Pointer(); !ok {
		t.Fatal("life should accept pointer events")
	}
	s.SetPaused(true)

	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	flock, ok := s.Background().(*boids.Flock)
	if !ok {
		t.Fatalf("expected boids after life, got %s", s.Name())
	}
	if !flock.Paused() {
		t.Fatal("pause state should carry over a switch")
	}
	if flock.Seed() != 11 {
		t.Fatalf("switch should reuse the session seed, got %d", flock.Seed())
	}
	if _, ok := s.Pointer(); ok {
		t.Fatal("boids has no pointer interaction")
	}

	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if s.Name() != "life" {
		t.Fatalf("cycling should wrap back to life, got %s", s.Name())
	}
}

func TestSessionStatus(t *testing.T) {
	s, err := NewSession(loadDefaults(t), "boids", 2, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Frame(1.0 / 60)
	lines := s.Status()
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "boids (running)") || !strings.HasPrefix(lines[1], "frame 1") {
		t.Fatalf("unexpected status %q", lines)
	}
}

func TestRunHeadlessHonoursCancel(t *testing.T) {
	s, err := NewSession(loadDefaults(t), "life", 1, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := RunHeadless(ctx, s, 100, 1); err == nil {
		t.Fatal("expected context error")
	}
	if s.Elapsed() != 0 {
		t.Fatal("no frames should run after cancel")
	}
}

func TestStartAppliesFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	c := NewConfig()
	c.Background = "boids"
	c.Seed = 21
	c.Paused = true
	c.OutputDir = dir

	cfg, s, out, err := Start(c, NewLogger(os.Stderr, false))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer out.Close()

	if s.Name() != "boids" || s.Seed() != 21 || !s.Paused() {
		t.Fatalf("flags not applied: name=%s seed=%d paused=%v", s.Name(), s.Seed(), s.Paused())
	}
	if cfg.Life.N != 60 {
		t.Fatal("yaml defaults should still load")
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config snapshot missing: %v", err)
	}
}

func TestStartRejectsMissingConfig(t *testing.T) {
	c := NewConfig()
	c.ConfigPath = filepath.Join(t.TempDir(), "nope.yaml")
	if _, _, _, err := Start(c, NewLogger(os.Stderr, false)); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
