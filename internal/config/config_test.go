package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Background != "life" {
		t.Fatalf("default background %q, expected life", cfg.Background)
	}
	if cfg.Life.N != 60 || cfg.Life.Interval != 0.6 || cfg.Life.Gliders != 12 {
		t.Fatalf("unexpected life defaults %+v", cfg.Life)
	}
	if cfg.Boids.Count != 400 || cfg.Boids.MaxSpeed != 0.2 {
		t.Fatalf("unexpected boids defaults %+v", cfg.Boids)
	}
	if cfg.Derived.LifeHalfExtent != 30 {
		t.Fatalf("expected half extent 30, got %f", cfg.Derived.LifeHalfExtent)
	}
	if cfg.Camera.FloorLines != 200 || cfg.Camera.FloorColor != "#e8c78a" {
		t.Fatalf("unexpected camera defaults %+v", cfg.Camera)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	data := []byte("background: boids\nlife:\n  interval: 0.25\nboids:\n  count: 50\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Background != "boids" || cfg.Life.Interval != 0.25 || cfg.Boids.Count != 50 {
		t.Fatalf("user values not applied: %+v", cfg)
	}
	if cfg.Life.N != 60 || len(cfg.Life.Palette) != 3 {
		t.Fatal("keys absent from the user file must keep their defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("life: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	life := cfg.Overrides("life")
	if life["interval"] != "0.6" || life["n"] != "60" {
		t.Fatalf("unexpected life overrides %v", life)
	}
	if life["palette"] != "#d94676,#6d3580,#f58b44" {
		t.Fatalf("palette should be comma joined, got %q", life["palette"])
	}
	if got := cfg.Overrides("boids")["count"]; got != "400" {
		t.Fatalf("boids count override %q", got)
	}
	if cfg.Overrides("ripple") != nil {
		t.Fatal("unknown background should have no overrides")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Life.Seed = 1234
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Life.Seed != 1234 {
		t.Fatalf("seed lost in snapshot, got %d", again.Life.Seed)
	}
}

func TestCfgAfterInit(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatal(err)
	}
	if Cfg().Screen.TargetFPS != 60 {
		t.Fatalf("unexpected fps %d", Cfg().Screen.TargetFPS)
	}
}
