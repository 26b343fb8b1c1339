// Package config loads the background configuration from YAML, layering a
// user file over the embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the hosts and both backgrounds.
type Config struct {
	Background string          `yaml:"background"`
	Screen     ScreenConfig    `yaml:"screen"`
	Camera     CameraConfig    `yaml:"camera"`
	Life       LifeConfig      `yaml:"life"`
	Boids      BoidsConfig     `yaml:"boids"`
	Telemetry  TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CameraConfig holds the isometric view and floor grid settings.
type CameraConfig struct {
	Zoom            float64 `yaml:"zoom"`        // Screen pixels per world unit
	FloorSize       float64 `yaml:"floor_size"`  // Floor grid width in world units
	FloorLines      int     `yaml:"floor_lines"` // Grid divisions across the floor
	FloorColor      string  `yaml:"floor_color"`
	BackgroundColor string  `yaml:"background_color"`
}

// LifeConfig mirrors the Game of Life tunables.
type LifeConfig struct {
	N                   int      `yaml:"n"`
	CellSize            float64  `yaml:"cell_size"`
	Gap                 float64  `yaml:"gap"`
	Interval            float64  `yaml:"interval"` // Seconds between generations
	Damping             float64  `yaml:"damping"`  // Scale smoothing rate per second
	MinScale            float64  `yaml:"min_scale"`
	Gliders             int      `yaml:"gliders"`
	Seed                int64    `yaml:"seed"` // 0 = time based
	InteractWhilePaused bool     `yaml:"interact_while_paused"`
	Palette             []string `yaml:"palette"`
}

// BoidsConfig mirrors the flocking tunables.
type BoidsConfig struct {
	Count            int      `yaml:"count"`
	Boundary         float64  `yaml:"boundary"`
	BoundarySteer    float64  `yaml:"boundary_steer"`
	MaxSpeed         float64  `yaml:"max_speed"`
	MaxForce         float64  `yaml:"max_force"`
	PerceptionRadius float64  `yaml:"perception_radius"`
	SeparationRadius float64  `yaml:"separation_radius"`
	SeparationWeight float64  `yaml:"separation_weight"`
	AlignmentWeight  float64  `yaml:"alignment_weight"`
	CohesionWeight   float64  `yaml:"cohesion_weight"`
	Seed             int64    `yaml:"seed"`
	Palette          []string `yaml:"palette"`
}

// TelemetryConfig holds CSV output settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // Empty disables output
	Every     int    `yaml:"every"`      // Write every Nth generation or frame
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	LifeHalfExtent float64 // Half the floor width covered by the grid
	FrameDT        float64 // 1 / Screen.TargetFPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

func (c *Config) computeDerived() {
	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
	if c.Telemetry.Every <= 0 {
		c.Telemetry.Every = 1
	}
	c.Derived.FrameDT = 1 / float64(c.Screen.TargetFPS)
	c.Derived.LifeHalfExtent = (c.Life.CellSize + c.Life.Gap) * float64(c.Life.N) / 2
}

// Overrides renders the section for the named background as the string map
// accepted by the background factories. Unknown names yield nil.
func (c *Config) Overrides(background string) map[string]string {
	switch background {
	case "life":
		l := c.Life
		return map[string]string{
			"n":                     strconv.Itoa(l.N),
			"cell_size":             formatFloat(l.CellSize),
			"gap":                   formatFloat(l.Gap),
			"interval":              formatFloat(l.Interval),
			"damping":               formatFloat(l.Damping),
			"min_scale":             formatFloat(l.MinScale),
			"gliders":               strconv.Itoa(l.Gliders),
			"seed":                  strconv.FormatInt(l.Seed, 10),
			"interact_while_paused": strconv.FormatBool(l.InteractWhilePaused),
			"palette":               strings.Join(l.Palette, ","),
		}
	case "boids":
		b := c.Boids
		return map[string]string{
			"count":             strconv.Itoa(b.Count),
			"boundary":          formatFloat(b.Boundary),
			"boundary_steer":    formatFloat(b.BoundarySteer),
			"max_speed":         formatFloat(b.MaxSpeed),
			"max_force":         formatFloat(b.MaxForce),
			"perception_radius": formatFloat(b.PerceptionRadius),
			"separation_radius": formatFloat(b.SeparationRadius),
			"separation_weight": formatFloat(b.SeparationWeight),
			"alignment_weight":  formatFloat(b.AlignmentWeight),
			"cohesion_weight":   formatFloat(b.CohesionWeight),
			"seed":              strconv.FormatInt(b.Seed, 10),
			"palette":           strings.Join(b.Palette, ","),
		}
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
