package app

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/config"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/telemetry"
)

// NewLogger builds the process logger: text for interactive use, JSON when
// asJSON is set.
func NewLogger(w io.Writer, asJSON bool) *slog.Logger {
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

// Start loads the YAML configuration, applies flag overrides, opens the
// telemetry output and builds the session. The caller closes the returned
// output.
func Start(c *Config, logger *slog.Logger) (*config.Config, *Session, *telemetry.Output, error) {
	if err := config.Init(c.ConfigPath); err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()
	logger.Info("config loaded", "path", c.ConfigPath, "background", cfg.Background)

	name := cfg.Background
	if c.Background != "" {
		name = c.Background
	}
	dir := cfg.Telemetry.OutputDir
	if c.OutputDir != "" {
		dir = c.OutputDir
	}

	out, err := telemetry.NewOutput(dir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening telemetry output: %w", err)
	}
	if out != nil {
		if err := cfg.WriteYAML(filepath.Join(out.Dir(), "config.yaml")); err != nil {
			out.Close()
			return nil, nil, nil, err
		}
	}

	s, err := NewSession(cfg, name, c.Seed, out, logger)
	if err != nil {
		out.Close()
		return nil, nil, nil, err
	}
	s.SetPaused(c.Paused)
	return cfg, s, out, nil
}
