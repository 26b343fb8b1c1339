//go:build raylib

// Command lifefield3d renders the background with a real orthographic 3D
// camera through raylib.
//
// Usage: go run -tags raylib ./cmd/lifefield3d
package main

import (
	"flag"
	"image/color"
	"log/slog"
	"os"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/app"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/config"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/render"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/boids"
	_ "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/life"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	panelX      = 12
	panelY      = 12
	buttonW     = 110
	buttonH     = 28
	buttonGap   = 8
	statusTop   = panelY + buttonH + 12
	statusLineH = 18
)

func main() {
	c := app.NewConfig()
	c.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, c.LogJSON)
	slog.SetDefault(logger)

	cfg, session, out, err := app.Start(c, logger)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "lifefield3d")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(c.TPS))

	bg := parseColor(cfg.Camera.BackgroundColor, color.RGBA{R: 0xfd, G: 0xf6, B: 0xe3, A: 0xff})
	floor := parseColor(cfg.Camera.FloorColor, color.RGBA{R: 0xe8, G: 0xc7, B: 0x8a, A: 0xff})
	grid := render.FloorGrid{Size: cfg.Camera.FloorSize, Divisions: cfg.Camera.FloorLines, Height: -0.01}

	logger.Info("starting", "background", session.Name(), "seed", session.Seed(), "fps", c.TPS)

	for !rl.WindowShouldClose() {
		cam := camera(cfg)

		if rl.IsKeyPressed(rl.KeySpace) {
			session.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			session.Reset(session.Seed())
		}
		if rl.IsKeyPressed(rl.KeyS) {
			session.Reseed()
		}
		if rl.IsKeyPressed(rl.KeyB) {
			if err := session.Next(); err != nil {
				slog.Error("switching background", "error", err)
			}
		}

		handlePointer(session, cam)
		session.Frame(float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		rl.ClearBackground(bg)

		rl.BeginMode3D(cam)
		for _, seg := range grid.Segments() {
			rl.DrawLine3D(vec(seg[0]), vec(seg[1]), floor)
		}
		drawInstances(session)
		rl.EndMode3D()

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: buttonW, Height: buttonH}, pauseLabel(session.Paused())) {
			session.TogglePause()
		}
		if gui.Button(rl.Rectangle{X: panelX + buttonW + buttonGap, Y: panelY, Width: buttonW, Height: buttonH}, "Reset") {
			session.Reset(session.Seed())
		}
		if gui.Button(rl.Rectangle{X: panelX + 2*(buttonW+buttonGap), Y: panelY, Width: buttonW, Height: buttonH}, "Switch") {
			if err := session.Next(); err != nil {
				slog.Error("switching background", "error", err)
			}
		}
		for i, line := range session.Status() {
			rl.DrawText(line, panelX, int32(statusTop+i*statusLineH), 16, rl.DarkGray)
		}
		rl.EndDrawing()
	}

	logger.Info("stopped", session.Summary()...)
}

// camera mirrors the isometric view: orthographic, looking at the origin
// from (50,50,50), with Zoom screen pixels per world unit.
func camera(cfg *config.Config) rl.Camera3D {
	zoom := cfg.Camera.Zoom
	if zoom <= 0 {
		zoom = 35
	}
	return rl.Camera3D{
		Position:   rl.NewVector3(50, 50, 50),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(float64(rl.GetScreenHeight()) / zoom),
		Projection: rl.CameraOrthographic,
	}
}

// handlePointer picks the floor under the mouse and forwards it to the
// session.
func handlePointer(session *app.Session, cam rl.Camera3D) {
	mouse := rl.GetMousePosition()
	onPanel := mouse.Y < statusTop+2*statusLineH && mouse.X < panelX+3*(buttonW+buttonGap)
	ray := rl.GetScreenToWorldRay(mouse, cam)
	origin := r3.Vec{X: float64(ray.Position.X), Y: float64(ray.Position.Y), Z: float64(ray.Position.Z)}
	dir := r3.Vec{X: float64(ray.Direction.X), Y: float64(ray.Direction.Y), Z: float64(ray.Direction.Z)}
	p, hit := render.IntersectFloor(origin, dir, 0)
	session.RoutePointer(app.PointerInput{
		Inside:   rl.IsCursorOnScreen() && !onPanel,
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		At:       p,
		OnFloor:  hit,
	})
}

func drawInstances(session *app.Session) {
	buf := session.Background().Instances()
	if flock, ok := session.Background().(*boids.Flock); ok {
		cfg := flock.Config()
		for i := 0; i < buf.Count; i++ {
			pos := buf.Position(i)
			fwd := buf.Forward(i)
			tip := r3.Add(pos, r3.Scale(cfg.ConeLength/2, fwd))
			back := r3.Sub(pos, r3.Scale(cfg.ConeLength/2, fwd))
			rl.DrawCylinderEx(vec(back), vec(tip), float32(cfg.ConeRadius), 0, 8, buf.Color(i))
		}
		return
	}
	for i := 0; i < buf.Count; i++ {
		s := float32(buf.Scale(i))
		if s < 0.01 {
			continue
		}
		rl.DrawCube(vec(buf.Position(i)), s, s, s, buf.Color(i))
	}
}

func vec(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func parseColor(hex string, fallback color.RGBA) color.RGBA {
	c, err := render.ParseHex(hex)
	if err != nil {
		return fallback
	}
	return c
}

func pauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
