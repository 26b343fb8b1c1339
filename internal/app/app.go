//go:build ebiten

package app

import (
	"image/color"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/config"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/render"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/boids"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 280

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.InstancePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	background color.RGBA
	dt         float64

	width, height int
}

// New constructs a Game for the provided session.
func New(s *Session, cfg *config.Config, tps int) *Game {
	bg, err := render.ParseHex(cfg.Camera.BackgroundColor)
	if err != nil {
		bg = color.RGBA{R: 0xfd, G: 0xf6, B: 0xe3, A: 0xff}
	}
	floorColor, err := render.ParseHex(cfg.Camera.FloorColor)
	if err != nil {
		floorColor = color.RGBA{R: 0xe8, G: 0xc7, B: 0x8a, A: 0xff}
	}
	dt := 1.0 / 60
	if tps > 0 {
		dt = 1 / float64(tps)
	}
	g := &Game{
		session:    s,
		painter:    render.NewInstancePainter(render.IsoCamera{Zoom: cfg.Camera.Zoom}),
		overlay:    ui.NewOverlay(render.FloorGrid{Size: cfg.Camera.FloorSize, Divisions: cfg.Camera.FloorLines, Height: -0.01}, floorColor),
		hud:        ui.NewHUD(hudWidth),
		background: bg,
		dt:         dt,
		width:      cfg.Screen.Width,
		height:     cfg.Screen.Height,
	}
	g.hud.SetTarget(s.Background())
	return g
}

// Update handles input and advances the session by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if err := g.session.Next(); err != nil {
			return err
		}
		g.hud.SetTarget(g.session.Background())
	}

	g.overlay.Update()
	g.hud.Update(g.width, g.session.Status())
	g.handlePointer()

	g.session.Frame(g.dt)
	return nil
}

// handlePointer turns mouse state into floor-plane pointer events.
func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	g.session.RoutePointer(PointerInput{
		Inside:   mx >= 0 && my >= 0 && mx < g.width && my < g.height && !g.hud.Contains(mx, my),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		At:       g.camera().Unproject(float64(mx), float64(my)),
		OnFloor:  true,
	})
}

func (g *Game) camera() render.IsoCamera {
	cam := g.painter.Camera
	cam.CenterX = float64(g.width) / 2
	cam.CenterY = float64(g.height) / 2
	return cam
}

// Draw renders the floor, the background instances and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	cam := g.camera()
	g.painter.Camera = cam
	g.overlay.Draw(screen, cam)

	buf := g.session.Background().Instances()
	if flock, ok := g.session.Background().(*boids.Flock); ok {
		cfg := flock.Config()
		g.painter.DrawCones(screen, buf, cfg.ConeLength, cfg.ConeRadius)
	} else {
		g.painter.DrawCubes(screen, buf)
	}
	g.hud.Draw(screen)
}

// Layout tracks the window size so the scene stays centred.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
