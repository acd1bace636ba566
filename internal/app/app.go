//go:build ebiten

package app

import (
	"log"
	"time"

	"wildgrid/internal/core"
	"wildgrid/internal/render"
	"wildgrid/internal/view"
	"wildgrid/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generated world to the ebiten.Game interface: a scrollable
// viewport over the grid, fixed-rate ticking, and a click probe that
// harvests the targeted cell.
type Game struct {
	world   *world.World
	painter *render.GridPainter
	cam     *view.Camera
	timer   *core.FixedStep

	scale  int
	paused bool
	seed   int64
}

// New constructs a Game for the provided world.
func New(w *world.World, scale, tps int, seed int64) *Game {
	size := w.Size()
	viewW := size.W
	viewH := size.H
	if viewW > 100 {
		viewW = 100
	}
	if viewH > 100 {
		viewH = 100
	}
	return &Game{
		world:   w,
		painter: render.NewGridPainter(size.W, size.H),
		cam:     view.NewCamera(viewW, viewH, size.W),
		timer:   core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
}

// Update handles input and advances the simulation at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.handlePan()
	g.handleProbe()

	for g.timer.ShouldStep() {
		if g.paused {
			break
		}
		g.world.Step()
	}
	return nil
}

func (g *Game) handlePan() {
	step := 2
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = 8
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Pan(-step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Pan(step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Pan(0, -step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Pan(0, step)
	}
}

// handleProbe harvests the clicked cell and logs its debug description.
func (g *Game) handleProbe() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	wx, wy := g.cam.ScreenToWorld(mx/g.scale, my/g.scale)
	taken := g.world.Harvest(wx, wy, 5)
	log.Printf("harvested %.1f\n%s", taken, g.world.DescribeCell(wx, wy))
}

// Draw renders the visible portion of the world.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale, g.cam.X, g.cam.Y)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cam.Width * g.scale, g.cam.Height * g.scale
}
