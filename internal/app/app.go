//go:build ebiten

package app

import (
	"errors"
	"log"
	"time"

	"github.com/LilLilian59/JeuDeLaVie/internal/control"
	"github.com/LilLilian59/JeuDeLaVie/internal/core"
	"github.com/LilLilian59/JeuDeLaVie/internal/render"
	"github.com/LilLilian59/JeuDeLaVie/internal/ui"
	"github.com/LilLilian59/JeuDeLaVie/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var stampKeys = map[ebiten.Key]string{
	ebiten.KeyG: life.Glider,
	ebiten.KeyB: life.Block,
	ebiten.KeyV: life.Ship,
}

// Game adapts a control session to the ebiten.Game interface.
type Game struct {
	ctrl    *control.Controller
	view    control.Viewport
	pacer   *core.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	hudW    int

	states  []uint8
	intents []control.Intent
}

// New constructs a Game for the provided grid.
func New(grid *life.Grid, cfg *Config) *Game {
	size := grid.Size()
	g := &Game{
		ctrl:    control.New(grid, cfg.Density),
		view:    control.Viewport{Scale: cfg.Scale, Border: cfg.Border},
		pacer:   core.NewFixedStep(cfg.GPS),
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(grid, cfg.Scale, cfg.Border),
		hudW:    cfg.HUD,
	}
	g.hud = ui.NewHUD("Game of Life", g, cfg.HUD)
	return g
}

// Update polls input into intents, applies them and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.intents = g.poll(g.intents[:0])
	for _, in := range g.intents {
		if err := g.ctrl.Apply(in); err != nil {
			if errors.Is(err, life.ErrInvalidCoordinate) {
				continue
			}
			log.Printf("ignoring %v", err)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.boardWidth())

	tick := g.pacer.ShouldStep()
	g.ctrl.Advance(tick)
	return nil
}

func (g *Game) poll(dst []control.Intent) []control.Intent {
	cx, cy := g.view.CellAt(ebiten.CursorPosition())
	onBoard := cx >= 0 && cy >= 0 && cx < g.ctrl.Grid().Width() && cy < g.ctrl.Grid().Height()

	if onBoard && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dst = append(dst, control.Intent{Kind: control.SetCell, X: cx, Y: cy, Alive: true})
	}
	if onBoard && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		dst = append(dst, control.Intent{Kind: control.SetCell, X: cx, Y: cy, Alive: false})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		dst = append(dst, control.Intent{Kind: control.ToggleCell, X: cx, Y: cy})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		dst = append(dst, control.Intent{Kind: control.ToggleObstacle, X: cx, Y: cy})
	}
	for key, name := range stampKeys {
		if inpututil.IsKeyJustPressed(key) {
			dst = append(dst, control.Intent{Kind: control.StampPattern, Pattern: name, X: cx, Y: cy})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		dst = append(dst, control.Intent{Kind: control.Clear})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		dst = append(dst, control.Intent{Kind: control.ToggleRunning})
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		dst = append(dst, control.Intent{Kind: control.StepOnce})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		dst = append(dst, control.Intent{Kind: control.Randomize, Seed: time.Now().UnixNano()})
	}
	return dst
}

// Draw renders the current board, overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.ctrl.Grid()
	g.states = grid.States(g.states)
	g.painter.Blit(screen, g.states, render.Palette, g.view.Scale, g.view.Border)
	g.painter.Lines(screen, render.GridLineColor, g.view.Scale, g.view.Border)
	g.overlay.Draw(screen)
	_, h := g.view.Extent(grid.Width(), grid.Height())
	g.hud.Draw(screen, g.boardWidth(), h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.ctrl.Grid()
	w, h := g.view.Extent(grid.Width(), grid.Height())
	return w + g.hudW, h
}

func (g *Game) boardWidth() int {
	w, _ := g.view.Extent(g.ctrl.Grid().Width(), g.ctrl.Grid().Height())
	return w
}

// Parameters merges session state with the pacing settings for the HUD.
func (g *Game) Parameters() core.ParameterSnapshot {
	snap := g.ctrl.Parameters()
	for i := range snap.Groups {
		if snap.Groups[i].Name == "Run" {
			snap.Groups[i].Params = append(snap.Groups[i].Params, core.IntParam("gps", "Gen/s", g.pacer.TPS()))
		}
	}
	return snap
}

// ParameterControls exposes the adjustable generation rate.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "gps", Label: "Gen/s", Step: 1, Min: 1, Max: 120}}
}

// SetIntParameter updates the generation rate.
func (g *Game) SetIntParameter(key string, value int) bool {
	if key != "gps" || value <= 0 {
		return false
	}
	g.pacer.SetTPS(value)
	log.Printf("generation rate set to %d/s", value)
	return true
}
