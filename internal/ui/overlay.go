//go:build ebiten

package ui

import (
	"image/color"

	"github.com/LilLilian59/JeuDeLaVie/internal/render"
	"github.com/LilLilian59/JeuDeLaVie/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	grid     *life.Grid
	scale    int
	offset   int
	showHeat bool

	heatImg *ebiten.Image
	heatBuf []byte
	counts  []uint8
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(grid *life.Grid, scale, offset int) *Overlay {
	return &Overlay{grid: grid, scale: scale, offset: offset}
}

// Update toggles overlays from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHeat {
		return
	}
	size := o.grid.Size()
	total := size.Cells()
	if total == 0 {
		return
	}
	if o.heatImg == nil {
		o.heatImg = ebiten.NewImage(size.W, size.H)
		o.heatBuf = make([]byte, 4*total)
	}
	o.counts = o.grid.NeighborCounts(o.counts)
	render.FillHeatRGBA(o.heatBuf, o.counts, color.RGBA{R: 255, G: 120, B: 40, A: 160})
	o.heatImg.WritePixels(o.heatBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(o.offset), float64(o.offset))
	screen.DrawImage(o.heatImg, op)
}
