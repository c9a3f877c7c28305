//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image from cell states and draws it
// scaled, with optional lines between cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided states into the painter image and draws it at
// (offset, offset) with the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, states []uint8, palette []color.RGBA, scale, offset int) {
	if len(states) != gp.w*gp.h {
		return
	}
	FillPaletteRGBA(gp.buf, states, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(offset), float64(offset))
	dst.DrawImage(gp.img, op)
}

// Lines strokes the cell boundaries. Scales below 4 are skipped since the
// lines would cover the cells.
func (gp *GridPainter) Lines(dst *ebiten.Image, clr color.Color, scale, offset int) {
	if scale < 4 {
		return
	}
	s, o := float32(scale), float32(offset)
	width, height := float32(gp.w)*s, float32(gp.h)*s
	for x := 0; x <= gp.w; x++ {
		fx := o + float32(x)*s
		vector.StrokeLine(dst, fx, o, fx, o+height, 1, clr, false)
	}
	for y := 0; y <= gp.h; y++ {
		fy := o + float32(y)*s
		vector.StrokeLine(dst, o, fy, o+width, fy, 1, clr, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
