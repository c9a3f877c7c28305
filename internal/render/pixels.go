package render

import (
	"image/color"

	"github.com/LilLilian59/JeuDeLaVie/pkg/life"
)

// Palette maps life.CellState values to colors: dead white, alive black,
// obstacles grey.
var Palette = []color.RGBA{
	life.StateDead:     {R: 255, G: 255, B: 255, A: 255},
	life.StateAlive:    {R: 0, G: 0, B: 0, A: 255},
	life.StateObstacle: {R: 100, G: 100, B: 100, A: 255},
}

// GridLineColor is drawn between cells when the scale leaves room for it.
var GridLineColor = color.RGBA{R: 200, G: 60, B: 60, A: 255}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillHeatRGBA tints pixels by neighbor count: zero is transparent and eight
// reaches tint's full alpha.
func FillHeatRGBA(buf []byte, counts []uint8, tint color.RGBA) {
	for i, n := range counts {
		if n > 8 {
			n = 8
		}
		base := i * 4
		a := uint16(tint.A) * uint16(n) / 8
		// premultiplied alpha, as ebiten expects
		buf[base+0] = uint8(uint16(tint.R) * a / 255)
		buf[base+1] = uint8(uint16(tint.G) * a / 255)
		buf[base+2] = uint8(uint16(tint.B) * a / 255)
		buf[base+3] = uint8(a)
	}
}
