package render

import (
	"image/color"
	"slices"
	"testing"

	"github.com/LilLilian59/JeuDeLaVie/pkg/life"
)

func TestFillPaletteRGBAThreeStates(t *testing.T) {
	g := life.MustNew(3, 1)
	_ = g.SetAlive(1, 0, true)
	_ = g.ToggleObstacle(2, 0)

	buf := make([]byte, 4*3)
	FillPaletteRGBA(buf, g.States(nil), Palette)

	want := []byte{
		255, 255, 255, 255,
		0, 0, 0, 255,
		100, 100, 100, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAClampsAndClears(t *testing.T) {
	buf := make([]byte, 8)
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}
	FillPaletteRGBA(buf, []uint8{0, 9}, palette)
	if buf[0] != 1 || buf[4] != 2 {
		t.Fatalf("out-of-range value must use the last color, got %v", buf)
	}

	FillPaletteRGBA(buf, []uint8{0, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want cleared buffer", i, b)
		}
	}
}

func TestFillHeatRGBA(t *testing.T) {
	buf := make([]byte, 12)
	FillHeatRGBA(buf, []uint8{0, 8, 4}, color.RGBA{R: 255, G: 0, B: 0, A: 200})
	if buf[3] != 0 {
		t.Fatalf("zero neighbors alpha = %d, want 0", buf[3])
	}
	if buf[7] != 200 || buf[4] != 200 {
		t.Fatalf("eight neighbors = %v, want full tint", buf[4:8])
	}
	if buf[11] != 100 {
		t.Fatalf("four neighbors alpha = %d, want 100", buf[11])
	}
}
