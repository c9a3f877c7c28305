package control

// Viewport maps window pixels onto grid cells.
type Viewport struct {
	Scale  int
	Border int
}

// CellAt returns the cell under pixel (px, py). The result is not clamped:
// pixels outside the board map to coordinates the grid will reject.
func (v Viewport) CellAt(px, py int) (int, int) {
	scale := v.Scale
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px-v.Border, scale), floorDiv(py-v.Border, scale)
}

// Extent returns the pixel size of a w x h board including both borders.
func (v Viewport) Extent(w, h int) (int, int) {
	scale := v.Scale
	if scale <= 0 {
		scale = 1
	}
	return w*scale + 2*v.Border, h*scale + 2*v.Border
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
