package life

import (
	"fmt"
	"strings"

	"github.com/LilLilian59/JeuDeLaVie/pkg/core"
)

// Grid is a fixed-size toroidal Game of Life board with obstacle cells.
// A Grid is not safe for concurrent use.
type Grid struct {
	w, h int
	cur  []Cell
	nxt  []Cell
	gen  int
}

// New returns an all-dead grid without obstacles.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("life: %dx%d: %w", w, h, ErrInvalidSize)
	}
	cells := make([]Cell, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]Cell, len(cells))}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(w, h int) *Grid {
	g, err := New(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Generation returns the number of steps since creation or the last Clear.
func (g *Grid) Generation() int { return g.gen }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

func (g *Grid) index(x, y int) (int, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0, fmt.Errorf("life: cell (%d,%d) outside %dx%d grid: %w", x, y, g.w, g.h, ErrInvalidCoordinate)
	}
	return y*g.w + x, nil
}

// Cell returns the cell at (x, y).
func (g *Grid) Cell(x, y int) (Cell, error) {
	idx, err := g.index(x, y)
	if err != nil {
		return Cell{}, err
	}
	return g.cur[idx], nil
}

// IsAlive reports whether the cell at (x, y) is alive.
func (g *Grid) IsAlive(x, y int) (bool, error) {
	c, err := g.Cell(x, y)
	return c.Alive, err
}

// IsObstacle reports whether the cell at (x, y) is an obstacle.
func (g *Grid) IsObstacle(x, y int) (bool, error) {
	c, err := g.Cell(x, y)
	return c.Obstacle, err
}

// State returns the render state of the cell at (x, y).
func (g *Grid) State(x, y int) (CellState, error) {
	c, err := g.Cell(x, y)
	return c.State(), err
}

// SetAlive sets the alive flag of the cell at (x, y). Obstacle cells ignore
// the call whatever the value.
func (g *Grid) SetAlive(x, y int, alive bool) error {
	idx, err := g.index(x, y)
	if err != nil {
		return err
	}
	if g.cur[idx].Obstacle {
		return nil
	}
	g.cur[idx].Alive = alive
	return nil
}

// ToggleObstacle flips the obstacle flag of the cell at (x, y). The alive
// flag is left as is and stays frozen while the obstacle is set.
func (g *Grid) ToggleObstacle(x, y int) error {
	idx, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cur[idx].Obstacle = !g.cur[idx].Obstacle
	return nil
}

// Clear kills every cell and removes every obstacle.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Cell{}
	}
	g.gen = 0
}

// NeighborCount returns the number of live, non-obstacle cells among the eight
// toroidally wrapped neighbors of (x, y).
func (g *Grid) NeighborCount(x, y int) (int, error) {
	if _, err := g.index(x, y); err != nil {
		return 0, err
	}
	return g.neighbors(x, y), nil
}

func (g *Grid) neighbors(x, y int) int {
	w, h := g.w, g.h
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			c := g.cur[ny*w+nx]
			if c.Alive && !c.Obstacle {
				count++
			}
		}
	}
	return count
}

// Step advances the simulation by one generation. Every next state is derived
// from the pre-step board before any of them is committed.
func (g *Grid) Step() {
	w, h := g.w, g.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			c := g.cur[idx]
			g.nxt[idx] = Cell{
				Alive:    ApplyRule(c.Alive, g.neighbors(x, y), c.Obstacle),
				Obstacle: c.Obstacle,
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// Population returns the number of live cells that are not obstacles.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c.Alive && !c.Obstacle {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the cells in row-major order.
func (g *Grid) Snapshot() []Cell {
	return append([]Cell(nil), g.cur...)
}

// Restore replaces the board with a snapshot taken from a grid of the same size.
// The generation counter is left untouched.
func (g *Grid) Restore(cells []Cell) error {
	if len(cells) != len(g.cur) {
		return fmt.Errorf("life: restore %d cells into %dx%d grid: %w", len(cells), g.w, g.h, ErrSnapshotSize)
	}
	copy(g.cur, cells)
	return nil
}

// States writes the render state of every cell into dst, growing it when
// needed, and returns the filled slice.
func (g *Grid) States(dst []uint8) []uint8 {
	if cap(dst) < len(g.cur) {
		dst = make([]uint8, len(g.cur))
	}
	dst = dst[:len(g.cur)]
	for i, c := range g.cur {
		dst[i] = uint8(c.State())
	}
	return dst
}

// NeighborCounts writes the live-neighbor count of every cell into dst,
// growing it when needed, and returns the filled slice.
func (g *Grid) NeighborCounts(dst []uint8) []uint8 {
	if cap(dst) < len(g.cur) {
		dst = make([]uint8, len(g.cur))
	}
	dst = dst[:len(g.cur)]
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			dst[y*g.w+x] = uint8(g.neighbors(x, y))
		}
	}
	return dst
}

// Randomize seeds every non-obstacle cell alive with probability density.
// Obstacle cells are left alone.
func (g *Grid) Randomize(seed int64, density float64) {
	rng := core.NewRNG(seed)
	for i := range g.cur {
		if g.cur[i].Obstacle {
			continue
		}
		g.cur[i].Alive = rng.Chance(density)
	}
}

// String renders the board with '#' for live cells, 'X' for obstacles and
// '.' for dead cells, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			b.WriteByte(g.cur[y*g.w+x].glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
