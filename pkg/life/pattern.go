package life

import (
	"fmt"
	"maps"
	"slices"
)

// Offset is a cell position relative to a stamp anchor.
type Offset struct {
	DX, DY int
}

// Pattern is a named, immutable set of anchor-relative offsets.
type Pattern struct {
	name    string
	offsets []Offset
}

// NewPattern builds a pattern from the given offsets.
func NewPattern(name string, offsets ...Offset) Pattern {
	return Pattern{name: name, offsets: slices.Clone(offsets)}
}

// Name returns the pattern identifier.
func (p Pattern) Name() string { return p.name }

// Offsets returns a copy of the pattern's offsets.
func (p Pattern) Offsets() []Offset { return slices.Clone(p.offsets) }

// Pattern names understood by Stamp.
const (
	Glider = "glider"
	Block  = "block"
	Ship   = "ship"
)

var patterns = map[string]Pattern{
	Glider: NewPattern(Glider,
		Offset{1, 0}, Offset{2, 1}, Offset{0, 2}, Offset{1, 2}, Offset{2, 2}),
	Block: NewPattern(Block,
		Offset{0, 0}, Offset{1, 0}, Offset{0, -1}, Offset{1, -1}),
	Ship: NewPattern(Ship,
		Offset{0, -1}, Offset{1, 0}, Offset{2, 0}, Offset{3, 0}, Offset{4, 0},
		Offset{5, 0}, Offset{5, -1}, Offset{5, -2}, Offset{4, -3}),
}

// Lookup returns the built-in pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names lists the built-in patterns in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(patterns))
}

// Stamp sets alive every cell of the named pattern relative to the anchor
// (x, y). Cells past an edge wrap around the torus; obstacle cells are left
// untouched. Stamping never kills cells.
func Stamp(name string, x, y int, g *Grid) error {
	p, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("life: stamp %q: %w", name, ErrUnknownPattern)
	}
	return p.Stamp(x, y, g)
}

// Stamp writes the pattern onto g at anchor (x, y).
func (p Pattern) Stamp(x, y int, g *Grid) error {
	if _, err := g.index(x, y); err != nil {
		return err
	}
	for _, o := range p.offsets {
		cx, cy := g.Wrap(x+o.DX, y+o.DY)
		if err := g.SetAlive(cx, cy, true); err != nil {
			return err
		}
	}
	return nil
}
