package life

import (
	"errors"
	"slices"
	"testing"
)

func TestBlockOnFiveByFive(t *testing.T) {
	g := MustNew(5, 5)
	if err := Stamp(Block, 2, 2, g); err != nil {
		t.Fatal(err)
	}
	want := map[[2]int]bool{{2, 2}: true, {3, 2}: true, {2, 1}: true, {3, 1}: true}
	expectAlive(t, g, want)

	g.Step()
	expectAlive(t, g, want)
}

func TestBlockIsStillLife(t *testing.T) {
	g := MustNew(20, 20)
	if err := Stamp(Block, 8, 8, g); err != nil {
		t.Fatal(err)
	}
	want := aliveCells(g)
	for i := 0; i < 50; i++ {
		g.Step()
		expectAlive(t, g, want)
	}
}

func TestGliderTranslatesEveryFourSteps(t *testing.T) {
	g := MustNew(24, 24)
	if err := Stamp(Glider, 2, 2, g); err != nil {
		t.Fatal(err)
	}
	start := aliveCells(g)
	for period := 1; period <= 3; period++ {
		for i := 0; i < 4; i++ {
			g.Step()
		}
		want := map[[2]int]bool{}
		for pos := range start {
			want[[2]int{pos[0] + period, pos[1] + period}] = true
		}
		expectAlive(t, g, want)
	}
}

func TestGliderCrossesTheSeam(t *testing.T) {
	g := MustNew(8, 8)
	if err := Stamp(Glider, 0, 0, g); err != nil {
		t.Fatal(err)
	}
	start := g.Population()
	for i := 0; i < 4*8; i++ {
		g.Step()
	}
	if g.Population() != start {
		t.Fatalf("population = %d after a full lap, want %d", g.Population(), start)
	}
	expectAlive(t, g, map[[2]int]bool{{1, 0}: true, {2, 1}: true, {0, 2}: true, {1, 2}: true, {2, 2}: true})
}

func TestStampWrapsAtEdges(t *testing.T) {
	g := MustNew(5, 5)
	if err := Stamp(Block, 0, 0, g); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, g, map[[2]int]bool{{0, 0}: true, {1, 0}: true, {0, 4}: true, {1, 4}: true})
}

func TestStampIsAdditiveAndSkipsObstacles(t *testing.T) {
	g := MustNew(10, 10)
	mustSet(t, g, 9, 9)
	_ = g.ToggleObstacle(3, 2)
	if err := Stamp(Block, 2, 2, g); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, g, map[[2]int]bool{{9, 9}: true, {2, 2}: true, {2, 1}: true, {3, 1}: true})
}

func TestStampErrors(t *testing.T) {
	g := MustNew(6, 6)
	if err := Stamp("pulsar", 1, 1, g); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("unknown pattern err = %v", err)
	}
	if err := Stamp(Glider, 6, 0, g); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("out of range anchor err = %v", err)
	}
	if g.Population() != 0 {
		t.Fatal("failed stamps must not write cells")
	}
}

func TestShipOffsets(t *testing.T) {
	g := MustNew(12, 12)
	if err := Stamp(Ship, 3, 6, g); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, g, map[[2]int]bool{
		{3, 5}: true, {4, 6}: true, {5, 6}: true, {6, 6}: true, {7, 6}: true,
		{8, 6}: true, {8, 5}: true, {8, 4}: true, {7, 3}: true,
	})
}

func TestPatternLibrary(t *testing.T) {
	if got := Names(); !slices.Equal(got, []string{Block, Glider, Ship}) {
		t.Fatalf("Names() = %v", got)
	}
	p, ok := Lookup(Glider)
	if !ok || p.Name() != Glider {
		t.Fatalf("Lookup(glider) = %v, %v", p, ok)
	}
	offsets := p.Offsets()
	offsets[0] = Offset{DX: 99, DY: 99}
	again, _ := Lookup(Glider)
	if again.Offsets()[0] == (Offset{DX: 99, DY: 99}) {
		t.Fatal("Offsets must return a copy")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("Lookup of an unknown name must fail")
	}

	custom := NewPattern("pair", Offset{0, 0}, Offset{1, 0})
	g := MustNew(4, 4)
	if err := custom.Stamp(3, 3, g); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, g, map[[2]int]bool{{3, 3}: true, {0, 3}: true})
}
