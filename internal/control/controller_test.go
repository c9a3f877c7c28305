package control

import (
	"errors"
	"testing"

	"github.com/LilLilian59/JeuDeLaVie/pkg/life"
)

func newController(t *testing.T, w, h int) *Controller {
	t.Helper()
	g, err := life.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return New(g, 0.5)
}

func TestApplyCellIntents(t *testing.T) {
	c := newController(t, 6, 6)

	if err := c.Apply(Intent{Kind: SetCell, X: 1, Y: 1, Alive: true}); err != nil {
		t.Fatal(err)
	}
	if alive, _ := c.Grid().IsAlive(1, 1); !alive {
		t.Fatal("SetCell did not set the cell")
	}

	if err := c.Apply(Intent{Kind: ToggleCell, X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}
	if alive, _ := c.Grid().IsAlive(1, 1); alive {
		t.Fatal("ToggleCell did not kill the cell")
	}

	if err := c.Apply(Intent{Kind: ToggleObstacle, X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if err := c.Apply(Intent{Kind: ToggleCell, X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if s, _ := c.Grid().State(2, 2); s != life.StateObstacle {
		t.Fatalf("obstacle state = %v", s)
	}
	if alive, _ := c.Grid().IsAlive(2, 2); alive {
		t.Fatal("ToggleCell must not revive an obstacle")
	}
}

func TestApplyReportsGridErrors(t *testing.T) {
	c := newController(t, 4, 4)

	err := c.Apply(Intent{Kind: SetCell, X: 4, Y: 0, Alive: true})
	if !errors.Is(err, life.ErrInvalidCoordinate) {
		t.Fatalf("err = %v, want ErrInvalidCoordinate", err)
	}
	err = c.Apply(Intent{Kind: StampPattern, Pattern: "loaf", X: 1, Y: 1})
	if !errors.Is(err, life.ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
	if err := c.Apply(Intent{Kind: Kind(200)}); err == nil {
		t.Fatal("unknown intent kinds must fail")
	}
}

func TestApplyAllKeepsGoing(t *testing.T) {
	c := newController(t, 5, 5)
	err := c.ApplyAll([]Intent{
		{Kind: SetCell, X: -1, Y: 0, Alive: true},
		{Kind: StampPattern, Pattern: life.Block, X: 2, Y: 2},
	})
	if !errors.Is(err, life.ErrInvalidCoordinate) {
		t.Fatalf("err = %v, want the first failure", err)
	}
	if c.Grid().Population() != 4 {
		t.Fatalf("population = %d, want 4 from the block", c.Grid().Population())
	}
}

func TestAdvance(t *testing.T) {
	c := newController(t, 5, 5)
	_ = c.Apply(Intent{Kind: StampPattern, Pattern: life.Block, X: 2, Y: 2})

	if c.Advance(true) {
		t.Fatal("paused session must not step")
	}

	_ = c.Apply(Intent{Kind: StepOnce})
	if !c.Advance(false) {
		t.Fatal("single step must run without a tick")
	}
	if c.Advance(false) {
		t.Fatal("single step must only run once")
	}

	_ = c.Apply(Intent{Kind: ToggleRunning})
	if !c.Running() {
		t.Fatal("ToggleRunning did not start the session")
	}
	if c.Advance(false) {
		t.Fatal("running session must wait for a tick")
	}
	if !c.Advance(true) {
		t.Fatal("running session must step on a tick")
	}
	if c.Grid().Generation() != 2 {
		t.Fatalf("generation = %d, want 2", c.Grid().Generation())
	}
}

func TestClearPauses(t *testing.T) {
	c := newController(t, 5, 5)
	_ = c.Apply(Intent{Kind: ToggleObstacle, X: 0, Y: 0})
	_ = c.Apply(Intent{Kind: SetCell, X: 3, Y: 3, Alive: true})
	c.SetRunning(true)
	_ = c.Apply(Intent{Kind: StepOnce})

	if err := c.Apply(Intent{Kind: Clear}); err != nil {
		t.Fatal(err)
	}
	if c.Running() {
		t.Fatal("Clear must pause the session")
	}
	if c.Advance(true) {
		t.Fatal("Clear must drop a pending single step")
	}
	for _, cell := range c.Grid().Snapshot() {
		if cell.Alive || cell.Obstacle {
			t.Fatalf("cell %+v survived Clear", cell)
		}
	}
}

func TestRandomizeUsesDensity(t *testing.T) {
	g := life.MustNew(20, 20)
	c := New(g, 1)
	if err := c.Apply(Intent{Kind: Randomize, Seed: 9}); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 400 {
		t.Fatalf("population = %d, want 400", g.Population())
	}
}

func TestParameters(t *testing.T) {
	c := newController(t, 5, 5)
	_ = c.Apply(Intent{Kind: StampPattern, Pattern: life.Block, X: 2, Y: 2})
	c.SetRunning(true)
	snap := c.Parameters()

	checks := map[string]string{"size": "5x5", "generation": "0", "population": "4", "running": "true"}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("%s = %q (found %v), want %q", key, p.Value, ok, want)
		}
	}
}

func TestIntentString(t *testing.T) {
	cases := map[Intent]string{
		{Kind: SetCell, X: 1, Y: 2, Alive: true}:               "set-cell(1,2)=true",
		{Kind: ToggleObstacle, X: 3, Y: 4}:                     "toggle-obstacle(3,4)",
		{Kind: StampPattern, Pattern: life.Glider, X: 0, Y: 9}: "stamp glider@0,9",
		{Kind: Clear}:              "clear",
		{Kind: Randomize, Seed: 5}: "randomize seed=5",
	}
	for in, want := range cases {
		if got := in.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}

func TestViewportCellAt(t *testing.T) {
	v := Viewport{Scale: 12, Border: 2}
	cases := []struct {
		px, py int
		x, y   int
	}{
		{2, 2, 0, 0},
		{13, 13, 0, 0},
		{14, 14, 1, 1},
		{0, 0, -1, -1},
		{601, 2, 49, 0},
		{602, 2, 50, 0},
	}
	for _, tc := range cases {
		x, y := v.CellAt(tc.px, tc.py)
		if x != tc.x || y != tc.y {
			t.Fatalf("CellAt(%d,%d) = (%d,%d), want (%d,%d)", tc.px, tc.py, x, y, tc.x, tc.y)
		}
	}
	if w, h := v.Extent(50, 30); w != 604 || h != 364 {
		t.Fatalf("Extent = %dx%d, want 604x364", w, h)
	}
}
