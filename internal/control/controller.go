package control

import (
	"fmt"
	"strconv"

	"github.com/LilLilian59/JeuDeLaVie/internal/core"
	"github.com/LilLilian59/JeuDeLaVie/pkg/life"
)

// Controller applies intents to a grid and decides when it steps.
type Controller struct {
	grid    *life.Grid
	density float64
	running bool
	pending bool
}

// New wraps g. density is the live-cell probability used by Randomize intents.
func New(g *life.Grid, density float64) *Controller {
	return &Controller{grid: g, density: density}
}

// Grid returns the controlled grid.
func (c *Controller) Grid() *life.Grid { return c.grid }

// Running reports whether the session steps continuously.
func (c *Controller) Running() bool { return c.running }

// SetRunning starts or pauses continuous stepping.
func (c *Controller) SetRunning(running bool) { c.running = running }

// Apply performs one intent. Errors from the grid are returned wrapped with
// the intent; the grid is left unchanged by a failing single-cell intent.
func (c *Controller) Apply(in Intent) error {
	var err error
	switch in.Kind {
	case SetCell:
		err = c.grid.SetAlive(in.X, in.Y, in.Alive)
	case ToggleCell:
		var alive bool
		if alive, err = c.grid.IsAlive(in.X, in.Y); err == nil {
			err = c.grid.SetAlive(in.X, in.Y, !alive)
		}
	case ToggleObstacle:
		err = c.grid.ToggleObstacle(in.X, in.Y)
	case StampPattern:
		err = life.Stamp(in.Pattern, in.X, in.Y, c.grid)
	case Clear:
		c.running = false
		c.pending = false
		c.grid.Clear()
	case ToggleRunning:
		c.running = !c.running
	case StepOnce:
		c.pending = true
	case Randomize:
		c.grid.Randomize(in.Seed, c.density)
	default:
		err = fmt.Errorf("unsupported intent kind %d", in.Kind)
	}
	if err != nil {
		return fmt.Errorf("control: %s: %w", in, err)
	}
	return nil
}

// ApplyAll performs intents in order and returns the first error after
// attempting all of them.
func (c *Controller) ApplyAll(intents []Intent) error {
	var first error
	for _, in := range intents {
		if err := c.Apply(in); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Advance steps the grid once when the session is running or a single step
// was requested, and reports whether it stepped. tick is the host's pacing
// decision for continuous running; single steps ignore it.
func (c *Controller) Advance(tick bool) bool {
	if c.pending || (c.running && tick) {
		c.pending = false
		c.grid.Step()
		return true
	}
	return false
}

// Parameters reports session state for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	size := c.grid.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.TextParam("size", "Size", strconv.Itoa(size.W)+"x"+strconv.Itoa(size.H)),
				core.IntParam("generation", "Generation", c.grid.Generation()),
				core.IntParam("population", "Population", c.grid.Population()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.BoolParam("running", "Running", c.running),
			},
		},
	}}
}
