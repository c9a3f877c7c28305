// Package control turns discrete host actions into grid mutations and owns
// the run/pause state of a session.
package control

import "fmt"

// Kind enumerates the actions a host can request.
type Kind uint8

const (
	// SetCell writes Alive to the target cell through the obstacle guard.
	SetCell Kind = iota
	// ToggleCell flips the alive flag of the target cell.
	ToggleCell
	// ToggleObstacle flips the obstacle flag of the target cell.
	ToggleObstacle
	// StampPattern stamps Pattern anchored at the target cell.
	StampPattern
	// Clear resets the whole grid and pauses the session.
	Clear
	// ToggleRunning starts or pauses continuous stepping.
	ToggleRunning
	// StepOnce requests a single generation on the next Advance.
	StepOnce
	// Randomize reseeds live cells using Seed and the controller's density.
	Randomize
)

var kindNames = [...]string{
	SetCell:        "set-cell",
	ToggleCell:     "toggle-cell",
	ToggleObstacle: "toggle-obstacle",
	StampPattern:   "stamp",
	Clear:          "clear",
	ToggleRunning:  "toggle-running",
	StepOnce:       "step",
	Randomize:      "randomize",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Intent is one resolved host action.
type Intent struct {
	Kind    Kind
	X, Y    int
	Alive   bool
	Pattern string
	Seed    int64
}

// Targeted reports whether the intent addresses a single cell.
func (i Intent) Targeted() bool {
	switch i.Kind {
	case SetCell, ToggleCell, ToggleObstacle, StampPattern:
		return true
	}
	return false
}

func (i Intent) String() string {
	switch i.Kind {
	case SetCell:
		return fmt.Sprintf("%s(%d,%d)=%v", i.Kind, i.X, i.Y, i.Alive)
	case StampPattern:
		return fmt.Sprintf("%s %s@%d,%d", i.Kind, i.Pattern, i.X, i.Y)
	case Randomize:
		return fmt.Sprintf("%s seed=%d", i.Kind, i.Seed)
	}
	if i.Targeted() {
		return fmt.Sprintf("%s(%d,%d)", i.Kind, i.X, i.Y)
	}
	return i.Kind.String()
}
