package life

// CellState is the three-way view of a cell handed to renderers.
type CellState uint8

const (
	StateDead CellState = iota
	StateAlive
	StateObstacle
)

// String returns a short label for the state.
func (s CellState) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateObstacle:
		return "obstacle"
	default:
		return "dead"
	}
}

// Cell is the atomic unit of simulation state.
type Cell struct {
	Alive    bool
	Obstacle bool
}

// State collapses the cell into its render state. Obstacles win over alive.
func (c Cell) State() CellState {
	switch {
	case c.Obstacle:
		return StateObstacle
	case c.Alive:
		return StateAlive
	default:
		return StateDead
	}
}

// glyph is the character Grid.String prints for the cell.
func (c Cell) glyph() byte {
	switch c.State() {
	case StateObstacle:
		return 'X'
	case StateAlive:
		return '#'
	default:
		return '.'
	}
}
