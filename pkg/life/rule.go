package life

// ApplyRule returns the next alive state of a cell under Conway's rules.
// Obstacle cells keep their current state. The function is total: neighbor
// counts outside [0, 8] fall through the same comparisons.
func ApplyRule(alive bool, neighbors int, obstacle bool) bool {
	if obstacle {
		return alive
	}
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
