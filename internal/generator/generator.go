package generator

import "svw.info/lyne/internal/ports"

// WalkGenerator carves random paths over an empty grid and derives the board
// from the carved visits, so every generated puzzle is solvable by
// construction. The provided Solver double-checks the result and is used to
// prefer boards with a unique solution.
type WalkGenerator struct {
	Solver ports.Solver
}

// NewWalkGenerator wires a generator that verifies its boards with the given solver.
func NewWalkGenerator(s ports.Solver) *WalkGenerator {
	return &WalkGenerator{Solver: s}
}
