package solver

import "svw.info/lyne/internal/domain"

// legal reports whether stepping from head in direction d onto next is a
// valid move for the color at index ci whose path must end at target. It
// inspects state but never mutates it. A move is legal when:
//
//   - next is in bounds with remaining capacity,
//   - next does not belong to a different color,
//   - next is the target endpoint only once every plain node of the color
//     has been visited (no premature closure),
//   - the edge between head and next is unused, and
//   - a diagonal step does not cross an occupied diagonal.
func (st *searchState) legal(ci int, head domain.Coord, d domain.Direction, next, target domain.Coord) bool {
	if !st.grid.InBounds(next) {
		return false
	}
	if st.remaining[st.grid.Index(next)] == 0 {
		return false
	}
	cell := st.grid.At(next)
	switch cell.Kind {
	case domain.KindEndpoint, domain.KindNode:
		if cell.Color != st.colors[ci] {
			return false
		}
		if cell.Kind == domain.KindEndpoint {
			// The start endpoint is already consumed, so a same-color
			// endpoint with capacity left is the target. Entering it closes
			// the path, which is only allowed once no nodes are outstanding.
			if next != target || st.nodesLeft[ci] > 0 {
				return false
			}
		}
	}
	home, slot := canonicalSide(head, d)
	if st.sides[st.grid.Index(home)][slot] != 0 {
		return false
	}
	if d.Diagonal() {
		if cross, cslot, ok := crossingSide(home, slot); ok && st.grid.InBounds(cross) {
			if st.sides[st.grid.Index(cross)][cslot] != 0 {
				return false
			}
		}
	}
	return true
}

// legalMoves enumerates the legal next coordinates for the active path head
// in the fixed direction order. An empty result is a dead end.
func (st *searchState) legalMoves(ci int, head, target domain.Coord) []domain.Coord {
	out := make([]domain.Coord, 0, len(st.dirs))
	for _, d := range st.dirs {
		if next := head.Step(d); st.legal(ci, head, d, next, target) {
			out = append(out, next)
		}
	}
	return out
}
