package solver

import "svw.info/lyne/internal/domain"

// stranded reports whether the move that just placed the head on `to`
// (leaving `from`) provably killed the branch: some cell still owing visits
// can no longer be entered by anyone. Only cells around from and to can have
// changed status, so the check stays local.
//
// A cell q with remaining capacity is unreachable when every neighbor of q
// has zero remaining capacity and the head is not sitting next to q: any
// future entry into q requires a path to first stand on a neighbor of q,
// which in turn requires that neighbor to have capacity left right now.
// Unstarted colors are no exception — their first endpoint still carries its
// own capacity, so it never reads as exhausted here.
func (st *searchState) stranded(from, to domain.Coord) bool {
	head := &to
	return st.anyUnreachable(from, head) || st.anyUnreachable(to, head)
}

// strandedClosed is the same check after a path closed on its target
// endpoint, where no head remains to vouch for adjacent cells.
func (st *searchState) strandedClosed(from, target domain.Coord) bool {
	return st.anyUnreachable(from, nil) || st.anyUnreachable(target, nil)
}

func (st *searchState) anyUnreachable(around domain.Coord, head *domain.Coord) bool {
	for _, d := range st.dirs {
		q := around.Step(d)
		if !st.grid.InBounds(q) {
			continue
		}
		if st.remaining[st.grid.Index(q)] == 0 {
			continue
		}
		if head != nil && head.Adjacent(q) {
			continue
		}
		if st.noLiveNeighbor(q) {
			return true
		}
	}
	return false
}

func (st *searchState) noLiveNeighbor(q domain.Coord) bool {
	for _, d := range st.dirs {
		m := q.Step(d)
		if st.grid.InBounds(m) && st.remaining[st.grid.Index(m)] > 0 {
			return false
		}
	}
	return true
}
