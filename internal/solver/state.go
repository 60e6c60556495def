package solver

import (
	"github.com/sirupsen/logrus"

	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/ports"
)

// colorMark records which color occupies an edge slot; zero means free.
type colorMark uint8

func mark(c domain.Color) colorMark { return colorMark(c) + 1 }

// Edge slots are stored canonically on one of the two cells they touch, in
// four "inner" directions, so every edge has exactly one home:
//
//	0 right, 1 down-right, 2 down, 3 down-left
//
// Up/left/up-left/up-right steps map onto the neighboring cell's slot.
const (
	slotRight = iota
	slotDownRight
	slotDown
	slotDownLeft
	sideSlots
)

// searchState is the mutable search frame: the visit ledger, the edge
// occupancy, and the partial paths. It is owned by exactly one search; undo
// is exact, and clone produces a fully independent copy for parallel
// branches.
type searchState struct {
	grid *domain.Grid
	dirs []domain.Direction

	remaining []uint8                // per-cell visit ledger, row-major
	sides     [][sideSlots]colorMark // edge occupancy, row-major
	colors    []domain.Color
	paths     [][]domain.Coord
	nodesLeft []int // per color: plain nodes not yet visited
	totalLeft int   // sum of remaining over all cells

	nodes    int // moves applied, the search budget unit
	maxNodes int
	stopErr  error

	progress ports.ProgressFunc
	log      logrus.FieldLogger
}

func newState(g *domain.Grid, conn domain.Connectivity, maxNodes int, log logrus.FieldLogger, fn ports.ProgressFunc) *searchState {
	n := g.Width() * g.Height()
	st := &searchState{
		grid:      g,
		dirs:      domain.Directions(conn),
		remaining: make([]uint8, n),
		sides:     make([][sideSlots]colorMark, n),
		colors:    g.Colors(),
		totalLeft: g.TotalCapacity(),
		maxNodes:  maxNodes,
		progress:  fn,
		log:       log,
	}
	st.paths = make([][]domain.Coord, len(st.colors))
	st.nodesLeft = make([]int, len(st.colors))
	for i, c := range st.colors {
		st.nodesLeft[i] = g.NodeCount(c)
	}
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := domain.Coord{Row: r, Col: c}
			st.remaining[g.Index(p)] = g.At(p).Capacity()
		}
	}
	return st
}

func (st *searchState) clone() *searchState {
	cp := *st
	cp.remaining = append([]uint8(nil), st.remaining...)
	cp.sides = append([][sideSlots]colorMark(nil), st.sides...)
	cp.nodesLeft = append([]int(nil), st.nodesLeft...)
	cp.paths = make([][]domain.Coord, len(st.paths))
	for i, p := range st.paths {
		cp.paths[i] = append([]domain.Coord(nil), p...)
	}
	return &cp
}

// canonicalSide maps a step onto its home cell and slot.
func canonicalSide(from domain.Coord, d domain.Direction) (domain.Coord, int) {
	switch d {
	case domain.Right:
		return from, slotRight
	case domain.Left:
		return from.Step(domain.Left), slotRight
	case domain.DownRight:
		return from, slotDownRight
	case domain.UpLeft:
		return from.Step(domain.UpLeft), slotDownRight
	case domain.Down:
		return from, slotDown
	case domain.Up:
		return from.Step(domain.Up), slotDown
	case domain.DownLeft:
		return from, slotDownLeft
	default: // UpRight
		return from.Step(domain.UpRight), slotDownLeft
	}
}

// crossingSide returns the edge slot a diagonal home slot would cross.
// The two bevels of one 2x2 block may not both be occupied.
func crossingSide(home domain.Coord, slot int) (domain.Coord, int, bool) {
	switch slot {
	case slotDownRight:
		return domain.Coord{Row: home.Row, Col: home.Col + 1}, slotDownLeft, true
	case slotDownLeft:
		return domain.Coord{Row: home.Row, Col: home.Col - 1}, slotDownRight, true
	}
	return domain.Coord{}, 0, false
}

// begin consumes a color's starting endpoint and opens its path.
func (st *searchState) begin(ci int, start domain.Coord) {
	st.remaining[st.grid.Index(start)]--
	st.totalLeft--
	st.paths[ci] = append(st.paths[ci][:0], start)
}

// abandon reverses begin when a color cannot be routed.
func (st *searchState) abandon(ci int, start domain.Coord) {
	st.remaining[st.grid.Index(start)]++
	st.totalLeft++
	st.paths[ci] = st.paths[ci][:0]
}

// apply commits one step. Must be preceded by a legal() check.
func (st *searchState) apply(ci int, from domain.Coord, d domain.Direction, to domain.Coord) {
	st.remaining[st.grid.Index(to)]--
	st.totalLeft--
	cell := st.grid.At(to)
	if cell.Kind == domain.KindNode {
		st.nodesLeft[ci]--
	}
	home, slot := canonicalSide(from, d)
	st.sides[st.grid.Index(home)][slot] = mark(st.colors[ci])
	st.paths[ci] = append(st.paths[ci], to)
	st.nodes++
	if st.progress != nil && st.nodes%progressEvery == 0 {
		st.progress(st.nodes)
	}
}

// undo reverses exactly one apply.
func (st *searchState) undo(ci int, from domain.Coord, d domain.Direction, to domain.Coord) {
	st.paths[ci] = st.paths[ci][:len(st.paths[ci])-1]
	home, slot := canonicalSide(from, d)
	st.sides[st.grid.Index(home)][slot] = 0
	if st.grid.At(to).Kind == domain.KindNode {
		st.nodesLeft[ci]++
	}
	st.totalLeft++
	st.remaining[st.grid.Index(to)]++
}

// solution promotes the completed paths into an immutable Solution.
func (st *searchState) solution() *domain.Solution {
	sol := &domain.Solution{Paths: make([]domain.Path, len(st.colors))}
	for i, c := range st.colors {
		sol.Paths[i] = domain.Path{
			Color: c,
			Cells: append([]domain.Coord(nil), st.paths[i]...),
		}
	}
	return sol
}
