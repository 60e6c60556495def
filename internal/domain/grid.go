package domain

import "fmt"

// Grid is the immutable board: fixed-size 2-D cell array plus the derived
// per-color endpoint pairs. It is constructed once, validated, and never
// mutated, so it may be shared freely across concurrent search branches.
type Grid struct {
	width, height int
	cells         []Cell // row-major
	colors        []Color
	endpoints     [numColors][2]Coord
	nodeCount     [numColors]int
	total         int
}

// NewGrid builds a Grid from typed cell rows and checks the structural
// invariants: the board must be rectangular and non-empty, every color with
// any presence on the board must have exactly two endpoints, and plain color
// nodes may not appear without their endpoints. Violations are reported as
// ErrMalformedBoard with detail.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: board has no cells", ErrMalformedBoard)
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{width: w, height: h, cells: make([]Cell, 0, w*h)}
	var endpointCount [numColors]int
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrMalformedBoard, r, len(row), w)
		}
		for c, cell := range row {
			switch cell.Kind {
			case KindEndpoint:
				n := endpointCount[cell.Color]
				if n < 2 {
					g.endpoints[cell.Color][n] = Coord{Row: r, Col: c}
				}
				endpointCount[cell.Color]++
			case KindNode:
				g.nodeCount[cell.Color]++
			case KindNumbered:
				if cell.Visits == 0 {
					return nil, fmt.Errorf("%w: numbered cell at (%d,%d) has zero capacity",
						ErrMalformedBoard, r, c)
				}
			}
			g.total += int(cell.Capacity())
			g.cells = append(g.cells, cell)
		}
	}
	for _, c := range AllColors() {
		switch {
		case endpointCount[c] == 2:
			g.colors = append(g.colors, c)
		case endpointCount[c] != 0:
			return nil, fmt.Errorf("%w: color %s has %d endpoints, want 0 or 2",
				ErrMalformedBoard, c, endpointCount[c])
		case g.nodeCount[c] != 0:
			return nil, fmt.Errorf("%w: color %s has %d nodes but no endpoints",
				ErrMalformedBoard, c, g.nodeCount[c])
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Coord) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Index maps a coordinate to its row-major cell index.
func (g *Grid) Index(p Coord) int { return p.Row*g.width + p.Col }

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Coord) Cell { return g.cells[g.Index(p)] }

// Colors lists the colors present on the board in fixed solving order.
func (g *Grid) Colors() []Color { return g.colors }

// Endpoints returns the endpoint pair of a color, in row-major order.
// ok is false when the color is absent from the board.
func (g *Grid) Endpoints(c Color) (pair [2]Coord, ok bool) {
	for _, present := range g.colors {
		if present == c {
			return g.endpoints[c], true
		}
	}
	return pair, false
}

// NodeCount returns how many plain nodes of a color the board holds.
func (g *Grid) NodeCount(c Color) int { return g.nodeCount[c] }

// TotalCapacity is the sum of every cell's visit capacity. A complete
// solution consumes exactly this many entries across all paths.
func (g *Grid) TotalCapacity() int { return g.total }

// Neighbors returns the in-bounds cells adjacent to p under the given
// connectivity, in the fixed direction order.
func (g *Grid) Neighbors(p Coord, conn Connectivity) []Coord {
	out := make([]Coord, 0, 8)
	for _, d := range Directions(conn) {
		if q := p.Step(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}
