package domain

// Coord identifies a cell on the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step returns the coordinate one step away in the given direction.
func (p Coord) Step(d Direction) Coord {
	dr, dc := d.Offset()
	return Coord{Row: p.Row + dr, Col: p.Col + dc}
}

// Adjacent reports whether q is one step away from p (orthogonally or
// diagonally).
func (p Coord) Adjacent(q Coord) bool {
	dr, dc := q.Row-p.Row, q.Col-p.Col
	if dr < -1 || dr > 1 || dc < -1 || dc > 1 {
		return false
	}
	return dr != 0 || dc != 0
}

// Cell is one typed board position. Visits is meaningful only for
// KindNumbered; Color only for KindEndpoint and KindNode.
type Cell struct {
	Kind   CellKind `json:"kind"`
	Color  Color    `json:"color,omitempty"`
	Visits uint8    `json:"visits,omitempty"`
}

// Capacity returns how many times the cell may be entered in total.
func (c Cell) Capacity() uint8 {
	switch c.Kind {
	case KindEndpoint, KindNode:
		return 1
	case KindNumbered:
		return c.Visits
	}
	return 0
}

// Path is one color's ordered walk from one of its endpoints to the other.
type Path struct {
	Color Color   `json:"color"`
	Cells []Coord `json:"cells"`
}

// Solution maps each present color to its completed path, ordered by color.
type Solution struct {
	Paths []Path `json:"paths"`
}

// Path returns the path routed for the given color, if any.
func (s *Solution) Path(c Color) (Path, bool) {
	for _, p := range s.Paths {
		if p.Color == c {
			return p, true
		}
	}
	return Path{}, false
}

// Hint describes a suggested opening for the UI.
type Hint struct {
	Message string  `json:"message,omitempty"`
	Color   Color   `json:"color"`
	Cells   []Coord `json:"cells,omitempty"`
	Scope   HintScope `json:"scope,omitempty"`
}

// Puzzle is a persisted board with metadata. The board is stored in its
// textual row form so saved files stay hand-editable.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Rows       []string   `json:"rows"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
