package domain

// Color identifies one of the routable path colors. Each color present on a
// board owns exactly one path between its two endpoints.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Yellow
	numColors
)

// AllColors returns every color in its fixed solving order.
func AllColors() []Color {
	return []Color{Red, Green, Blue, Yellow}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	}
	return "invalid"
}

// Node returns the board symbol for a plain node of this color.
func (c Color) Node() byte { return "rgby"[c] }

// Endpoint returns the board symbol for an endpoint of this color.
func (c Color) Endpoint() byte { return "RGBY"[c] }

// CellKind is the closed set of cell variants on a board.
type CellKind uint8

const (
	KindBlank    CellKind = iota // never traversable
	KindEndpoint                 // one of a color's two path ends
	KindNode                     // plain color node, visited once by its color
	KindNumbered                 // visited by any path up to its capacity
)

func (k CellKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindEndpoint:
		return "endpoint"
	case KindNode:
		return "node"
	case KindNumbered:
		return "numbered"
	}
	return "invalid"
}

// Connectivity selects the neighbor model used while routing.
type Connectivity uint8

const (
	// Conn4 permits only orthogonal steps.
	Conn4 Connectivity = iota
	// Conn8 additionally permits diagonal steps, with the rule that two
	// diagonal segments may not cross each other inside the same 2x2 block.
	Conn8
)

// Direction is one step between adjacent cells.
type Direction uint8

const (
	Right Direction = iota
	DownRight
	Down
	DownLeft
	Left
	UpLeft
	Up
	UpRight
)

var directionNames = [...]string{
	"right", "down-right", "down", "down-left",
	"left", "up-left", "up", "up-right",
}

func (d Direction) String() string { return directionNames[d] }

// Offset returns the row/col delta of one step in this direction.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Right:
		return 0, 1
	case DownRight:
		return 1, 1
	case Down:
		return 1, 0
	case DownLeft:
		return 1, -1
	case Left:
		return 0, -1
	case UpLeft:
		return -1, -1
	case Up:
		return -1, 0
	case UpRight:
		return -1, 1
	}
	return 0, 0
}

// Diagonal reports whether the step moves on both axes.
func (d Direction) Diagonal() bool {
	return d == DownRight || d == DownLeft || d == UpLeft || d == UpRight
}

// Directions returns the candidate step order for a connectivity model.
// The order is fixed so that searches are deterministic.
func Directions(conn Connectivity) []Direction {
	if conn == Conn8 {
		return []Direction{Right, DownRight, Down, DownLeft, Left, UpLeft, Up, UpRight}
	}
	return []Direction{Right, Down, Left, Up}
}

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// HintScope limits how much of a solution a hint may reveal.
type HintScope int

const (
	ScopeStep HintScope = iota // opening move only
	ScopePath                  // the whole first path
)
