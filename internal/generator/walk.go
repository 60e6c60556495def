package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/lyne/internal/board"
	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/ports"
)

const (
	boardAttempts = 32 // fresh carves per Generate call
	colorAttempts = 24 // walk retries per color within one carve
	minWalkCells  = 3
)

func shape(d domain.Difficulty) (h, w, colors int) {
	switch d {
	case domain.Easy:
		return 3, 4, 1
	case domain.Hard:
		return 5, 6, 3
	case domain.Expert:
		return 6, 7, 4
	default:
		return 4, 5, 2
	}
}

// Generate carves a board for the target difficulty using the seeded RNG.
// The first solvable carve whose solution is unique wins; if uniqueness
// keeps failing, the last solvable carve is returned instead.
func (g *WalkGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	h, w, colors := shape(diff)
	nodes := 0
	var fallback *domain.Puzzle

	for attempt := 0; attempt < boardAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		rows, ok := carve(rng, h, w, colors)
		if !ok {
			continue
		}
		grid, err := board.Parse(rows)
		if err != nil {
			continue
		}
		if _, st, err := g.Solver.Solve(ctx, grid); err != nil {
			nodes += st.Nodes
			continue
		} else {
			nodes += st.Nodes
		}
		p := &domain.Puzzle{
			Seed:       seed,
			Difficulty: diff,
			Rows:       rows,
			CreatedAt:  time.Now().UnixNano(),
		}
		unique, st, err := g.Solver.Unique(ctx, grid)
		nodes += st.Nodes
		if err == nil && unique {
			return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		fallback = p
	}
	if fallback != nil {
		return fallback, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)},
		errors.New("generator: failed to carve a solvable board")
}

// carve lays one random orthogonal walk per color over an empty h x w grid.
// Cells visited once become that color's nodes (or endpoints at the walk
// ends), cells visited twice become numbered nodes, untouched cells stay
// blank. Walks never reuse an edge, so the carved walks are themselves a
// valid solution of the resulting board.
func carve(rng *rand.Rand, h, w, colors int) ([]string, bool) {
	c := &carver{
		h: h, w: w, rng: rng,
		visits:   make([]uint8, h*w),
		owner:    make([]int8, h*w),
		endpoint: make([]int8, h*w),
		edges:    make(map[edgeKey]bool),
	}
	for i := range c.owner {
		c.owner[i] = -1
		c.endpoint[i] = -1
	}
	for ci := 0; ci < colors; ci++ {
		carved := false
		for try := 0; try < colorAttempts && !carved; try++ {
			carved = c.walk(int8(ci))
		}
		if !carved {
			return nil, false
		}
	}
	return c.rows(), true
}

type edgeKey [4]int // r1,c1,r2,c2 with (r1,c1) ordered first

type carver struct {
	h, w     int
	rng      *rand.Rand
	visits   []uint8
	owner    []int8 // first color to touch the cell, -1 for none
	endpoint []int8 // color whose walk ends here, -1 for none
	edges    map[edgeKey]bool
}

func (c *carver) idx(p domain.Coord) int { return p.Row*c.w + p.Col }

func (c *carver) in(p domain.Coord) bool {
	return p.Row >= 0 && p.Row < c.h && p.Col >= 0 && p.Col < c.w
}

func (c *carver) key(a, b domain.Coord) edgeKey {
	if a.Row > b.Row || (a.Row == b.Row && a.Col > b.Col) {
		a, b = b, a
	}
	return edgeKey{a.Row, a.Col, b.Row, b.Col}
}

// walk carves one color's path and records endpoints; on failure all of its
// markings are rolled back.
func (c *carver) walk(color int8) bool {
	var free []domain.Coord
	for r := 0; r < c.h; r++ {
		for col := 0; col < c.w; col++ {
			p := domain.Coord{Row: r, Col: col}
			if c.visits[c.idx(p)] == 0 {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	start := free[c.rng.Intn(len(free))]

	var touched []domain.Coord
	var usedEdges []edgeKey
	undo := func() {
		for _, p := range touched {
			i := c.idx(p)
			c.visits[i]--
			if c.visits[i] == 0 && c.owner[i] == color {
				c.owner[i] = -1
			}
		}
		for _, k := range usedEdges {
			delete(c.edges, k)
		}
		c.endpoint[c.idx(start)] = -1
	}

	enter := func(p domain.Coord) {
		i := c.idx(p)
		if c.owner[i] == -1 {
			c.owner[i] = color
		}
		c.visits[i]++
		touched = append(touched, p)
	}

	enter(start)
	c.endpoint[c.idx(start)] = color
	cur := start
	length := 1
	maxLen := c.h * c.w

	finish := func(p domain.Coord) bool {
		i := c.idx(p)
		if length < minWalkCells || c.visits[i] != 1 || c.endpoint[i] != -1 {
			return false
		}
		c.endpoint[i] = color
		return true
	}

	for length < maxLen {
		var cands []domain.Coord
		for _, d := range domain.Directions(domain.Conn4) {
			q := cur.Step(d)
			if !c.in(q) {
				continue
			}
			i := c.idx(q)
			if c.endpoint[i] != -1 || c.visits[i] >= 2 || c.edges[c.key(cur, q)] {
				continue
			}
			cands = append(cands, q)
		}
		if len(cands) == 0 {
			break
		}
		q := cands[c.rng.Intn(len(cands))]
		k := c.key(cur, q)
		c.edges[k] = true
		usedEdges = append(usedEdges, k)
		enter(q)
		cur = q
		length++
		if c.rng.Intn(3) == 0 && finish(cur) {
			return true
		}
	}
	if finish(cur) {
		return true
	}
	undo()
	return false
}

func (c *carver) rows() []string {
	rows := make([]string, c.h)
	for r := 0; r < c.h; r++ {
		line := make([]byte, c.w)
		for col := 0; col < c.w; col++ {
			i := r*c.w + col
			switch {
			case c.endpoint[i] != -1:
				line[col] = domain.Color(c.endpoint[i]).Endpoint()
			case c.visits[i] == 0:
				line[col] = '.'
			case c.visits[i] == 1:
				line[col] = domain.Color(c.owner[i]).Node()
			default:
				line[col] = '0' + c.visits[i]
			}
		}
		rows[r] = string(line)
	}
	return rows
}
