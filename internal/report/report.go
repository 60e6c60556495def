// Package report turns accepted solutions into renderable forms. It holds no
// search logic; everything here is a pure transformation of a Solution.
package report

import (
	"fmt"
	"strings"

	"svw.info/lyne/internal/domain"
)

// Step is one rendered path segment.
type Step struct {
	Color     domain.Color     `json:"color"`
	From      domain.Coord     `json:"from"`
	To        domain.Coord     `json:"to"`
	Direction domain.Direction `json:"direction"`
}

// Steps flattens a solution into ordered per-segment records, path by path.
func Steps(sol *domain.Solution) []Step {
	var out []Step
	for _, p := range sol.Paths {
		for i := 1; i < len(p.Cells); i++ {
			out = append(out, Step{
				Color:     p.Color,
				From:      p.Cells[i-1],
				To:        p.Cells[i],
				Direction: direction(p.Cells[i-1], p.Cells[i]),
			})
		}
	}
	return out
}

// Trace renders one line per color listing its coordinates in visit order.
func Trace(sol *domain.Solution) string {
	var b strings.Builder
	for _, p := range sol.Paths {
		b.WriteString(p.Color.String())
		b.WriteString(":")
		for _, c := range p.Cells {
			fmt.Fprintf(&b, " (%d,%d)", c.Row, c.Col)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Moves renders the solution as per-color move listings: a color header
// followed by one direction per line.
func Moves(sol *domain.Solution) string {
	var b strings.Builder
	for _, p := range sol.Paths {
		fmt.Fprintf(&b, "%s:\n", p.Color)
		for i := 1; i < len(p.Cells); i++ {
			from := p.Cells[i-1]
			fmt.Fprintf(&b, "  %s %d %d\n", direction(from, p.Cells[i]), from.Row, from.Col)
		}
	}
	return b.String()
}

func direction(from, to domain.Coord) domain.Direction {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	for _, d := range domain.Directions(domain.Conn8) {
		r, c := d.Offset()
		if r == dr && c == dc {
			return d
		}
	}
	// Non-adjacent pairs never appear in accepted solutions.
	return domain.Right
}
