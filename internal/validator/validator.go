package validator

import (
	"context"

	"svw.info/lyne/internal/domain"
)

// CoverageValidator confirms a finished assignment: every cell's visit
// capacity consumed exactly, every path pinned to its color's endpoint pair,
// consecutive path cells adjacent, and no cell used by a foreign color. The
// search engine enforces most of this incrementally; this is the cheap final
// confirmation plus a diagnostic conflict list for callers.
type CoverageValidator struct{}

func New() *CoverageValidator { return &CoverageValidator{} }

func (v *CoverageValidator) Validate(ctx context.Context, g *domain.Grid, sol *domain.Solution) (bool, []domain.Coord, error) {
	conf := make([]domain.Coord, 0, 8)
	entries := make([]int, g.Width()*g.Height())
	pathsSeen := make(map[domain.Color]int)

	for _, p := range sol.Paths {
		pathsSeen[p.Color]++
		pair, present := g.Endpoints(p.Color)
		if !present || len(p.Cells) == 0 {
			if len(p.Cells) > 0 {
				conf = append(conf, p.Cells[0])
			} else if present {
				conf = append(conf, pair[0])
			}
			continue
		}
		first, last := p.Cells[0], p.Cells[len(p.Cells)-1]
		if !(first == pair[0] && last == pair[1]) && !(first == pair[1] && last == pair[0]) {
			conf = append(conf, first, last)
		}
		for i, c := range p.Cells {
			if !g.InBounds(c) {
				conf = append(conf, c)
				continue
			}
			if i > 0 && !p.Cells[i-1].Adjacent(c) {
				conf = append(conf, c)
			}
			cell := g.At(c)
			switch cell.Kind {
			case domain.KindBlank:
				conf = append(conf, c)
			case domain.KindEndpoint:
				if cell.Color != p.Color || (i != 0 && i != len(p.Cells)-1) {
					conf = append(conf, c)
				}
			case domain.KindNode:
				if cell.Color != p.Color {
					conf = append(conf, c)
				}
			}
			entries[g.Index(c)]++
		}
	}

	// Exactly one path per present color.
	for _, c := range g.Colors() {
		if pathsSeen[c] != 1 {
			pair, _ := g.Endpoints(c)
			conf = append(conf, pair[0])
		}
	}

	// Residual capacity must be zero everywhere, with no overdraft.
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := domain.Coord{Row: r, Col: c}
			if entries[g.Index(p)] != int(g.At(p).Capacity()) {
				conf = append(conf, p)
			}
		}
	}
	return len(conf) == 0, conf, nil
}
