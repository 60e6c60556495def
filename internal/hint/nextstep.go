package hint

import (
	"context"
	"errors"
	"fmt"

	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/ports"
)

// NextStep implements a Hinter that reveals the opening of a found solution:
// either the first step of the first path, or the whole first path.
type NextStep struct {
	Solver ports.Solver
}

func NewNextStep(s ports.Solver) *NextStep { return &NextStep{Solver: s} }

// Hint solves the board and reports an opening capped by max. An unsolvable
// board yields no hint rather than an error.
func (h *NextStep) Hint(ctx context.Context, g *domain.Grid, max domain.HintScope) (domain.Hint, bool, error) {
	sol, _, err := h.Solver.Solve(ctx, g)
	if errors.Is(err, domain.ErrUnsolvable) {
		return domain.Hint{}, false, nil
	}
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(sol.Paths) == 0 || len(sol.Paths[0].Cells) < 2 {
		return domain.Hint{}, false, nil
	}
	p := sol.Paths[0]
	if max >= domain.ScopePath {
		last := p.Cells[len(p.Cells)-1]
		return domain.Hint{
			Message: fmt.Sprintf("Route %s from (%d,%d) to (%d,%d)",
				p.Color, p.Cells[0].Row, p.Cells[0].Col, last.Row, last.Col),
			Color: p.Color,
			Cells: append([]domain.Coord(nil), p.Cells...),
			Scope: domain.ScopePath,
		}, true, nil
	}
	return domain.Hint{
		Message: fmt.Sprintf("Start %s at (%d,%d) toward (%d,%d)",
			p.Color, p.Cells[0].Row, p.Cells[0].Col, p.Cells[1].Row, p.Cells[1].Col),
		Color: p.Color,
		Cells: []domain.Coord{p.Cells[0], p.Cells[1]},
		Scope: domain.ScopeStep,
	}, true, nil
}
