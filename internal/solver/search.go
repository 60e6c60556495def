package solver

import (
	"context"
	"time"

	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/ports"
)

// Solve routes every color present on the board. It returns the first
// solution found, ErrUnsolvable after exhausting the search space, or the
// budget/context error that interrupted the search. Dead ends during the
// search are ordinary backtracking, never errors.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Solution, ports.Stats, error) {
	return s.solve(ctx, g, nil)
}

// SolveProgress is Solve with a periodic explored-node callback.
func (s *BacktrackingSolver) SolveProgress(ctx context.Context, g *domain.Grid, fn ports.ProgressFunc) (*domain.Solution, ports.Stats, error) {
	return s.solve(ctx, g, fn)
}

func (s *BacktrackingSolver) solve(ctx context.Context, g *domain.Grid, fn ports.ProgressFunc) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	st := newState(g, s.Conn, s.MaxNodes, s.logger(), fn)
	ok := st.solveColor(ctx, 0)
	stats := ports.Stats{Nodes: st.nodes, Duration: time.Since(start)}
	if !ok {
		if st.stopErr != nil {
			return nil, stats, st.stopErr
		}
		return nil, stats, domain.ErrUnsolvable
	}
	return st.solution(), stats, nil
}

// solveColor routes the color at index ci from its first endpoint to its
// second, then recurses into the next color. The base case accepts only a
// fully consumed ledger.
func (st *searchState) solveColor(ctx context.Context, ci int) bool {
	if ci == len(st.colors) {
		return st.totalLeft == 0
	}
	pair, _ := st.grid.Endpoints(st.colors[ci])
	start, target := pair[0], pair[1]
	st.log.WithField("color", st.colors[ci]).Debug("routing color")
	st.begin(ci, start)
	if st.extend(ctx, ci, start, target) {
		return true
	}
	st.abandon(ci, start)
	st.log.WithField("color", st.colors[ci]).Debug("color exhausted, backtracking")
	return false
}

// extend tries every legal step from head, recursing depth-first and undoing
// on failure. Entering the target endpoint closes the path and hands the
// search to the next color.
func (st *searchState) extend(ctx context.Context, ci int, head, target domain.Coord) bool {
	if st.stopErr != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		st.stopErr = err
		return false
	}
	if st.maxNodes > 0 && st.nodes >= st.maxNodes {
		st.stopErr = domain.ErrBudgetExhausted
		return false
	}
	for _, d := range st.dirs {
		next := head.Step(d)
		if !st.legal(ci, head, d, next, target) {
			continue
		}
		st.apply(ci, head, d, next)
		if next == target {
			if !st.strandedClosed(head, target) && st.solveColor(ctx, ci+1) {
				return true
			}
		} else if !st.stranded(head, next) {
			if st.extend(ctx, ci, next, target) {
				return true
			}
		}
		st.undo(ci, head, d, next)
		if st.stopErr != nil {
			return false
		}
	}
	return false
}
