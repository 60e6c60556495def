package solver

import (
	"context"
	"time"

	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
// The traversal order matches Solve, so the one solution it finds for a
// unique board is the one Solve returns.
func (s *BacktrackingSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	st := newState(g, s.Conn, s.MaxNodes, s.logger(), nil)
	count := 0

	// Both closures return true to stop the whole search early.
	var colorRec func(ci int) bool
	var extendRec func(ci int, head, target domain.Coord) bool

	colorRec = func(ci int) bool {
		if ci == len(st.colors) {
			if st.totalLeft == 0 {
				count++
			}
			return count >= 2
		}
		pair, _ := st.grid.Endpoints(st.colors[ci])
		st.begin(ci, pair[0])
		if extendRec(ci, pair[0], pair[1]) {
			return true
		}
		st.abandon(ci, pair[0])
		return false
	}

	extendRec = func(ci int, head, target domain.Coord) bool {
		if st.stopErr != nil {
			return true
		}
		if err := ctx.Err(); err != nil {
			st.stopErr = err
			return true
		}
		if st.maxNodes > 0 && st.nodes >= st.maxNodes {
			st.stopErr = domain.ErrBudgetExhausted
			return true
		}
		for _, d := range st.dirs {
			next := head.Step(d)
			if !st.legal(ci, head, d, next, target) {
				continue
			}
			st.apply(ci, head, d, next)
			stop := false
			if next == target {
				stop = !st.strandedClosed(head, target) && colorRec(ci+1)
			} else if !st.stranded(head, next) {
				stop = extendRec(ci, next, target)
			}
			if stop {
				return true
			}
			st.undo(ci, head, d, next)
		}
		return false
	}

	_ = colorRec(0)
	stats := ports.Stats{Nodes: st.nodes, Duration: time.Since(start)}
	if st.stopErr != nil {
		return false, stats, st.stopErr
	}
	return count == 1, stats, nil
}
