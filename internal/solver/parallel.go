package solver

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/ports"
)

// ParallelSolver fans the first color's legal opening moves out to workers.
// Every branch owns an independent clone of the search state, so no search
// state is shared; the first branch to find a solution cancels the rest.
// Branch scheduling makes the returned solution depend on timing — use the
// sequential engine when reproducibility matters.
type ParallelSolver struct {
	Workers  int
	Conn     domain.Connectivity
	MaxNodes int // per-branch budget, zero means unbounded
	Log      logrus.FieldLogger
}

func NewParallelSolver(workers int) *ParallelSolver {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ParallelSolver{Workers: workers, Conn: domain.Conn4, Log: logrus.StandardLogger()}
}

func (s *ParallelSolver) logger() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	return logrus.StandardLogger()
}

func (s *ParallelSolver) sequential() *BacktrackingSolver {
	return &BacktrackingSolver{Conn: s.Conn, MaxNodes: s.MaxNodes, Log: s.Log}
}

// errSolved cancels the remaining branches once one of them succeeded.
var errSolved = errors.New("solver: branch solved")

func (s *ParallelSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Solution, ports.Stats, error) {
	if len(g.Colors()) == 0 || s.Workers == 1 {
		return s.sequential().Solve(ctx, g)
	}
	start := time.Now()
	base := newState(g, s.Conn, s.MaxNodes, s.logger(), nil)
	pair, _ := g.Endpoints(base.colors[0])
	first, target := pair[0], pair[1]
	base.begin(0, first)

	type branch struct {
		d    domain.Direction
		next domain.Coord
	}
	var branches []branch
	for _, d := range base.dirs {
		if next := first.Step(d); base.legal(0, first, d, next, target) {
			branches = append(branches, branch{d: d, next: next})
		}
	}
	s.logger().WithField("branches", len(branches)).Debug("parallel fan-out")

	var (
		mu        sync.Mutex
		sol       *domain.Solution
		nodes     int64
		budgetHit atomic.Bool
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.Workers)
	for _, b := range branches {
		b := b
		eg.Go(func() error {
			st := base.clone()
			st.apply(0, first, b.d, b.next)
			ok := false
			if b.next == target {
				ok = !st.strandedClosed(first, target) && st.solveColor(gctx, 1)
			} else if !st.stranded(first, b.next) {
				ok = st.extend(gctx, 0, b.next, target)
			}
			atomic.AddInt64(&nodes, int64(st.nodes))
			if ok {
				mu.Lock()
				if sol == nil {
					sol = st.solution()
				}
				mu.Unlock()
				return errSolved
			}
			if errors.Is(st.stopErr, domain.ErrBudgetExhausted) {
				budgetHit.Store(true)
			}
			return nil
		})
	}
	err := eg.Wait()
	stats := ports.Stats{Nodes: int(atomic.LoadInt64(&nodes)), Duration: time.Since(start)}
	if sol != nil {
		return sol, stats, nil
	}
	if err != nil && !errors.Is(err, errSolved) {
		return nil, stats, err
	}
	if ctx.Err() != nil {
		return nil, stats, ctx.Err()
	}
	if budgetHit.Load() {
		return nil, stats, domain.ErrBudgetExhausted
	}
	return nil, stats, domain.ErrUnsolvable
}

// Unique is inherently exhaustive, so it always runs sequentially.
func (s *ParallelSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	return s.sequential().Unique(ctx, g)
}
