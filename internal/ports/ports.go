package ports

import (
	"context"
	"time"

	"svw.info/lyne/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver routes all color paths over a board and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Solution, Stats, error)
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// ProgressFunc receives the running explored-node count during a search.
type ProgressFunc func(nodes int)

// ProgressSolver is implemented by solvers that can report progress
// periodically while searching; used for live streaming to clients.
type ProgressSolver interface {
	SolveProgress(ctx context.Context, g *domain.Grid, fn ProgressFunc) (*domain.Solution, Stats, error)
}

// Generator creates new solvable puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator confirms a finished solution covers the board exactly.
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid, sol *domain.Solution) (ok bool, conflicts []domain.Coord, err error)
}

// Hinter suggests an opening up to the given scope.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid, max domain.HintScope) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
