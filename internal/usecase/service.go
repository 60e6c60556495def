package usecase

import (
	"context"
	"errors"

	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve routes the board and re-confirms the accepted assignment with the
// coverage validator before handing it out.
func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	sol, st, err := u.Solver.Solve(ctx, g)
	if err != nil {
		return nil, st, err
	}
	if u.Validator != nil {
		if ok, _, verr := u.Validator.Validate(ctx, g, sol); verr == nil && !ok {
			return nil, st, domain.ErrUnsolvable
		}
	}
	return sol, st, nil
}

// SolveLive is Solve with progress reporting, for solvers that support it.
func (u *Service) SolveLive(ctx context.Context, g *domain.Grid, fn ports.ProgressFunc) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if ps, ok := u.Solver.(ports.ProgressSolver); ok {
		return ps.SolveProgress(ctx, g, fn)
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid, sol *domain.Solution) (bool, []domain.Coord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g, sol)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid, max domain.HintScope) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, max)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
