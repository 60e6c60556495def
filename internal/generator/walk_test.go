package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/lyne/internal/board"
	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/solver"
	"svw.info/lyne/internal/validator"
)

func TestGenerateSolvableBoards(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	gen := NewWalkGenerator(s)

	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		t.Run(d.String(), func(t *testing.T) {
			p, st, err := gen.Generate(context.Background(), 42, d)
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.Equal(t, d, p.Difficulty)
			assert.Equal(t, int64(42), p.Seed)
			assert.Positive(t, st.Nodes)

			h, w, colors := shape(d)
			assert.Len(t, p.Rows, h)
			assert.Len(t, p.Rows[0], w)

			g, err := board.Parse(p.Rows)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(g.Colors()), colors)

			sol, _, err := s.Solve(context.Background(), g)
			require.NoError(t, err)
			ok, conflicts, err := validator.New().Validate(context.Background(), g, sol)
			require.NoError(t, err)
			assert.True(t, ok, "conflicts: %v", conflicts)
		})
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	gen := NewWalkGenerator(solver.NewBacktrackingSolver())
	a, _, err := gen.Generate(context.Background(), 7, domain.Medium)
	require.NoError(t, err)
	b, _, err := gen.Generate(context.Background(), 7, domain.Medium)
	require.NoError(t, err)
	assert.Equal(t, a.Rows, b.Rows)

	c, _, err := gen.Generate(context.Background(), 8, domain.Medium)
	require.NoError(t, err)
	assert.NotEqual(t, a.Rows, c.Rows)
}

func TestGenerateContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gen := NewWalkGenerator(solver.NewBacktrackingSolver())
	_, _, err := gen.Generate(ctx, 1, domain.Easy)
	assert.ErrorIs(t, err, context.Canceled)
}
