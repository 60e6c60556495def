package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/lyne/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:         "abc-123",
		Seed:       42,
		Difficulty: domain.Hard,
		Rows:       []string{"RrR"},
		CreatedAt:  1700000000,
		Name:       "first",
	}
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "abc-123")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSaveFilesGroupedByDifficulty(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	require.NoError(t, s.Save(context.Background(), &domain.Puzzle{
		ID: "x", Difficulty: domain.Easy, Rows: []string{"RR"},
	}))
	_, err := os.Stat(filepath.Join(dir, "easy", "x.json"))
	assert.NoError(t, err)
}

func TestSaveRejectsIncompletePuzzles(t *testing.T) {
	s := NewFS(t.TempDir())
	assert.Error(t, s.Save(context.Background(), nil))
	assert.Error(t, s.Save(context.Background(), &domain.Puzzle{Rows: []string{"RR"}}))
	assert.Error(t, s.Save(context.Background(), &domain.Puzzle{ID: "x"}))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, &domain.Puzzle{
		ID: "a", Difficulty: domain.Easy, Rows: []string{"RR"}, Name: "one",
	}))
	require.NoError(t, s.Save(ctx, &domain.Puzzle{
		ID: "b", Difficulty: domain.Expert, Rows: []string{"RrR"}, Name: "two",
	}))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "a", metas[0].ID)
	assert.Equal(t, domain.Easy, metas[0].Difficulty)
	assert.Equal(t, "b", metas[1].ID)
	assert.Equal(t, domain.Expert, metas[1].Difficulty)
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
