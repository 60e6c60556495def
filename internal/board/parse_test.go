package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/lyne/internal/domain"
)

func TestParseTypedCells(t *testing.T) {
	g, err := Parse([]string{
		"R2B",
		"2Gr",
		"gbR",
		".GB",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 13, g.TotalCapacity())
	assert.Equal(t, []domain.Color{domain.Red, domain.Green, domain.Blue}, g.Colors())

	at := func(r, c int) domain.Cell { return g.At(domain.Coord{Row: r, Col: c}) }
	assert.Equal(t, domain.Cell{Kind: domain.KindEndpoint, Color: domain.Red}, at(0, 0))
	assert.Equal(t, domain.Cell{Kind: domain.KindNumbered, Visits: 2}, at(0, 1))
	assert.Equal(t, domain.Cell{Kind: domain.KindNode, Color: domain.Red}, at(1, 2))
	assert.Equal(t, domain.Cell{Kind: domain.KindBlank}, at(3, 0))
	assert.Equal(t, uint8(0), at(3, 0).Capacity())
	assert.Equal(t, uint8(2), at(0, 1).Capacity())

	pair, ok := g.Endpoints(domain.Red)
	require.True(t, ok)
	assert.Equal(t, [2]domain.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 2}}, pair)
	_, ok = g.Endpoints(domain.Yellow)
	assert.False(t, ok)

	assert.Equal(t, 1, g.NodeCount(domain.Red))
	assert.Equal(t, 1, g.NodeCount(domain.Green))
	assert.Equal(t, 1, g.NodeCount(domain.Blue))
}

func TestParseRoundTrip(t *testing.T) {
	rows := []string{"R2B", "2Gr", "gbR", ".GB"}
	g, err := Parse(rows)
	require.NoError(t, err)
	assert.Equal(t, rows, Rows(g))
}

func TestParseTextToleratesTrailingNewline(t *testing.T) {
	g, err := ParseText("RrR\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"RrR"}, Rows(g))

	g, err = ParseText("Rr\r\nrR\r\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"empty board", nil},
		{"empty row", []string{""}},
		{"ragged rows", []string{"RR", "R"}},
		{"unknown symbol", []string{"RxR"}},
		{"zero digit", []string{"R0R"}},
		{"three endpoints", []string{"RR", "R."}},
		{"single endpoint", []string{"R."}},
		{"node without endpoints", []string{"r.", ".."}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.rows)
			require.ErrorIs(t, err, domain.ErrMalformedBoard)
		})
	}
}
