// Package board converts between the textual board form and domain.Grid.
//
// Each character denotes one cell: a lowercase letter is a plain color node,
// an uppercase letter a color endpoint, a digit 1-9 a numbered node with that
// many total visits, and '.' a blank. Rows must all have the same length.
package board

import (
	"fmt"
	"strings"

	"svw.info/lyne/internal/domain"
)

// Parse builds a validated Grid from board rows.
func Parse(rows []string) (*domain.Grid, error) {
	cells := make([][]domain.Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]domain.Cell, 0, len(row))
		for c := 0; c < len(row); c++ {
			cell, err := parseSymbol(row[c])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v",
					domain.ErrMalformedBoard, r, c, err)
			}
			cells[r] = append(cells[r], cell)
		}
	}
	return domain.NewGrid(cells)
}

// ParseText splits a whole board description on line breaks and parses it.
// A trailing newline is tolerated; interior empty lines are not.
func ParseText(text string) (*domain.Grid, error) {
	text = strings.TrimRight(text, "\r\n")
	rows := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return Parse(rows)
}

func parseSymbol(ch byte) (domain.Cell, error) {
	if ch == '.' {
		return domain.Cell{Kind: domain.KindBlank}, nil
	}
	if ch >= '1' && ch <= '9' {
		return domain.Cell{Kind: domain.KindNumbered, Visits: ch - '0'}, nil
	}
	for _, col := range domain.AllColors() {
		switch ch {
		case col.Node():
			return domain.Cell{Kind: domain.KindNode, Color: col}, nil
		case col.Endpoint():
			return domain.Cell{Kind: domain.KindEndpoint, Color: col}, nil
		}
	}
	return domain.Cell{}, fmt.Errorf("unknown symbol %q", ch)
}

// Rows renders a grid back into its textual row form.
func Rows(g *domain.Grid) []string {
	rows := make([]string, g.Height())
	var b strings.Builder
	for r := 0; r < g.Height(); r++ {
		b.Reset()
		for c := 0; c < g.Width(); c++ {
			b.WriteByte(symbol(g.At(domain.Coord{Row: r, Col: c})))
		}
		rows[r] = b.String()
	}
	return rows
}

func symbol(cell domain.Cell) byte {
	switch cell.Kind {
	case domain.KindEndpoint:
		return cell.Color.Endpoint()
	case domain.KindNode:
		return cell.Color.Node()
	case domain.KindNumbered:
		return '0' + cell.Visits
	}
	return '.'
}
