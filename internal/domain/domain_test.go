package domain

import "testing"

func TestDirectionOffsetsRoundTrip(t *testing.T) {
	for _, d := range Directions(Conn8) {
		dr, dc := d.Offset()
		if dr == 0 && dc == 0 {
			t.Fatalf("direction %s has no offset", d)
		}
		p := Coord{Row: 5, Col: 5}
		q := p.Step(d)
		if !p.Adjacent(q) {
			t.Errorf("step %s from %v landed on non-adjacent %v", d, p, q)
		}
	}
	if got := len(Directions(Conn4)); got != 4 {
		t.Errorf("Conn4 direction count = %d, want 4", got)
	}
	for _, d := range Directions(Conn4) {
		if d.Diagonal() {
			t.Errorf("Conn4 contains diagonal direction %s", d)
		}
	}
}

func TestAdjacent(t *testing.T) {
	p := Coord{Row: 2, Col: 2}
	if p.Adjacent(p) {
		t.Error("a cell must not be adjacent to itself")
	}
	if !p.Adjacent(Coord{Row: 1, Col: 1}) {
		t.Error("diagonal neighbor should be adjacent")
	}
	if p.Adjacent(Coord{Row: 2, Col: 4}) {
		t.Error("cells two apart should not be adjacent")
	}
}

func TestCellCapacity(t *testing.T) {
	cases := []struct {
		cell Cell
		want uint8
	}{
		{Cell{Kind: KindBlank}, 0},
		{Cell{Kind: KindEndpoint, Color: Red}, 1},
		{Cell{Kind: KindNode, Color: Blue}, 1},
		{Cell{Kind: KindNumbered, Visits: 3}, 3},
	}
	for _, tc := range cases {
		if got := tc.cell.Capacity(); got != tc.want {
			t.Errorf("capacity of %v = %d, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestColorSymbols(t *testing.T) {
	for _, c := range AllColors() {
		if c.Node() == c.Endpoint() {
			t.Errorf("color %s: node and endpoint symbols collide", c)
		}
	}
	if Red.Node() != 'r' || Red.Endpoint() != 'R' {
		t.Error("red symbols changed")
	}
}
