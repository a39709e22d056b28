package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestInBounds(t *testing.T) {
	g := Grid{Width: 4, Height: 3}

	cases := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{3, 2}, true},
		{Cell{-1, 0}, false},
		{Cell{0, -1}, false},
		{Cell{4, 0}, false},
		{Cell{0, 3}, false},
	}

	for _, tc := range cases {
		if got := g.InBounds(tc.cell); got != tc.want {
			t.Errorf("InBounds(%v) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestRandomFreeCellAvoidsOccupied(t *testing.T) {
	g := Grid{Width: 4, Height: 4}
	rng := rand.New(rand.NewSource(3))
	occupied := []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}}

	taken := make(map[Cell]bool)
	for _, c := range occupied {
		taken[c] = true
	}

	for i := 0; i < 200; i++ {
		c, err := g.RandomFreeCell(rng, occupied)
		if err != nil {
			t.Fatal(err)
		}
		if taken[c] {
			t.Fatalf("picked occupied cell %v", c)
		}
		if !g.InBounds(c) {
			t.Fatalf("picked out-of-bounds cell %v", c)
		}
	}
}

func TestRandomFreeCellSingleFreeCell(t *testing.T) {
	g := Grid{Width: 2, Height: 2}
	rng := rand.New(rand.NewSource(3))
	occupied := []Cell{{0, 0}, {1, 0}, {0, 1}}

	c, err := g.RandomFreeCell(rng, occupied)
	if err != nil {
		t.Fatal(err)
	}
	if c != (Cell{1, 1}) {
		t.Fatalf("got %v, want the only free cell (1,1)", c)
	}
}

func TestRandomFreeCellFullGrid(t *testing.T) {
	g := Grid{Width: 2, Height: 2}
	rng := rand.New(rand.NewSource(3))
	occupied := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	if _, err := g.RandomFreeCell(rng, occupied); err != ErrNoFreeCell {
		t.Fatalf("err = %v, want ErrNoFreeCell", err)
	}
}

func TestRandomFreeCellIgnoresOutOfGridOccupied(t *testing.T) {
	g := Grid{Width: 1, Height: 1}
	rng := rand.New(rand.NewSource(3))

	// Occupied cells outside the grid must not mask the real free cell.
	c, err := g.RandomFreeCell(rng, []Cell{{-1, 0}, {5, 5}})
	if err != nil {
		t.Fatal(err)
	}
	if c != (Cell{0, 0}) {
		t.Fatalf("got %v, want (0,0)", c)
	}
}
