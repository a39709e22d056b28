package game

import (
	"errors"

	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned by RandomFreeCell when every cell of the grid
// is occupied.
var ErrNoFreeCell = errors.New("no free cell on the grid")

// Grid is the fixed-size playing field. Dimensions do not change during
// a session.
type Grid struct {
	Width  int
	Height int
}

func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// RandomFreeCell picks a cell uniformly from all cells not listed in
// occupied. Occupied cells outside the grid are ignored.
func (g Grid) RandomFreeCell(rng *rand.Rand, occupied []Cell) (Cell, error) {
	taken := make(map[Cell]bool, len(occupied))
	for _, c := range occupied {
		if g.InBounds(c) {
			taken[c] = true
		}
	}

	free := make([]Cell, 0, g.Width*g.Height-len(taken))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if !taken[c] {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}
