package game

import "fmt"

// Cell is a single square on the grid, addressed by column and row.
// X grows to the right, Y grows downward.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the cell one square away in the given direction.
func (c Cell) Step(d Direction) Cell {
	v := d.Vector()
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}
