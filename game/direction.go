package game

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return "UNKNOWN"
	}
}

// Vector returns the unit step for this direction. Up decreases Y,
// Down increases Y.
func (d Direction) Vector() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Right:
		return Cell{X: 1, Y: 0}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the direction that reverses travel on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}
