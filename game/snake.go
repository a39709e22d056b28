package game

// Snake is the ordered body of the player snake. The head is at index 0,
// the tail at the last index. Consecutive cells are always grid-adjacent.
type Snake struct {
	body []Cell
}

// NewSnake builds a snake of the given length with its head at head,
// the body extending one cell per segment opposite the travel direction.
func NewSnake(head Cell, dir Direction, length int) *Snake {
	back := dir.Opposite()
	body := make([]Cell, length)
	c := head
	for i := 0; i < length; i++ {
		body[i] = c
		c = c.Step(back)
	}
	return &Snake{body: body}
}

func (s *Snake) Head() Cell {
	return s.body[0]
}

func (s *Snake) Tail() Cell {
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// NextHead returns the cell the head would move into. The move is only
// proposed here; the game commits it after collision checks.
func (s *Snake) NextHead(d Direction) Cell {
	return s.Head().Step(d)
}

// Advance commits a move without growth: the new head is prepended and
// the tail removed, translating the snake by one cell.
func (s *Snake) Advance(newHead Cell) {
	s.body = append([]Cell{newHead}, s.body[:len(s.body)-1]...)
}

// Grow commits a move with growth: the new head is prepended and the
// tail kept, so the length increases by one.
func (s *Snake) Grow(newHead Cell) {
	s.body = append([]Cell{newHead}, s.body...)
}

func (s *Snake) Occupies(c Cell) bool {
	for _, p := range s.body {
		if p == c {
			return true
		}
	}
	return false
}

// hitsBody reports whether c collides with the body. When the tail will
// vacate this tick (no growth), the tail cell does not count as a hit.
func (s *Snake) hitsBody(c Cell, tailVacates bool) bool {
	last := len(s.body)
	if tailVacates {
		last--
	}
	for _, p := range s.body[:last] {
		if p == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}
