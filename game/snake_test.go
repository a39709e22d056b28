package game

import (
	"testing"
	"time"
)

func TestNewSnakeLaysBodyBehindHead(t *testing.T) {
	cases := []struct {
		name   string
		dir    Direction
		length int
		want   []Cell
	}{
		{"length 1", Right, 1, []Cell{{5, 5}}},
		{"moving right", Right, 3, []Cell{{5, 5}, {4, 5}, {3, 5}}},
		{"moving down", Down, 2, []Cell{{5, 5}, {5, 4}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(Cell{5, 5}, tc.dir, tc.length)
			got := s.Cells()
			if len(got) != len(tc.want) {
				t.Fatalf("body = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("body = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestAdvanceTranslatesByOneCell(t *testing.T) {
	s := NewSnake(Cell{5, 5}, Right, 3)

	s.Advance(s.NextHead(Right))

	if s.Head() != (Cell{6, 5}) {
		t.Fatalf("head = %v, want (6,5)", s.Head())
	}
	if s.Tail() != (Cell{4, 5}) {
		t.Fatalf("tail = %v, want (4,5)", s.Tail())
	}
	if s.Len() != 3 {
		t.Fatalf("length = %d, want 3", s.Len())
	}
}

func TestGrowKeepsTail(t *testing.T) {
	s := NewSnake(Cell{5, 5}, Right, 2)

	s.Grow(s.NextHead(Right))

	if s.Len() != 3 {
		t.Fatalf("length = %d, want 3", s.Len())
	}
	if s.Tail() != (Cell{4, 5}) {
		t.Fatalf("tail = %v, want (4,5)", s.Tail())
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(Cell{5, 5}, Right, 2)

	if !s.Occupies(Cell{5, 5}) || !s.Occupies(Cell{4, 5}) {
		t.Fatalf("snake %v does not report its own cells", s.Cells())
	}
	if s.Occupies(Cell{6, 5}) {
		t.Fatal("snake reports a cell it does not occupy")
	}
}

func TestHitsBodyTailExclusion(t *testing.T) {
	// Closed loop: the head's neighbor on one side is the tail.
	s := &Snake{body: []Cell{{2, 2}, {3, 2}, {3, 3}, {2, 3}}}

	if s.hitsBody(Cell{2, 3}, true) {
		t.Fatal("vacating tail counted as a collision")
	}
	if !s.hitsBody(Cell{2, 3}, false) {
		t.Fatal("kept tail not counted as a collision")
	}
	if !s.hitsBody(Cell{3, 2}, true) {
		t.Fatal("mid-body cell not counted as a collision")
	}
}

func TestCellsReturnsACopy(t *testing.T) {
	s := NewSnake(Cell{5, 5}, Right, 2)

	cells := s.Cells()
	cells[0] = Cell{0, 0}

	if s.Head() != (Cell{5, 5}) {
		t.Fatalf("mutating Cells() result changed the snake: head %v", s.Head())
	}
}

func TestDirectionOppositeAndVector(t *testing.T) {
	cases := []struct {
		dir      Direction
		opposite Direction
		vector   Cell
	}{
		{Up, Down, Cell{0, -1}},
		{Down, Up, Cell{0, 1}},
		{Left, Right, Cell{-1, 0}},
		{Right, Left, Cell{1, 0}},
	}

	for _, tc := range cases {
		if got := tc.dir.Opposite(); got != tc.opposite {
			t.Errorf("%v.Opposite() = %v, want %v", tc.dir, got, tc.opposite)
		}
		if got := tc.dir.Vector(); got != tc.vector {
			t.Errorf("%v.Vector() = %v, want %v", tc.dir, got, tc.vector)
		}
	}
}

func TestSessionStatsWindow(t *testing.T) {
	s := NewSessionStats()

	for i := 1; i <= scoreWindow+10; i++ {
		s.Record(i, time.Second)
	}

	if s.GamesPlayed() != scoreWindow+10 {
		t.Fatalf("games = %d, want %d", s.GamesPlayed(), scoreWindow+10)
	}
	if s.SessionHigh() != scoreWindow+10 {
		t.Fatalf("high = %d, want %d", s.SessionHigh(), scoreWindow+10)
	}
	if got := len(s.RecentScores()); got != scoreWindow {
		t.Fatalf("window length = %d, want %d", got, scoreWindow)
	}
	// Window holds the last scoreWindow values: 11..scoreWindow+10.
	want := float64(11+scoreWindow+10) / 2
	if got := s.AverageScore(); got != want {
		t.Fatalf("average = %v, want %v", got, want)
	}
	if s.AverageDuration() != time.Second {
		t.Fatalf("average duration = %v, want 1s", s.AverageDuration())
	}
}
