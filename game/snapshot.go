package game

// Snapshot is the per-tick view handed to the renderer. It is a plain
// copy: the renderer can hold it across frames without seeing later
// mutations, and it carries everything needed to draw a frame.
type Snapshot struct {
	Body      []Cell // head first
	Direction Direction
	Food      Cell
	HasFood   bool
	Score     int
	Steps     int
	State     State
	Collision CollisionType
}

// Finished reports whether the run reached a terminal state.
func (s Snapshot) Finished() bool {
	return s.State != Running
}
