package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// State is the phase of the state machine. GameOver and Won are terminal:
// ticks are ignored until Reset.
type State int

const (
	Running State = iota
	GameOver
	Won
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case GameOver:
		return "GAME_OVER"
	case Won:
		return "WON"
	default:
		return "UNKNOWN"
	}
}

// CollisionType records what ended a run.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "WALL_HIT"
	case SelfCollision:
		return "SNAKE_HIT"
	default:
		return "NONE"
	}
}

// Game owns the snake, the food and the score, and advances them one tick
// at a time. It never touches the window or the clock; the loop driver calls
// Tick at whatever rate it wants and renders the returned snapshots.
type Game struct {
	ID    string
	Cfg   Config
	Grid  Grid
	Stats *SessionStats

	snake      *Snake
	food       Cell
	hasFood    bool
	dir        Direction
	pending    Direction
	hasPending bool
	score      int
	steps      int
	state      State
	collision  CollisionType
	startTime  time.Time
	rng        *rand.Rand
}

// New validates cfg and starts a session in the Running state. A nil rng
// falls back to a time-seeded source; tests pass a seeded one.
func New(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	g := &Game{
		ID:    uuid.New().String(),
		Cfg:   cfg,
		Grid:  Grid{Width: cfg.Width, Height: cfg.Height},
		Stats: NewSessionStats(),
		rng:   rng,
	}
	g.start()
	slog.Info("game created", "id", g.ID, "width", cfg.Width, "height", cfg.Height, "startLength", cfg.StartLength)
	return g, nil
}

// start places a fresh snake and food. Shared by New and Reset.
func (g *Game) start() {
	head := Cell{X: g.Grid.Width / 2, Y: g.Grid.Height / 2}
	g.snake = NewSnake(head, Right, g.Cfg.StartLength)
	g.dir = Right
	g.hasPending = false
	g.score = 0
	g.steps = 0
	g.state = Running
	g.collision = NoCollision
	g.startTime = time.Now()
	g.spawnFood()
}

// SetPendingDirection records the direction to apply at the next tick.
// It overwrites unconditionally; reversal is rejected at tick resolution,
// so the most recent keypress before a tick always wins.
func (g *Game) SetPendingDirection(d Direction) {
	g.pending = d
	g.hasPending = true
}

// Tick advances the simulation by one step. It does nothing unless the
// game is Running; boundary hits, self hits and a full board all resolve
// as state transitions, never as errors.
func (g *Game) Tick() {
	if g.state != Running {
		return
	}

	if g.hasPending {
		if g.pending != g.dir.Opposite() {
			g.dir = g.pending
		}
		g.hasPending = false
	}

	newHead := g.snake.NextHead(g.dir)
	g.steps++

	if !g.Grid.InBounds(newHead) {
		g.end(GameOver, WallCollision)
		return
	}

	eating := g.hasFood && newHead == g.food
	// Without growth the tail vacates this tick, so moving into the
	// current tail cell is legal.
	if g.snake.hitsBody(newHead, !eating) {
		g.end(GameOver, SelfCollision)
		return
	}

	if eating {
		g.snake.Grow(newHead)
		g.score += g.Cfg.FoodReward
		slog.Info("snake ate the food", "cell", newHead, "score", g.score, "length", g.snake.Len())
		g.spawnFood()
		return
	}

	g.snake.Advance(newHead)
	slog.Debug("snake moved", "head", newHead, "direction", g.dir)
}

func (g *Game) spawnFood() {
	cell, err := g.Grid.RandomFreeCell(g.rng, g.snake.Cells())
	if err != nil {
		// Board full: nothing left to eat, the snake has won.
		g.hasFood = false
		g.end(Won, NoCollision)
		return
	}
	g.food = cell
	g.hasFood = true
	slog.Debug("food spawned", "cell", cell)
}

func (g *Game) end(state State, collision CollisionType) {
	g.state = state
	g.collision = collision
	g.Stats.Record(g.score, time.Since(g.startTime))
	slog.Info("game ended",
		"id", g.ID,
		"state", state,
		"collision", collision,
		"score", g.score,
		"length", g.snake.Len(),
		"steps", g.steps)
}

// Reset discards the finished run and starts a new one on the same grid.
// Session stats carry over.
func (g *Game) Reset() {
	g.start()
	slog.Info("game reset", "id", g.ID, "gamesPlayed", g.Stats.GamesPlayed())
}

func (g *Game) State() State         { return g.state }
func (g *Game) Score() int           { return g.score }
func (g *Game) Direction() Direction { return g.dir }
func (g *Game) SnakeCells() []Cell   { return g.snake.Cells() }

// Snapshot returns the read-only view the renderer consumes. Nothing in
// it aliases game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:      g.snake.Cells(),
		Direction: g.dir,
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.score,
		Steps:     g.steps,
		State:     g.state,
		Collision: g.collision,
	}
}
