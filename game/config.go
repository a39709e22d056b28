package game

import (
	"fmt"
	"time"
)

// Defaults match the original 40x40 board with a two-segment snake.
const (
	DefaultWidth        = 40
	DefaultHeight       = 40
	DefaultStartLength  = 2
	DefaultFoodReward   = 1
	DefaultTickInterval = 120 * time.Millisecond
)

// Config holds the tunables of a session. Zero values are invalid; start
// from DefaultConfig and override.
type Config struct {
	Width        int           // grid columns
	Height       int           // grid rows
	StartLength  int           // initial snake length
	FoodReward   int           // score added per food eaten
	TickInterval time.Duration // wall-clock time between ticks, used by the loop driver
}

func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		StartLength:  DefaultStartLength,
		FoodReward:   DefaultFoodReward,
		TickInterval: DefaultTickInterval,
	}
}

// Validate rejects configurations the game cannot start from. This is the
// only error the core reports upward; everything during play resolves as
// a state transition.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("start length must be at least 1, got %d", c.StartLength)
	}
	if c.StartLength > c.Width/2+1 {
		return fmt.Errorf("start length %d does not fit a %d-wide grid", c.StartLength, c.Width)
	}
	if c.FoodReward < 1 {
		return fmt.Errorf("food reward must be positive, got %d", c.FoodReward)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	return nil
}
