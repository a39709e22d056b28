package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"snake-game/game"
	"snake-game/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	speed := flag.Int("speed", int(game.DefaultTickInterval/time.Millisecond), "milliseconds per tick (lower = faster)")
	width := flag.Int("width", game.DefaultWidth, "grid width in cells")
	height := flag.Int("height", game.DefaultHeight, "grid height in cells")
	seed := flag.Uint64("seed", 0, "food spawn seed, 0 = time-based")
	debug := flag.Bool("debug", false, "enable per-tick debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := game.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.TickInterval = time.Duration(*speed) * time.Millisecond

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	g, err := game.New(cfg, rng)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(1024, 768, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		if g.State() == game.Running {
			pollDirection(g)

			// Advance the game at the tick interval, decoupled from the
			// frame rate.
			if time.Since(lastUpdate) >= cfg.TickInterval {
				g.Tick()
				lastUpdate = time.Now()
			}
		} else if rl.GetKeyPressed() != 0 {
			slog.Info("retrying the game")
			g.Reset()
			lastUpdate = time.Now()
		}

		renderer.Draw(g.Snapshot(), g.Grid, g.Stats)
	}
}

// pollDirection maps the arrow keys (and WASD) onto the pending direction.
// Every other key is ignored; the last press before a tick wins.
func pollDirection(g *game.Game) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		g.SetPendingDirection(game.Up)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		g.SetPendingDirection(game.Down)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		g.SetPendingDirection(game.Left)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		g.SetPendingDirection(game.Right)
	}
}
