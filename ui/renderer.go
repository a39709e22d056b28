package ui

import (
	"fmt"
	"snake-game/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // padding around game area
	maxScores     = 50 // points shown in the performance graph
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	// Get window dimensions
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a fixed share of the window
	r.statsPanel = r.screenWidth / 5

	// Game area is whatever the stats panel leaves over
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	// Graph fits within the stats panel
	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame from the snapshot. The renderer never reaches
// into the game; everything it needs is in the snapshot and the stats.
func (r *Renderer) Draw(snap game.Snapshot, grid game.Grid, stats *game.SessionStats) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, r.statsPanel/12)
	lineHeight := min(r.screenHeight/32, r.statsPanel/10)

	// Cell size from the space left after border padding
	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)
	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)

	// Center the grid in the game area
	r.offsetX = borderPadding + (r.gameWidth-2*borderPadding-r.totalGridWidth)/2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	// Field border
	rl.DrawRectangle(
		r.offsetX-2,
		r.offsetY-2,
		r.totalGridWidth+4,
		r.totalGridHeight+4,
		rl.DarkGreen)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)

	r.drawSnake(snap)

	if snap.HasFood {
		rl.DrawRectangle(
			r.offsetX+int32(snap.Food.X)*r.cellSize,
			r.offsetY+int32(snap.Food.Y)*r.cellSize,
			r.cellSize, r.cellSize, rl.Green)
	}

	// Score bar below the field
	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	rl.DrawText(scoreText, r.offsetX, r.offsetY+r.totalGridHeight+6, fontSize, rl.Green)

	r.drawStatsPanel(snap, stats, fontSize, lineHeight)

	if snap.Finished() {
		r.drawGameOver(snap, fontSize)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	for i, p := range snap.Body {
		color := rl.Pink
		if i == 0 { // head
			color = rl.Color{R: 255, G: 150, B: 200, A: 255}
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)

		if i == 0 {
			r.drawHeadMarker(p, snap.Direction)
		}
	}
}

// drawHeadMarker puts a small triangle on the head pointing in the travel
// direction.
func (r *Renderer) drawHeadMarker(head game.Cell, dir game.Direction) {
	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize
	halfCell := r.cellSize / 2

	switch dir {
	case game.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case game.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case game.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	case game.Up:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, stats *game.SessionStats, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	// Stats background
	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	rl.DrawText("Session", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("High: %d", stats.SessionHigh()), statsX+5, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d", stats.GamesPlayed()), statsX+5, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg: %.2f", stats.AverageScore()), statsX+5, statsY, fontSize, rl.White)
	statsY += lineHeight

	statsY += lineHeight / 2
	rl.DrawText("Current", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Length: %d", len(snap.Body)), statsX+5, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Steps: %d", snap.Steps), statsX+5, statsY, fontSize, rl.White)

	r.drawScoreGraph(stats, statsX, fontSize)
}

func (r *Renderer) drawScoreGraph(stats *game.SessionStats, statsX, fontSize int32) {
	graphX := statsX
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	scores := stats.RecentScores()
	if len(scores) < 2 {
		return
	}

	maxScore := 1
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}

	graphWidth := r.graphWidth
	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(float32(graphWidth)*float32(j-1)/float32(maxScores))
		y1 := graphY + graphHeight - int32(float32(graphHeight)*float32(scores[j-1])/float32(maxScore))
		x2 := graphX + int32(float32(graphWidth)*float32(j)/float32(maxScores))
		y2 := graphY + graphHeight - int32(float32(graphHeight)*float32(scores[j])/float32(maxScore))
		rl.DrawLine(x1, y1, x2, y2, rl.Pink)
	}

	// Average as a dashed line
	avgY := graphY + graphHeight - int32(float32(graphHeight)*float32(stats.AverageScore())/float32(maxScore))
	for x := graphX; x < graphX+graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Gray)
	}
}

func (r *Renderer) drawGameOver(snap game.Snapshot, fontSize int32) {
	title := "GAME OVER"
	titleColor := rl.Red
	if snap.State == game.Won {
		title = "YOU WIN"
		titleColor = rl.Gold
	}

	titleSize := fontSize * 3
	titleWidth := rl.MeasureText(title, titleSize)
	rl.DrawText(title,
		r.offsetX+(r.totalGridWidth-titleWidth)/2,
		r.offsetY+r.totalGridHeight/2-titleSize,
		titleSize, titleColor)

	subtitle := "Press any key to retry"
	subtitleWidth := rl.MeasureText(subtitle, fontSize)
	rl.DrawText(subtitle,
		r.offsetX+(r.totalGridWidth-subtitleWidth)/2,
		r.offsetY+r.totalGridHeight/2+fontSize,
		fontSize, rl.White)
}
