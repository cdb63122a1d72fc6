package ui

import (
	"fmt"
	"image/color"

	"snake-game/game"
	"snake-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize    = 20
	lineHeight  = 24
	hudPadding  = 8
	restartHint = "Press ENTER to restart"
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	// Autopilot adds a marker to the HUD when the demo driver is steering.
	Autopilot bool
}

func NewRenderer(grid types.Grid, cellSize int32) *Renderer {
	return &Renderer{
		cellSize:     cellSize,
		screenWidth:  int32(grid.Width) * cellSize,
		screenHeight: int32(grid.Height) * cellSize,
	}
}

func (r *Renderer) ScreenWidth() int32 {
	return r.screenWidth
}

func (r *Renderer) ScreenHeight() int32 {
	return r.screenHeight
}

// Draw renders one frame of g. It only reads the game.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	body := g.Snake()
	for _, p := range body {
		r.drawCell(p, rl.Green)
	}
	if len(body) > 0 {
		r.drawHeading(body[0], g.Direction())
	}
	r.drawCell(g.Food(), rl.Red)

	stats := g.Stats()
	hud := fmt.Sprintf("Score: %d  Best: %d", g.Score(), stats.GetHighScore())
	if r.Autopilot {
		hud += "  [AUTO]"
	}
	rl.DrawText(hud, hudPadding, hudPadding, fontSize, rl.White)

	if g.GameOver() {
		r.drawGameOver(g.LastCollision())
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, c color.RGBA) {
	rl.DrawRectangle(int32(p.X)*r.cellSize, int32(p.Y)*r.cellSize, r.cellSize, r.cellSize, c)
}

// drawHeading marks the head with a small triangle pointing where the
// snake will move next.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	x := float32(int32(head.X) * r.cellSize)
	y := float32(int32(head.Y) * r.cellSize)
	size := float32(r.cellSize)
	half := size / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: x + size, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y}
		c = rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		a = rl.Vector2{X: x, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y + size}
		c = rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a = rl.Vector2{X: x + half, Y: y + size}
		b = rl.Vector2{X: x + size, Y: y + half}
		c = rl.Vector2{X: x, Y: y + half}
	case types.Up:
		a = rl.Vector2{X: x + half, Y: y}
		b = rl.Vector2{X: x, Y: y + half}
		c = rl.Vector2{X: x + size, Y: y + half}
	default:
		return
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.DarkGreen)
}

func (r *Renderer) drawGameOver(cause types.CollisionType) {
	lines := []string{"GAME OVER", causeText(cause), restartHint}
	top := (r.screenHeight - int32(len(lines))*lineHeight) / 2
	for i, line := range lines {
		if line == "" {
			continue
		}
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, (r.screenWidth-w)/2, top+int32(i)*lineHeight, fontSize, rl.Yellow)
	}
}

func causeText(cause types.CollisionType) string {
	switch cause {
	case types.WallCollision:
		return "You hit the wall"
	case types.SelfCollision:
		return "You bit yourself"
	default:
		return ""
	}
}
