package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

const StartPrompt = "Press Space to start"

// Canvas is a 2D raster with clear and fill primitives
type Canvas interface {
	Clear(width, height int)
	FillRect(x, y, w, h int, c Color)
}

type ScoreLabel interface {
	SetText(text string)
}

// Notifier shows a message the player has to acknowledge
type Notifier interface {
	Notify(message string)
}

// Renderer paints a session onto a canvas and forwards score and game
// over messages. It implements game.View.
type Renderer struct {
	canvas   Canvas
	label    ScoreLabel
	notifier Notifier
	cellSize int
}

func NewRenderer(canvas Canvas, label ScoreLabel, notifier Notifier) *Renderer {
	return &Renderer{
		canvas:   canvas,
		label:    label,
		notifier: notifier,
		cellSize: types.CellSize,
	}
}

// CanvasSize returns the pixel size of a grid
func CanvasSize(grid types.Grid) (int, int) {
	return grid.Width * types.CellSize, grid.Height * types.CellSize
}

func (r *Renderer) Redraw(g *game.Game) {
	width, height := CanvasSize(g.Grid)
	r.canvas.Clear(width, height)
	r.canvas.FillRect(0, 0, width, height, BackgroundColor)

	for i, p := range g.Snake() {
		color := BodyColor
		if i == 0 {
			color = HeadColor
		}
		r.fillCell(p, color)
	}

	r.fillCell(g.Food(), FoodColor)
}

// fillCell leaves a one pixel gap so the grid lines show through
func (r *Renderer) fillCell(p types.Point, c Color) {
	r.canvas.FillRect(p.X*r.cellSize, p.Y*r.cellSize, r.cellSize-1, r.cellSize-1, c)
}

func (r *Renderer) SetScore(text string) {
	r.label.SetText(text)
}

func (r *Renderer) GameOver(message string) {
	r.notifier.Notify(message)
}
