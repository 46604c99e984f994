package types

import "time"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	GridSize           = 20 // Cells per side
	CellSize           = 20 // Pixels per cell, rendering only
	InitialSnakeLength = 4
	FoodReward         = 10
)

// Speed constants
const (
	BaseInterval         = 150 * time.Millisecond
	SpeedBoostMultiplier = 0.6 // 40% faster
	QuickPressThreshold  = 80 * time.Millisecond
	SpeedResetDelay      = 400 * time.Millisecond
	RequiredQuickPresses = 3
)

// DefaultGrid returns the square GridSize x GridSize board
func DefaultGrid() Grid {
	return Grid{Width: GridSize, Height: GridSize}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells on the grid
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center returns the cell the initial snake head is placed on
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Point is a single grid cell
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Step returns the neighbouring cell in direction d
func (p Point) Step(d Direction) Point {
	return p.Add(d.Delta())
}

// Direction is a heading on the grid
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the 180 degree reverse of d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
