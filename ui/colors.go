package ui

import "fmt"

type Color struct {
	R, G, B uint8
}

var (
	BackgroundColor = Color{R: 0x1a, G: 0x1a, B: 0x1a}
	HeadColor       = Color{R: 0x2e, G: 0xcc, B: 0x71}
	BodyColor       = Color{R: 0x27, G: 0xae, B: 0x60}
	FoodColor       = Color{R: 0xe7, G: 0x4c, B: 0x3c}
	TextColor       = Color{R: 0xff, G: 0xff, B: 0xff}
)

// Hex formats the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
