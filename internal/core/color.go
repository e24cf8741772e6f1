package core

import "math"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPurple
)

// palette holds approximate RGB values for the terminal colors that
// obstacle colors are quantized to.
var palette = []struct {
	c       Color
	r, g, b float64
}{
	{ColorRed, 0.8, 0.1, 0.1},
	{ColorGreen, 0.1, 0.7, 0.1},
	{ColorYellow, 0.8, 0.8, 0.1},
	{ColorBlue, 0.1, 0.2, 0.8},
	{ColorMagenta, 0.7, 0.1, 0.7},
	{ColorCyan, 0.1, 0.7, 0.7},
	{ColorWhite, 0.75, 0.75, 0.75},
	{ColorBrightRed, 1.0, 0.35, 0.35},
	{ColorBrightGreen, 0.35, 1.0, 0.35},
	{ColorBrightYellow, 1.0, 1.0, 0.4},
	{ColorBrightBlue, 0.4, 0.5, 1.0},
	{ColorBrightMagenta, 1.0, 0.4, 1.0},
	{ColorBrightCyan, 0.4, 1.0, 1.0},
	{ColorOrange, 1.0, 0.55, 0.0},
	{ColorGray, 0.3, 0.3, 0.3},
	{ColorPurple, 0.6, 0.2, 1.0},
}

// NearestColor quantizes an RGB triple in [0,1] to the closest palette color.
func NearestColor(r, g, b float32) Color {
	best := ColorDefault
	bestDist := math.MaxFloat64
	for _, p := range palette {
		dr := float64(r) - p.r
		dg := float64(g) - p.g
		db := float64(b) - p.b
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			bestDist = d
			best = p.c
		}
	}
	return best
}
