package core

import (
	"strings"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer the runner projects its scene into.
// Drivers turn it into terminal output; cells are stored row-major.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(max(width, 0), max(height, 0))
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. The overlapping top-left region
// keeps its content; new cells are blank.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height && s.cells != nil {
		return
	}
	width, height = max(width, 0), max(height, 0)

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	keepW, keepH := min(width, s.width), min(height, s.height)
	for y := 0; y < keepH; y++ {
		copy(cells[y*width:y*width+keepW], s.cells[y*s.width:y*s.width+keepW])
	}

	s.width, s.height, s.cells = width, height, cells
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune at the given position with the default color.
// Out-of-bounds coordinates are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a colored rune at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or a space off screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// Line returns row y as a slice of cells. The slice aliases the buffer and
// is only valid until the next Resize.
func (s *Screen) Line(y int) []Cell {
	if y < 0 || y >= s.height {
		return nil
	}
	return s.cells[y*s.width : (y+1)*s.width]
}

// DrawText writes a string horizontally starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.Set(x, y, r)
		x++
	}
}

// DrawHLine draws a horizontal run of length cells starting at (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := range length {
		s.SetColored(x+i, y, r, c)
	}
}

// Fill paints every on-screen cell of rect with the given rune and color.
func (s *Screen) Fill(rect Rect, r rune, c Color) {
	rect = rect.Clip(s.width, s.height)
	for y := rect.Y; y < rect.Bottom(); y++ {
		line := s.Line(y)
		for x := rect.X; x < rect.Right(); x++ {
			line[x] = Cell{Rune: r, Color: c}
		}
	}
}

// DrawPanel blanks rect and outlines it with box-drawing characters.
// Rects smaller than 2x2 are only blanked.
func (s *Screen) DrawPanel(rect Rect) {
	s.Fill(rect, ' ', ColorDefault)
	if rect.W < 2 || rect.H < 2 {
		return
	}
	right, bottom := rect.Right()-1, rect.Bottom()-1

	s.DrawHLine(rect.X+1, rect.Y, rect.W-2, '─', ColorDefault)
	s.DrawHLine(rect.X+1, bottom, rect.W-2, '─', ColorDefault)
	for y := rect.Y + 1; y < bottom; y++ {
		s.Set(rect.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(rect.X, rect.Y, '┌')
	s.Set(right, rect.Y, '┐')
	s.Set(rect.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.Line(y) {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Row returns row y as plain text. Rows off screen read as spaces.
func (s *Screen) Row(y int) string {
	line := s.Line(y)
	if line == nil {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, len(line))
	for i, c := range line {
		runes[i] = c.Rune
	}
	return string(runes)
}
