package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if got := strings.Count(s.String(), " "); got != 80*24 {
		t.Errorf("new screen has %d spaces, expected %d", got, 80*24)
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-4, 3)
	if s.Width() != 0 || s.Height() != 3 {
		t.Errorf("size = %dx%d, expected 0x3", s.Width(), s.Height())
	}
	s.Set(0, 0, 'X') // must not panic
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.Set(p[0], p[1], 'A')
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) off screen should read as space", p[0], p[1])
		}
	}
	if strings.Count(s.String(), "A") != 0 {
		t.Error("off-screen writes must not wrap onto other rows")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '▓', ColorRed)
	if c := s.GetCell(1, 1); c.Rune != '▓' || c.Color != ColorRed {
		t.Fatalf("GetCell(1, 1) = %+v, expected red '▓'", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blankCell {
		t.Errorf("Clear should reset the cell, got %+v", c)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	if got := s.Row(1); !strings.HasPrefix(got, "  Hello ") {
		t.Errorf("Row(1) = %q", got)
	}

	s.DrawText(18, 0, "Hello")
	if got := s.Row(0)[18:]; got != "He" {
		t.Errorf("clipped text = %q, expected \"He\"", got)
	}
	if s.Get(0, 1) != ' ' {
		t.Error("clipped text must not wrap onto the next row")
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill(NewRect(8, 8, 5, 5), '#', ColorGreen)

	for y := 8; y < 10; y++ {
		for x := 8; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGreen {
				t.Errorf("Fill: expected green '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(7, 7) != ' ' {
		t.Error("Fill should not touch cells outside the rect")
	}

	s.Fill(NewRect(-5, -5, 2, 2), '#', ColorGreen) // fully off screen
}

func TestScreenDrawPanel(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill(NewRect(0, 0, 10, 10), '.', ColorDefault)
	s.DrawPanel(NewRect(1, 1, 5, 4))

	want := []string{
		"..........",
		".┌───┐....",
		".│   │....",
		".│   │....",
		".└───┘....",
		"..........",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-', ColorGray)

	for x := 2; x < 7; x++ {
		if c := s.GetCell(x, 2); c.Rune != '-' || c.Color != ColorGray {
			t.Errorf("DrawHLine: expected gray '-' at (%d, 2), got %+v", x, c)
		}
	}
	if s.Get(7, 2) != ' ' {
		t.Error("DrawHLine drew past its length")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after shrink size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Hello   " {
		t.Errorf("Row(0) after shrink = %q", got)
	}

	s.Resize(15, 8)
	if got := s.Row(0); got != "Hello          " {
		t.Errorf("Row(0) after grow = %q", got)
	}
	if got := s.Row(5); strings.TrimSpace(got) != "" {
		t.Errorf("row dropped by the shrink should come back blank, got %q", got)
	}
}

func TestScreenLine(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'x', ColorCyan)

	line := s.Line(1)
	if len(line) != 4 || line[1].Color != ColorCyan {
		t.Errorf("Line(1) = %+v", line)
	}
	if s.Line(2) != nil || s.Line(-1) != nil {
		t.Error("Line off screen should be nil")
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
}
