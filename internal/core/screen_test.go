package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(20, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds set should be ignored
	s.Set(-1, 5, 'Y')
	s.Set(5, -1, 'Y')
	s.Set(20, 5, 'Y')
	s.Set(5, 10, 'Y')

	// Out of bounds get returns space
	if s.Get(-1, 5) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(20, 5) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(20, 10)

	s.SetColored(3, 2, '▲', ColorBrightRed)

	cell := s.GetCell(3, 2)
	if cell.Rune != '▲' {
		t.Errorf("GetCell rune = %q, expected '▲'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell color = %d, expected ColorBrightRed", cell.Color)
	}

	// Plain Set resets to the default color
	s.Set(3, 2, '#')
	if s.GetCell(3, 2).Color != ColorDefault {
		t.Error("Set should use the default color")
	}

	// Out of bounds GetCell returns a blank cell
	blank := s.GetCell(-1, -1)
	if blank.Rune != ' ' || blank.Color != ColorDefault {
		t.Error("Out of bounds GetCell should return a blank default cell")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 10)

	s.DrawText(2, 3, "hello")
	if s.Row(3) != "  hello             " {
		t.Errorf("Row(3) = %q", s.Row(3))
	}

	// Clipped at the right edge
	s.DrawText(17, 5, "world")
	if s.Get(19, 5) != 'r' {
		t.Errorf("Clipped text: Get(19, 5) = %q, expected 'r'", s.Get(19, 5))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.SetColored(9, 4, 'B', ColorCyan)

	s.Resize(6, 4)

	if s.Width() != 6 || s.Height() != 4 {
		t.Errorf("Resize dimensions = %dx%d, expected 6x4", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("Resize should preserve content within the new bounds")
	}
	if s.Get(5, 3) != ' ' {
		t.Error("Content outside the new bounds should be dropped")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(0, 0, 'a')
	s.Set(3, 1, 'b')

	got := s.String()
	expected := "a   \n   b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should contain exactly one newline for 2 rows")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("DrawBox top corners missing")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox bottom corners missing")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges missing")
	}
}
