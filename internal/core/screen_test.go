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
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '●', ColorRed)

	cell := s.GetCell(3, 4)
	if cell.Rune != '●' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '●'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell(3, 4).Color = %v, expected ColorRed", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(3, 4, 'x')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset the cell color to default")
	}

	// Out of bounds returns a default cell
	if s.GetCell(-1, -1) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("Out of bounds GetCell should return a default space cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	s.Fill('X')

	s.Clear()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")

	if s.Row(1) != "  hello             " {
		t.Errorf("Row(1) = %q, expected text at offset 2", s.Row(1))
	}

	// Clipped text should not panic
	s.DrawText(18, 0, "overflow")
	if s.Get(18, 0) != 'o' || s.Get(19, 0) != 'v' {
		t.Error("Clipped text should draw the visible prefix")
	}
}

func TestScreenDrawLine(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawLine(0, 0, 4, 4, '*', ColorBlue)

	// A 45-degree line hits every diagonal cell
	for i := 0; i <= 4; i++ {
		cell := s.GetCell(i, i)
		if cell.Rune != '*' {
			t.Errorf("Expected '*' at (%d, %d), got %q", i, i, cell.Rune)
		}
		if cell.Color != ColorBlue {
			t.Errorf("Expected ColorBlue at (%d, %d)", i, i)
		}
	}

	// Endpoints are always drawn regardless of direction
	s.Clear()
	s.DrawLine(7, 2, 1, 8, '#', ColorDefault)
	if s.Get(7, 2) != '#' || s.Get(1, 8) != '#' {
		t.Error("DrawLine should draw both endpoints")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')

	s.Resize(20, 20)

	if s.Width() != 20 || s.Height() != 20 {
		t.Errorf("After resize, got %dx%d, expected 20x20", s.Width(), s.Height())
	}
	if s.Get(5, 5) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrink drops out-of-range content without panicking
	s.Resize(3, 3)
	if s.Get(5, 5) != ' ' {
		t.Error("Out-of-range content should read as space after shrink")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	expected := "a  \n  b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should contain height-1 newlines, got %d", strings.Count(got, "\n"))
	}
}
