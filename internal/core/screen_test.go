package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		if row := s.Row(y); row != strings.Repeat(" ", 80) {
			t.Fatalf("row %d = %q, expected blank", y, row)
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '#', ColorRed)
	s.DrawTextColored(0, 0, "ab", ColorGreen)

	if c := s.GetCell(2, 1); c.Rune != '#' || c.Color != ColorRed {
		t.Errorf("GetCell(2, 1) = %+v, expected red '#'", c)
	}
	if c := s.GetCell(1, 0); c.Rune != 'b' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 0) = %+v, expected green 'b'", c)
	}

	s.Clear()
	if c := s.GetCell(2, 1); c != blank {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], 'X', ColorRed) // must not panic
		if c := s.GetCell(p[0], p[1]); c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}

	s.DrawTextColored(2, 1, "Hello", ColorDefault)
	if s.Row(1) != "  He" {
		t.Errorf("text should clip at the right edge, row = %q", s.Row(1))
	}
	if s.Row(-1) != "    " {
		t.Errorf("out of range row = %q", s.Row(-1))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColored(0, 1, "BBBBB", ColorRed)
	s.DrawTextColored(0, 2, "CCCCC", ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"shrink", 8, 4},
		{"grow", 15, 8},
		{"same", 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.DrawTextColored(0, 0, "Hello", ColorCyan)

			s.Resize(tt.w, tt.h)
			if s.Width() != tt.w || s.Height() != tt.h {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tt.w, tt.h)
			}
			if row := s.Row(0); !strings.HasPrefix(row, "Hello") || len(row) != tt.w {
				t.Errorf("row 0 = %q, expected Hello kept", row)
			}
			if s.GetCell(0, 0).Color != ColorCyan {
				t.Error("resize should keep colors")
			}
			if runeAt(s, tt.w-1, tt.h-1) != ' ' && tt.w > 10 {
				t.Error("new cells should be blank")
			}
		})
	}
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(30, 9)
	for y := range 9 {
		s.DrawTextColored(0, y, strings.Repeat(".", 30), ColorDefault)
	}
	s.DrawMessageBox("You Win!", "Press Space")

	// 15 wide (11+4), 5 tall, top-left at (7, 2)
	corners := map[[2]int]rune{{7, 2}: '┌', {21, 2}: '┐', {7, 6}: '└', {21, 6}: '┘'}
	for p, want := range corners {
		if got := runeAt(s, p[0], p[1]); got != want {
			t.Errorf("corner (%d, %d) = %q, expected %q", p[0], p[1], got, want)
		}
	}
	if runeAt(s, 10, 2) != '─' || runeAt(s, 7, 4) != '│' {
		t.Error("frame edges missing")
	}
	if !strings.Contains(s.Row(3), "You Win!") || !strings.Contains(s.Row(5), "Press Space") {
		t.Errorf("lines missing:\n%s", s.String())
	}
	if runeAt(s, 8, 4) != ' ' {
		t.Error("message box interior should be cleared")
	}
	if runeAt(s, 6, 2) != '.' {
		t.Error("outside the box should be untouched")
	}

	before := s.String()
	s.DrawMessageBox()
	if s.String() != before {
		t.Error("no lines means no box")
	}
}
