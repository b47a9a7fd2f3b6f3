package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the cell every screen starts out with.
var blank = Cell{Rune: ' ', Color: ColorDefault}

// Box-drawing runes for the message box frame.
const (
	frameH  = '─'
	frameV  = '│'
	frameTL = '┌'
	frameTR = '┐'
	frameBL = '└'
	frameBR = '┘'
)

// Screen is a 2D character buffer. Rasterize paints scenes into it and the
// terminal platform turns it into colored text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.cells = makeCells(width, height)
	return s
}

func makeCells(w, h int) [][]Cell {
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
		for x := range cells[y] {
			cells[y][x] = blank
		}
	}
	return cells
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, keeping the overlapping content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	cells := makeCells(width, height)
	for y := range min(s.height, height) {
		copy(cells[y], s.cells[y][:min(s.width, width)])
	}
	s.width, s.height, s.cells = width, height, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// SetColored places a rune with a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at the given position, blank when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawTextColored writes a string horizontally starting at (x, y), clipped
// at the screen edges.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawMessageBox draws a cleared, framed box in the middle of the screen
// holding the given lines, one blank row between each.
func (s *Screen) DrawMessageBox(lines ...string) {
	if len(lines) == 0 {
		return
	}

	longest := 0
	for _, l := range lines {
		longest = max(longest, len([]rune(l)))
	}

	w := longest + 4
	h := len(lines)*2 + 1
	left := (s.width - w) / 2
	top := (s.height - h) / 2
	right, bottom := left+w-1, top+h-1

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			r := ' '
			switch {
			case y == top && x == left:
				r = frameTL
			case y == top && x == right:
				r = frameTR
			case y == bottom && x == left:
				r = frameBL
			case y == bottom && x == right:
				r = frameBR
			case y == top || y == bottom:
				r = frameH
			case x == left || x == right:
				r = frameV
			}
			s.SetColored(x, y, r, ColorDefault)
		}
	}

	for i, l := range lines {
		x := left + (w-len([]rune(l)))/2
		s.DrawTextColored(x, top+1+i*2, l, ColorDefault)
	}
}

// String joins the rows with newlines. Colors are dropped.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, c := range s.cells[y] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Row returns one row as a string, all spaces when out of range.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
