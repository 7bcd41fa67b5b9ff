package core

import "strings"

// Screen is a 2D character buffer for rendering the playfield in a
// terminal. It decouples the engine from the display: the engine draws
// normalized coordinates into cells, the platform turns cells into output.
type Screen struct {
	width  int
	height int
	cells  [][]rune
	colors [][]Color
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]rune, s.height)
	s.colors = make([][]Color, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
		s.colors[y] = make([]Color, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, discarding content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with spaces in the default color.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
			s.colors[y][x] = ColorDefault
		}
	}
}

// Set places a rune at the given cell position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
	s.colors[y][x] = c
}

// Get returns the rune at the given cell position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x]
}

// ColorAt returns the color at the given cell position.
func (s *Screen) ColorAt(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorDefault
	}
	return s.colors[y][x]
}

// Project converts a normalized playfield position to a cell position.
// Positions outside [0,1] project outside the buffer; Set ignores them.
func (s *Screen) Project(p Vec2) (int, int) {
	return int(p.X * float64(s.width)), int(p.Y * float64(s.height))
}

// SetNorm places a rune at a normalized playfield position.
func (s *Screen) SetNorm(p Vec2, r rune, c Color) {
	x, y := s.Project(p)
	s.Set(x, y, r, c)
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range text {
		s.Set(x+i, y, r, ColorDefault)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len(text)) / 2
	s.DrawText(x, y, text)
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	s.Set(x, y, '┌', ColorDefault)
	s.Set(x+w-1, y, '┐', ColorDefault)
	s.Set(x, y+h-1, '└', ColorDefault)
	s.Set(x+w-1, y+h-1, '┘', ColorDefault)
	for cx := x + 1; cx < x+w-1; cx++ {
		s.Set(cx, y, '─', ColorDefault)
		s.Set(cx, y+h-1, '─', ColorDefault)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		s.Set(x, cy, '│', ColorDefault)
		s.Set(x+w-1, cy, '│', ColorDefault)
	}
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}
