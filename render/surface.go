package render

import (
	"github.com/gdamore/tcell/v2"
)

// Surface is the drawing target for all renderers. *tcell.Screen (via
// tcell.Screen) satisfies it; tests use Buffer.
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Buffer is an in-memory Surface for tests and composition
type Buffer struct {
	width  int
	height int
	runes  [][]rune
	styles [][]tcell.Style
}

// NewBuffer creates a cleared buffer of the given dimensions
func NewBuffer(width, height int) *Buffer {
	runes := make([][]rune, height)
	styles := make([][]tcell.Style, height)
	for y := 0; y < height; y++ {
		runes[y] = make([]rune, width)
		styles[y] = make([]tcell.Style, width)
		for x := 0; x < width; x++ {
			runes[y][x] = ' '
			styles[y][x] = tcell.StyleDefault
		}
	}
	return &Buffer{width: width, height: height, runes: runes, styles: styles}
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// SetContent writes a cell; out-of-bounds writes are dropped
func (b *Buffer) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.runes[y][x] = primary
	b.styles[y][x] = style
}

// RuneAt returns the rune at (x, y), or space when out of bounds
func (b *Buffer) RuneAt(x, y int) rune {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return ' '
	}
	return b.runes[y][x]
}

// StyleAt returns the style at (x, y)
func (b *Buffer) StyleAt(x, y int) tcell.Style {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return tcell.StyleDefault
	}
	return b.styles[y][x]
}

// Row returns the y-th row as a string, for test assertions
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return string(b.runes[y])
}
