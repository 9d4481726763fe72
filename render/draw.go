package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/good-manners/asset"
)

// Rounded box drawing characters: ╭─╮│╰╯
var roundedChars = [6]rune{'╭', '─', '╮', '│', '╰', '╯'}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Fill paints the whole surface with a style
func Fill(s Surface, style tcell.Style) {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Panel draws a rounded box with a filled interior
func Panel(s Surface, x, y, w, h int, border, fill tcell.Style) {
	if w < 2 || h < 2 {
		return
	}

	// Interior first, border on top
	for iy := 1; iy < h-1; iy++ {
		for ix := 1; ix < w-1; ix++ {
			s.SetContent(x+ix, y+iy, ' ', nil, fill)
		}
	}

	s.SetContent(x, y, roundedChars[boxTL], nil, border)
	s.SetContent(x+w-1, y, roundedChars[boxTR], nil, border)
	s.SetContent(x, y+h-1, roundedChars[boxBL], nil, border)
	s.SetContent(x+w-1, y+h-1, roundedChars[boxBR], nil, border)

	for ix := 1; ix < w-1; ix++ {
		s.SetContent(x+ix, y, roundedChars[boxH], nil, border)
		s.SetContent(x+ix, y+h-1, roundedChars[boxH], nil, border)
	}
	for iy := 1; iy < h-1; iy++ {
		s.SetContent(x, y+iy, roundedChars[boxV], nil, border)
		s.SetContent(x+w-1, y+iy, roundedChars[boxV], nil, border)
	}
}

// Blit copies a cell image onto the surface with its top-left at (x, y).
// Placeholder images draw nothing, leaving the backdrop visible.
func Blit(s Surface, x, y int, im *asset.Image) {
	if im == nil || im.Placeholder() {
		return
	}
	for iy := 0; iy < im.Rows; iy++ {
		for ix := 0; ix < im.Cols; ix++ {
			c := im.At(ix, iy)
			style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
			s.SetContent(x+ix, y+iy, c.Rune, nil, style)
		}
	}
}
