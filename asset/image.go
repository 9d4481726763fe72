package asset

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

// quadrantChars maps 4-bit pixel patterns to Unicode quadrant characters.
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground).
var quadrantChars = [16]rune{
	' ', // 0000 - empty
	'▘', // 0001 - upper-left
	'▝', // 0010 - upper-right
	'▀', // 0011 - upper half
	'▖', // 0100 - lower-left
	'▌', // 0101 - left half
	'▞', // 0110 - anti-diagonal
	'▛', // 0111 - UL + UR + LL
	'▗', // 1000 - lower-right
	'▚', // 1001 - diagonal
	'▐', // 1010 - right half
	'▜', // 1011 - UL + UR + LR
	'▄', // 1100 - lower half
	'▙', // 1101 - UL + LL + LR
	'▟', // 1110 - UR + LL + LR
	'█', // 1111 - full block
}

// rgb is an 8-bit color triple used during conversion
type rgb struct {
	r, g, b uint8
}

// Cell is one terminal cell of a converted image
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Image is a picture rasterized to a fixed grid of terminal cells
type Image struct {
	Cells []Cell
	Cols  int
	Rows  int

	placeholder bool
}

// Blank returns an inert transparent placeholder of the requested size
func Blank(cols, rows int) *Image {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
	}
	return &Image{Cells: cells, Cols: cols, Rows: rows, placeholder: true}
}

// Placeholder reports whether the image is a fallback blank
func (im *Image) Placeholder() bool {
	return im.placeholder
}

// At returns the cell at (x, y); out-of-range coordinates yield a blank cell
func (im *Image) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= im.Cols || y >= im.Rows {
		return Cell{Rune: ' ', Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
	}
	return im.Cells[y*im.Cols+x]
}

// Convert rasterizes an image to a cols x rows cell grid. The source is
// scaled (stretched, not letterboxed) to a 2x pixel grid so each cell
// carries four sample points, then each cell picks the quadrant character
// and fg/bg pair minimizing color error over its 2x2 block.
func Convert(src image.Image, cols, rows int) *Image {
	bounds := src.Bounds()
	if cols <= 0 || rows <= 0 || bounds.Dx() == 0 || bounds.Dy() == 0 {
		return Blank(cols, rows)
	}

	// 2x2 sample points per cell
	scaled := image.NewRGBA(image.Rect(0, 0, cols*2, rows*2))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, bounds, xdraw.Over, nil)

	cells := make([]Cell, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			// Sample order: [0]=UL, [1]=UR, [2]=LL, [3]=LR
			px := [4]rgb{
				toRGB(scaled.At(x*2, y*2)),
				toRGB(scaled.At(x*2+1, y*2)),
				toRGB(scaled.At(x*2, y*2+1)),
				toRGB(scaled.At(x*2+1, y*2+1)),
			}
			ch, fg, bg := bestQuadrant(px)
			cells[y*cols+x] = Cell{
				Rune: ch,
				Fg:   tcell.NewRGBColor(int32(fg.r), int32(fg.g), int32(fg.b)),
				Bg:   tcell.NewRGBColor(int32(bg.r), int32(bg.g), int32(bg.b)),
			}
		}
	}

	return &Image{Cells: cells, Cols: cols, Rows: rows}
}

// bestQuadrant finds the quadrant character and fg/bg colors for 4 pixels
// by exhaustive search over all 16 bit patterns
func bestQuadrant(pixels [4]rgb) (rune, rgb, rgb) {
	bestError := int(^uint(0) >> 1)
	bestPattern := 0
	var bestFg, bestBg rgb

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, err := patternColors(pixels, pattern)
		if err < bestError {
			bestError = err
			bestPattern = pattern
			bestFg = fg
			bestBg = bg
		}
	}

	return quadrantChars[bestPattern], bestFg, bestBg
}

// patternColors computes the average fg/bg colors for a bit pattern and
// the total squared error of representing the 4 pixels with them
func patternColors(pixels [4]rgb, pattern int) (fg, bg rgb, totalError int) {
	var fgR, fgG, fgB, fgCount int
	var bgR, bgG, bgB, bgCount int

	for i := 0; i < 4; i++ {
		if pattern&(1<<i) != 0 {
			fgR += int(pixels[i].r)
			fgG += int(pixels[i].g)
			fgB += int(pixels[i].b)
			fgCount++
		} else {
			bgR += int(pixels[i].r)
			bgG += int(pixels[i].g)
			bgB += int(pixels[i].b)
			bgCount++
		}
	}

	if fgCount > 0 {
		fg = rgb{uint8(fgR / fgCount), uint8(fgG / fgCount), uint8(fgB / fgCount)}
	}
	if bgCount > 0 {
		bg = rgb{uint8(bgR / bgCount), uint8(bgG / bgCount), uint8(bgB / bgCount)}
	}

	for i := 0; i < 4; i++ {
		target := bg
		if pattern&(1<<i) != 0 {
			target = fg
		}
		totalError += colorDistanceSq(pixels[i], target)
	}

	return fg, bg, totalError
}

// colorDistanceSq computes squared Euclidean distance in RGB space
func colorDistanceSq(a, b rgb) int {
	dr := int(a.r) - int(b.r)
	dg := int(a.g) - int(b.g)
	db := int(a.b) - int(b.b)
	return dr*dr + dg*dg + db*db
}

// toRGB converts any color.Color to rgb with alpha premultiplication
func toRGB(c color.Color) rgb {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return rgb{}
	}
	return rgb{
		r: uint8((r * 0xff) / a),
		g: uint8((g * 0xff) / a),
		b: uint8((b * 0xff) / a),
	}
}
