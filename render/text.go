package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Wrap word-wraps text to the given cell width. Words wider than the
// limit are emitted on their own line rather than split.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = w
		case lineWidth+1+w <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + w
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = w
		}
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}

	return lines
}

// Text draws a single line starting at (x, y), advancing by display width
func Text(s Surface, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

// TextCentered draws a single line centered on cx
func TextCentered(s Surface, cx, y int, text string, style tcell.Style) {
	Text(s, cx-runewidth.StringWidth(text)/2, y, text, style)
}

// TextWrapped word-wraps text into a box anchored at (x, y), centering
// each line, and drops lines past maxLines
func TextWrapped(s Surface, x, y, width, maxLines int, text string, style tcell.Style) {
	for i, line := range Wrap(text, width) {
		if i >= maxLines {
			break
		}
		TextCentered(s, x+width/2, y+i, line, style)
	}
}
