// Package anim plays looping frame-sequence animations rasterized to
// terminal cells. A player with no loadable frames degrades to a labeled
// placeholder panel instead of failing.
package anim

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/good-manners/asset"
	"github.com/lixenwraith/good-manners/render"
)

// FrameInterval is the wall-clock time between frame advances,
// independent of the render tick rate
const FrameInterval = 150 * time.Millisecond

// frameToken is substituted with the 1-based frame index in patterns
const frameToken = "{n}"

// Player loops over a fixed sequence of cell images
type Player struct {
	frames []*asset.Image
	cols   int
	rows   int

	index    int
	lastStep time.Time
}

// New loads up to count frames by substituting 1-based indices into
// pattern. Frames that fail to load are skipped with a diagnostic; an
// empty pattern or non-positive count disables the animation entirely.
func New(store *asset.Store, pattern string, count, cols, rows int) *Player {
	p := &Player{cols: cols, rows: rows}
	if pattern == "" || count <= 0 {
		return p
	}

	for i := 1; i <= count; i++ {
		path := strings.ReplaceAll(pattern, frameToken, strconv.Itoa(i))
		frame, err := store.TryImage(path, cols, rows)
		if err != nil {
			log.Printf("anim: skipping frame %d: %v", i, err)
			continue
		}
		p.frames = append(p.frames, frame)
	}

	return p
}

// Enabled reports whether any frames loaded
func (p *Player) Enabled() bool {
	return len(p.frames) > 0
}

// FrameIndex returns the current frame position
func (p *Player) FrameIndex() int {
	return p.index
}

// Reset rewinds playback to frame 0 and restarts the frame clock
func (p *Player) Reset(now time.Time) {
	p.index = 0
	p.lastStep = now
}

// Draw renders the current frame at (x, y), advancing one frame per
// FrameInterval of wall clock and looping indefinitely. With no frames
// it renders a neutral placeholder panel instead.
func (p *Player) Draw(s render.Surface, x, y int, now time.Time) {
	if len(p.frames) == 0 {
		p.drawPlaceholder(s, x, y)
		return
	}

	if now.Sub(p.lastStep) > FrameInterval {
		p.index = (p.index + 1) % len(p.frames)
		p.lastStep = now
	}

	render.Blit(s, x, y, p.frames[p.index])
}

func (p *Player) drawPlaceholder(s render.Surface, x, y int) {
	gray := tcell.NewRGBColor(0xd3, 0xd3, 0xd3)
	darkGray := tcell.NewRGBColor(0x80, 0x80, 0x80)
	border := tcell.StyleDefault.Foreground(darkGray).Background(gray)
	fill := tcell.StyleDefault.Foreground(darkGray).Background(gray)

	render.Panel(s, x, y, p.cols, p.rows, border, fill)
	render.TextCentered(s, x+p.cols/2, y+p.rows/2, "no animation", fill)
}
