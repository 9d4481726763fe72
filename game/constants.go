package game

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/good-manners/content"
)

const (
	// PromptInputDelay gates the choice affordance after prompt audio
	// starts, preventing accidental immediate taps
	PromptInputDelay = 1500 * time.Millisecond

	// FeedbackDuration is how long the feedback panel stays up before
	// auto-advancing to the next scenario
	FeedbackDuration = 5000 * time.Millisecond

	// PulsePeriod and PulseMaxScale shape the feedback panel pulse
	// (1.0 -> 1.08 -> 1.0 per cycle)
	PulsePeriod   = 800 * time.Millisecond
	PulseMaxScale = 1.08
)

// Virtual screen layout, in cells. Backgrounds fill the whole grid;
// panel geometry follows the original canvas proportions.
const (
	ScreenCols = content.BackgroundCols
	ScreenRows = content.BackgroundRows

	promptTextX     = 54
	promptTextY     = 2
	promptTextWidth = 42
	promptTextLines = 5

	panelX = 64
	panelY = 5
	panelW = 32
	panelH = 11

	animX    = 8
	animY    = 6
	animCols = 24
	animRows = 12

	hintRow = ScreenRows - 2
)

// Palette
var (
	skyBlue    = tcell.NewRGBColor(153, 217, 234)
	paleGreen  = tcell.NewRGBColor(0xd4, 0xf8, 0xd4)
	paleRed    = tcell.NewRGBColor(0xf8, 0xd4, 0xd4)
	goodGreen  = tcell.NewRGBColor(0x4c, 0xaf, 0x50)
	badRed     = tcell.NewRGBColor(0xe5, 0x39, 0x35)
	inkBlack   = tcell.ColorBlack
	hintGray   = tcell.NewRGBColor(0x40, 0x40, 0x40)
	screenBase = tcell.StyleDefault.Foreground(inkBlack).Background(skyBlue)
)
