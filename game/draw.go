package game

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/good-manners/render"
)

// Draw renders the current state onto the surface. It never mutates
// session state, so it can run any number of times per tick.
func (g *Game) Draw(s render.Surface) {
	render.Fill(s, screenBase)

	switch g.session.State {
	case StatePrompt:
		g.drawPrompt(s)
	case StateFeedback:
		g.drawFeedback(s)
	case StateEnd:
		g.drawEnd(s)
	}
}

func (g *Game) drawPrompt(s render.Surface) {
	scen := g.current()
	if scen == nil {
		return
	}

	render.Blit(s, 0, 0, scen.PromptImage)
	render.TextWrapped(s, promptTextX, promptTextY, promptTextWidth, promptTextLines,
		scen.PromptText, screenBase.Bold(true))

	if g.ChoiceAvailable() {
		render.TextCentered(s, ScreenCols/2, hintRow,
			"[g] good manners    [b] bad manners",
			tcell.StyleDefault.Foreground(hintGray).Background(skyBlue))
	}
}

func (g *Game) drawFeedback(s render.Surface) {
	scen := g.current()
	if scen == nil {
		return
	}

	render.Blit(s, 0, 0, scen.FeedbackImage)

	// Outcome animation (or its placeholder) at a fixed panel location
	g.anims[g.session.Index].forChoice(g.session.LastChoice).Draw(s, animX, animY, g.now())

	good := g.session.LastChoice.Good()
	fillColor, borderColor := paleRed, badRed
	if good {
		fillColor, borderColor = paleGreen, goodGreen
	}

	// Pulse expands the panel around its center
	scale := g.pulseScale()
	w := int(float64(panelW)*scale + 0.5)
	h := int(float64(panelH)*scale + 0.5)
	x := panelX - (w-panelW)/2
	y := panelY - (h-panelH)/2

	border := tcell.StyleDefault.Foreground(borderColor).Background(fillColor)
	fill := tcell.StyleDefault.Foreground(inkBlack).Background(fillColor)
	render.Panel(s, x, y, w, h, border, fill)
	render.TextWrapped(s, x+2, y+2, w-4, h-4,
		scen.FeedbackText(g.session.LastChoice), fill.Bold(true))
}

func (g *Game) drawEnd(s render.Surface) {
	render.Blit(s, 0, 0, g.endBG)
	render.TextCentered(s, ScreenCols/2, ScreenRows/3,
		"You've finished!", screenBase.Bold(true))
	render.TextCentered(s, ScreenCols/2, hintRow,
		"[r] play again    [q] exit",
		tcell.StyleDefault.Foreground(hintGray).Background(skyBlue))
}

// pulseScale follows the feedback panel pulse: 1.0 -> PulseMaxScale ->
// 1.0 over each PulsePeriod since entering FEEDBACK
func (g *Game) pulseScale() float64 {
	elapsed := g.now().Sub(g.session.StateEntry)
	if elapsed < 0 {
		return 1.0
	}
	phase := float64(elapsed%PulsePeriod) / float64(PulsePeriod)
	return 1.0 + (PulseMaxScale-1.0)*math.Sin(phase*math.Pi)
}
