// Package game drives the scenario presentation loop: a PROMPT ->
// FEEDBACK -> END state machine ticked at the display refresh cadence,
// with time-gated transitions and single-slot audio dispatch.
package game

import (
	"time"

	"github.com/lixenwraith/good-manners/anim"
	"github.com/lixenwraith/good-manners/asset"
	"github.com/lixenwraith/good-manners/content"
)

// AudioPort is the slice of the audio player the machine needs.
// *audio.Player satisfies it.
type AudioPort interface {
	Play(path string)
	Stop()
}

// outcomeAnims pairs the two per-scenario animation players
type outcomeAnims struct {
	good *anim.Player
	bad  *anim.Player
}

func (oa outcomeAnims) forChoice(c content.Choice) *anim.Player {
	if c == content.ChoiceGood {
		return oa.good
	}
	return oa.bad
}

// Game owns the scenario list and all presentation state. It is driven
// from a single goroutine: HandleEvent for input, Update once per tick,
// Draw once per frame.
type Game struct {
	scenarios []content.Scenario
	anims     []outcomeAnims
	audio     AudioPort
	endBG     *asset.Image

	session Session
	now     func() time.Time
}

// New builds a game over an already-validated, non-empty scenario list.
// endBackground may be empty; it degrades to the plain backdrop.
func New(scenarios []content.Scenario, store *asset.Store, player AudioPort, endBackground string) *Game {
	g := &Game{
		scenarios: scenarios,
		audio:     player,
		now:       time.Now,
	}

	for _, scen := range scenarios {
		g.anims = append(g.anims, outcomeAnims{
			good: anim.New(store, scen.Positive.FramesPattern, scen.Positive.FrameCount, animCols, animRows),
			bad:  anim.New(store, scen.Negative.FramesPattern, scen.Negative.FrameCount, animCols, animRows),
		})
	}

	if endBackground != "" {
		g.endBG = store.Image(endBackground, ScreenCols, ScreenRows)
	}

	return g
}

// Session returns a copy of the current presentation state
func (g *Game) Session() Session {
	return g.session
}

func (g *Game) current() *content.Scenario {
	if g.session.Index >= len(g.scenarios) {
		return nil
	}
	return &g.scenarios[g.session.Index]
}

// Update advances the state machine by one tick. It is idempotent within
// a tick: state only changes when a time gate or the end-of-list check
// fires.
func (g *Game) Update() {
	now := g.now()

	// End check runs every tick before dispatch
	if g.session.Index >= len(g.scenarios) && g.session.State != StateEnd {
		g.enterEnd(now)
	}

	switch g.session.State {
	case StatePrompt:
		scen := g.current()
		if scen == nil {
			return
		}
		// Prompt audio plays exactly once per visit
		if !g.session.PromptAudioPlayed {
			g.audio.Stop()
			g.audio.Play(scen.PromptAudio)
			g.session.PromptAudioStart = now
			g.session.PromptAudioPlayed = true
		}

	case StateFeedback:
		if now.Sub(g.session.StateEntry) > FeedbackDuration {
			g.advance(now)
		}
	}
}

// ChoiceAvailable reports whether choice input is currently accepted:
// in PROMPT, once PromptInputDelay has elapsed since prompt audio started
func (g *Game) ChoiceAvailable() bool {
	if g.session.State != StatePrompt || !g.session.PromptAudioPlayed {
		return false
	}
	return g.now().Sub(g.session.PromptAudioStart) > PromptInputDelay
}

// Choose records the learner's answer and enters FEEDBACK. Ignored
// outside PROMPT or while the input debounce is still active.
func (g *Game) Choose(good bool) {
	if !g.ChoiceAvailable() {
		return
	}
	scen := g.current()
	if scen == nil {
		return
	}

	choice := content.ChoiceBad
	if good {
		choice = content.ChoiceGood
	}

	now := g.now()
	g.session.LastChoice = choice
	g.session.State = StateFeedback
	g.session.StateEntry = now

	g.audio.Stop()
	g.audio.Play(scen.FeedbackAudio(choice))
	g.anims[g.session.Index].forChoice(choice).Reset(now)
}

// Restart returns to the first scenario. Ignored outside END.
func (g *Game) Restart() {
	if g.session.State != StateEnd {
		return
	}
	g.audio.Stop()
	g.session.Index = 0
	g.session.State = StatePrompt
	g.session.PromptAudioPlayed = false
	g.session.LastChoice = content.ChoiceNone
}

// advance moves to the next scenario after feedback has run its course
func (g *Game) advance(now time.Time) {
	g.audio.Stop()
	g.session.Index++
	g.session.PromptAudioPlayed = false
	if g.session.Index >= len(g.scenarios) {
		g.enterEnd(now)
		return
	}
	g.session.State = StatePrompt
}

func (g *Game) enterEnd(now time.Time) {
	g.audio.Stop()
	g.session.State = StateEnd
	g.session.StateEntry = now
}
