package game

import (
	"time"

	"github.com/lixenwraith/good-manners/content"
)

// State identifies the presentation state machine position
type State uint8

const (
	StatePrompt State = iota
	StateFeedback
	StateEnd
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StatePrompt:
		return "PROMPT"
	case StateFeedback:
		return "FEEDBACK"
	case StateEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// Session holds all mutable presentation state. Scenarios themselves are
// immutable; the last choice lives here, keyed to the current index.
type Session struct {
	Index      int
	State      State
	StateEntry time.Time

	PromptAudioPlayed bool
	PromptAudioStart  time.Time

	LastChoice content.Choice
}
