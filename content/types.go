package content

import (
	"github.com/lixenwraith/good-manners/asset"
)

// Choice is the learner's answer to a scenario prompt
type Choice uint8

const (
	ChoiceNone Choice = iota
	ChoiceGood
	ChoiceBad
)

// String returns a human-readable choice name
func (c Choice) String() string {
	switch c {
	case ChoiceGood:
		return "good"
	case ChoiceBad:
		return "bad"
	default:
		return "none"
	}
}

// Good reports whether the choice was the positive one; ChoiceNone
// counts as bad, matching the safe default of the outcome accessors
func (c Choice) Good() bool {
	return c == ChoiceGood
}

// Outcome is the feedback half of a scenario, keyed by the learner's choice
type Outcome struct {
	FeedbackText string
	Audio        string

	// Optional frame animation; FrameCount <= 0 or an empty pattern
	// disables it for this outcome.
	FramesPattern string
	FrameCount    int
}

// Scenario is one prompt/choice/feedback unit of content. Immutable once
// constructed; play state lives on the session, not here.
type Scenario struct {
	PromptText  string
	PromptAudio string

	// Backgrounds degrade to blank placeholders, never fail construction
	PromptImage   *asset.Image
	FeedbackImage *asset.Image

	Positive Outcome
	Negative Outcome
}

// Outcome returns the outcome record for a choice. ChoiceNone should not
// occur under the state machine contract; it defaults to the negative
// outcome rather than failing.
func (s *Scenario) Outcome(c Choice) Outcome {
	if c == ChoiceGood {
		return s.Positive
	}
	return s.Negative
}

// FeedbackText returns the feedback text for a choice
func (s *Scenario) FeedbackText(c Choice) string {
	return s.Outcome(c).FeedbackText
}

// FeedbackAudio returns the feedback audio path for a choice
func (s *Scenario) FeedbackAudio(c Choice) string {
	return s.Outcome(c).Audio
}
