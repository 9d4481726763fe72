package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/good-manners/asset"
	"github.com/lixenwraith/good-manners/content"
	"github.com/lixenwraith/good-manners/render"
)

// fakeAudio records play/stop calls
type fakeAudio struct {
	played  []string
	stops   int
	current string
}

func (f *fakeAudio) Play(path string) {
	f.played = append(f.played, path)
	f.current = path
}

func (f *fakeAudio) Stop() {
	f.stops++
	f.current = ""
}

// testClock is a manually-advanced clock
type testClock struct {
	now time.Time
}

func (c *testClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func twoScenarios(t *testing.T) []content.Scenario {
	t.Helper()
	body := `[
		{
			"prompt_text": "Scenario one?",
			"prompt_audio": "one.wav",
			"positive": {"feedback_text": "One good!", "audio": "one_pos.wav"},
			"negative": {"feedback_text": "One bad.", "audio": "one_neg.wav"}
		},
		{
			"prompt_text": "Scenario two?",
			"prompt_audio": "two.wav",
			"positive": {"feedback_text": "Two good!", "audio": "two_pos.wav"},
			"negative": {"feedback_text": "Two bad.", "audio": "two_neg.wav"}
		}
	]`
	path := filepath.Join(t.TempDir(), "scenarios.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write scenarios: %v", err)
	}
	scenarios, err := content.Load(path, asset.NewStore(""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return scenarios
}

func newTestGame(t *testing.T) (*Game, *fakeAudio, *testClock) {
	t.Helper()
	audio := &fakeAudio{}
	clock := &testClock{now: time.Unix(1000, 0)}
	g := New(twoScenarios(t), asset.NewStore(""), audio, "")
	g.now = func() time.Time { return clock.now }
	return g, audio, clock
}

// startPrompt ticks once and clears the input debounce
func startPrompt(g *Game, clock *testClock) {
	g.Update()
	clock.advance(PromptInputDelay + time.Millisecond)
}

func TestUpdate_PromptAudioPlaysOncePerVisit(t *testing.T) {
	g, audio, _ := newTestGame(t)

	g.Update()
	g.Update()
	g.Update()

	if len(audio.played) != 1 || audio.played[0] != "one.wav" {
		t.Errorf("Prompt audio should play exactly once, played %v", audio.played)
	}
	if audio.stops != 1 {
		t.Errorf("Other audio should be stopped before the prompt clip, stops=%d", audio.stops)
	}
}

func TestChoiceAvailable_DebouncedAfterAudioStart(t *testing.T) {
	g, _, clock := newTestGame(t)

	if g.ChoiceAvailable() {
		t.Error("Choice must not be available before the first tick")
	}

	g.Update()
	if g.ChoiceAvailable() {
		t.Error("Choice must not be available during the debounce window")
	}

	clock.advance(PromptInputDelay - time.Millisecond)
	if g.ChoiceAvailable() {
		t.Error("Choice must not be available at 1499 ms")
	}

	clock.advance(2 * time.Millisecond)
	if !g.ChoiceAvailable() {
		t.Error("Choice must be available after the debounce window")
	}
}

func TestChoose_IgnoredDuringDebounce(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Update()

	g.Choose(true)
	if got := g.Session().State; got != StatePrompt {
		t.Errorf("Premature choice must be ignored, state = %v", got)
	}
}

func TestChoose_EntersFeedbackWithOutcome(t *testing.T) {
	g, audio, clock := newTestGame(t)
	startPrompt(g, clock)

	g.Choose(true)
	sess := g.Session()
	if sess.State != StateFeedback {
		t.Fatalf("State = %v, want FEEDBACK", sess.State)
	}
	if sess.LastChoice != content.ChoiceGood {
		t.Errorf("LastChoice = %v", sess.LastChoice)
	}
	if audio.current != "one_pos.wav" {
		t.Errorf("Feedback audio = %q", audio.current)
	}
	if got := g.scenarios[sess.Index].FeedbackText(sess.LastChoice); got != "One good!" {
		t.Errorf("Feedback text = %q", got)
	}
}

func TestChoose_BadOutcome(t *testing.T) {
	g, audio, clock := newTestGame(t)
	startPrompt(g, clock)

	g.Choose(false)
	sess := g.Session()
	if sess.LastChoice != content.ChoiceBad {
		t.Errorf("LastChoice = %v", sess.LastChoice)
	}
	if audio.current != "one_neg.wav" {
		t.Errorf("Feedback audio = %q", audio.current)
	}
	if got := g.scenarios[sess.Index].FeedbackText(sess.LastChoice); got != "One bad." {
		t.Errorf("Feedback text = %q", got)
	}
}

func TestChoose_IgnoredOutsidePrompt(t *testing.T) {
	g, _, clock := newTestGame(t)
	startPrompt(g, clock)
	g.Choose(true)

	// A second choice while in FEEDBACK must be a no-op
	g.Choose(false)
	if got := g.Session().LastChoice; got != content.ChoiceGood {
		t.Errorf("Choice in FEEDBACK mutated state: %v", got)
	}
}

func TestFeedback_NoAutoAdvanceBeforeDelay(t *testing.T) {
	g, _, clock := newTestGame(t)
	startPrompt(g, clock)
	g.Choose(true)

	clock.advance(FeedbackDuration - time.Millisecond)
	g.Update()
	if got := g.Session().State; got != StateFeedback {
		t.Errorf("Advanced early: %v", got)
	}
}

func TestFeedback_AutoAdvancesToNextPrompt(t *testing.T) {
	g, audio, clock := newTestGame(t)
	startPrompt(g, clock)
	g.Choose(true)

	clock.advance(FeedbackDuration + time.Millisecond)
	g.Update()

	sess := g.Session()
	if sess.State != StatePrompt {
		t.Fatalf("State = %v, want PROMPT", sess.State)
	}
	if sess.Index != 1 {
		t.Errorf("Index = %d, want 1", sess.Index)
	}
	if sess.PromptAudioPlayed {
		t.Error("Prompt audio flag must reset on advance")
	}

	// Next tick starts the second scenario's prompt audio
	g.Update()
	if audio.current != "two.wav" {
		t.Errorf("Second prompt audio = %q", audio.current)
	}
}

func TestEndToEnd_TwoScenarios(t *testing.T) {
	g, audio, clock := newTestGame(t)

	sess := g.Session()
	if sess.Index != 0 || sess.State != StatePrompt {
		t.Fatalf("Session must start at index 0 in PROMPT, got %+v", sess)
	}

	// Scenario 0: choose good
	startPrompt(g, clock)
	g.Choose(true)
	if got := g.scenarios[0].FeedbackText(g.Session().LastChoice); got != "One good!" {
		t.Errorf("Feedback = %q", got)
	}

	clock.advance(FeedbackDuration + time.Millisecond)
	g.Update()
	sess = g.Session()
	if sess.State != StatePrompt || sess.Index != 1 {
		t.Fatalf("After delay: state=%v index=%d, want PROMPT/1", sess.State, sess.Index)
	}

	// Scenario 1: choose bad, run out the clock
	startPrompt(g, clock)
	g.Choose(false)
	clock.advance(FeedbackDuration + time.Millisecond)
	g.Update()

	if got := g.Session().State; got != StateEnd {
		t.Fatalf("Session should be in END, got %v", got)
	}
	if audio.current != "" {
		t.Errorf("Audio should be stopped at END, playing %q", audio.current)
	}
}

func TestRestart_OnlyFromEnd(t *testing.T) {
	g, _, clock := newTestGame(t)

	// Ignored while in PROMPT
	g.Restart()
	if got := g.Session().State; got != StatePrompt {
		t.Fatalf("Restart in PROMPT changed state: %v", got)
	}

	// Drive to END
	for i := 0; i < 2; i++ {
		startPrompt(g, clock)
		g.Choose(true)
		clock.advance(FeedbackDuration + time.Millisecond)
		g.Update()
	}
	if got := g.Session().State; got != StateEnd {
		t.Fatalf("Expected END, got %v", got)
	}

	g.Restart()
	sess := g.Session()
	if sess.State != StatePrompt || sess.Index != 0 {
		t.Errorf("Restart: state=%v index=%d, want PROMPT/0", sess.State, sess.Index)
	}
	if sess.PromptAudioPlayed {
		t.Error("Restart must clear the prompt audio flag")
	}
}

func TestHandleEvent_Keys(t *testing.T) {
	g, _, clock := newTestGame(t)
	startPrompt(g, clock)

	if !g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone)) {
		t.Error("Choice key must not terminate the session")
	}
	if got := g.Session().State; got != StateFeedback {
		t.Errorf("'g' should choose good, state = %v", got)
	}

	if g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape must request exit in any state")
	}
	if g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("'q' must request exit")
	}
	if !g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)) {
		t.Error("Unbound key must be ignored")
	}
}

func TestDraw_StatesRenderWithoutMutation(t *testing.T) {
	g, _, clock := newTestGame(t)
	surface := render.NewBuffer(ScreenCols, ScreenRows)

	startPrompt(g, clock)
	before := g.Session()
	g.Draw(surface)
	g.Draw(surface)
	if g.Session() != before {
		t.Error("Draw must not mutate session state")
	}

	// Prompt text appears wrapped on screen
	found := false
	for y := 0; y < ScreenRows; y++ {
		if containsIgnoringSpace(surface.Row(y), "Scenario one?") {
			found = true
		}
	}
	if !found {
		t.Error("Prompt text not rendered")
	}

	g.Choose(true)
	g.Draw(surface)
	found = false
	for y := 0; y < ScreenRows; y++ {
		if containsIgnoringSpace(surface.Row(y), "One good!") {
			found = true
		}
	}
	if !found {
		t.Error("Feedback text not rendered")
	}
}

func containsIgnoringSpace(row, want string) bool {
	for i := 0; i+len(want) <= len(row); i++ {
		if row[i:i+len(want)] == want {
			return true
		}
	}
	return false
}
