package game

import (
	"github.com/gdamore/tcell/v2"
)

// HandleEvent maps terminal input onto the four controls. It returns
// false when the session should terminate; exit is available in every
// state. Choice keys outside PROMPT and restart outside END are no-ops.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
		return false
	}
	if key.Key() != tcell.KeyRune {
		return true
	}

	switch key.Rune() {
	case 'g', 'y':
		g.Choose(true)
	case 'b', 'n':
		g.Choose(false)
	case 'r':
		g.Restart()
	case 'q':
		return false
	}

	return true
}
