package input

import (
	"github.com/gdamore/tcell/v2"
)

// specialKeys maps non-rune keys to actions
var specialKeys = map[tcell.Key]Action{
	tcell.KeyUp:     ActionForward,
	tcell.KeyDown:   ActionBack,
	tcell.KeyLeft:   ActionTurnLeft,
	tcell.KeyRight:  ActionTurnRight,
	tcell.KeyEscape: ActionPause,
	tcell.KeyCtrlC:  ActionQuit,
	tcell.KeyCtrlQ:  ActionQuit,
}

// runeKeys maps rune keys to actions
var runeKeys = map[rune]Action{
	'w': ActionForward,
	's': ActionBack,
	'a': ActionStrafeLeft,
	'd': ActionStrafeRight,
	'q': ActionTurnLeft,
	'e': ActionTurnRight,
	' ': ActionFire,
	'p': ActionPause,
}

// ActionForKey translates a tcell key event to a logical action
func ActionForKey(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := runeKeys[ev.Rune()]
		return a, ok
	}
	a, ok := specialKeys[ev.Key()]
	return a, ok
}
