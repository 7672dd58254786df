package input

import (
	"time"

	"github.com/lowrez/gridfire/parameter"
)

// State tracks held actions between ticks. Terminals deliver key repeats,
// not key-up events, so a hold is a press seen within the repeat window.
type State struct {
	lastPress   [actionCount]time.Time
	firePending bool
}

// NewState creates an empty input state
func NewState() *State {
	return &State{}
}

// Press records an action event at the given time
func (st *State) Press(a Action, now time.Time) {
	if a >= actionCount {
		return
	}
	if a == ActionFire {
		st.firePending = true
		return
	}
	st.lastPress[a] = now
}

// Clear drops all held actions and pending fires
// Called on pause/focus loss so no residual motion survives regaining control
func (st *State) Clear() {
	st.lastPress = [actionCount]time.Time{}
	st.firePending = false
}

// Snapshot samples control state for one tick and consumes the fire edge
func (st *State) Snapshot(now time.Time) Snapshot {
	held := func(a Action) bool {
		t := st.lastPress[a]
		return !t.IsZero() && now.Sub(t) < parameter.KeyHoldWindow
	}

	s := Snapshot{
		Forward:     held(ActionForward),
		Back:        held(ActionBack),
		StrafeLeft:  held(ActionStrafeLeft),
		StrafeRight: held(ActionStrafeRight),
		TurnLeft:    held(ActionTurnLeft),
		TurnRight:   held(ActionTurnRight),
		Fire:        st.firePending,
	}
	st.firePending = false
	return s
}
