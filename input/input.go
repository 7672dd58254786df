package input

import (
	"math"
)

// Action is a logical game control
type Action uint8

const (
	ActionForward Action = iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionFire
	ActionPause
	ActionQuit
	actionCount
)

// Snapshot is the per-tick view of control state consumed by the simulation.
// Gameplay systems treat it as a value; it never changes mid-tick.
type Snapshot struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool

	// Fire is edge-triggered: one key press yields exactly one true snapshot
	Fire bool
}

// MoveAxes returns the local-frame movement input (lateral, forward),
// normalized so diagonal input is no faster than axis-aligned
func (s Snapshot) MoveAxes() (x, z float64) {
	if s.StrafeRight {
		x++
	}
	if s.StrafeLeft {
		x--
	}
	if s.Forward {
		z++
	}
	if s.Back {
		z--
	}
	if x != 0 && z != 0 {
		inv := 1 / math.Sqrt(x*x+z*z)
		x *= inv
		z *= inv
	}
	return x, z
}

// TurnAxis returns -1, 0, or 1 for held turn input
func (s Snapshot) TurnAxis() float64 {
	var a float64
	if s.TurnRight {
		a++
	}
	if s.TurnLeft {
		a--
	}
	return a
}
