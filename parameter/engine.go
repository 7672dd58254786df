package parameter

import (
	"time"
)

// Frame Scheduling
const (
	// TickInterval is the target frame cadence (~60 FPS)
	TickInterval = 16 * time.Millisecond

	// MaxFrameDelta is the upper bound on a single simulation step in seconds
	// Bounds worst-case per-tick travel after the process is suspended
	MaxFrameDelta = 0.1
)

// Input Handling
const (
	// KeyHoldWindow is how long a key counts as held after its last event
	// Terminals report no key-up; holds are inferred from the repeat stream
	KeyHoldWindow = 250 * time.Millisecond
)
