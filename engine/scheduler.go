package engine

import (
	"github.com/lowrez/gridfire/input"
	"github.com/lowrez/gridfire/parameter"
)

// System advances one gameplay concern by dt seconds
type System interface {
	Update(w *World, in input.Snapshot, dt float64)
}

// Scheduler drives one simulation step per rendered frame. It owns dt
// computation and clamping; systems run in a fixed pipeline order, which is
// the tick's entire concurrency contract.
type Scheduler struct {
	world   *World
	clock   Clock
	systems []System

	last    int64 // unix nanos of the previous frame, 0 before the first
	paused  bool
	started bool
}

// NewScheduler wires a world to its system pipeline. Pipeline order is the
// caller's responsibility: motion, then AI, then projectiles.
func NewScheduler(w *World, clock Clock, systems ...System) *Scheduler {
	return &Scheduler{
		world:   w,
		clock:   clock,
		systems: systems,
	}
}

// SetPaused freezes gameplay time. Unpausing does not replay the paused
// interval; the next tick starts a fresh delta.
func (s *Scheduler) SetPaused(paused bool) {
	s.paused = paused
	if !paused {
		s.started = false
	}
}

// Paused reports whether gameplay time is frozen
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Tick runs one simulation step and returns the clamped dt that was applied.
// The first tick after start or unpause only establishes the time base.
// When the game state is terminal the world is frozen: dt still advances the
// time base but no system runs.
func (s *Scheduler) Tick(in input.Snapshot) float64 {
	now := s.clock.Now()

	if s.paused {
		return 0
	}
	if !s.started {
		s.started = true
		s.last = now.UnixNano()
		return 0
	}

	dt := float64(now.UnixNano()-s.last) / 1e9
	s.last = now.UnixNano()

	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	if s.world.State.IsTerminal() || dt == 0 {
		return dt
	}

	for _, sys := range s.systems {
		sys.Update(s.world, in, dt)
	}

	return dt
}
