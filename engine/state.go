package engine

import (
	"github.com/lowrez/gridfire/parameter"
)

// Terminal is the absorbing end-of-game marker
type Terminal uint8

const (
	TerminalNone Terminal = iota
	TerminalLost
	TerminalWon
)

// GameState owns health, ammo, score and the terminal flag. All mutation
// goes through its methods; once terminal, every method is a no-op, which
// makes double-fired transitions harmless.
type GameState struct {
	health   float64
	ammo     int
	score    int
	terminal Terminal
}

// StateSnapshot is the read-only view handed to display sinks
// Display formatting (negative-health clamping, thresholds) is the sink's job
type StateSnapshot struct {
	Health   float64
	Ammo     int
	Score    int
	Terminal Terminal
}

// NewGameState creates a fresh playing state
func NewGameState() *GameState {
	return &GameState{
		health: parameter.PlayerStartHealth,
		ammo:   parameter.PlayerStartAmmo,
	}
}

func (s *GameState) Health() float64    { return s.health }
func (s *GameState) Ammo() int          { return s.ammo }
func (s *GameState) Score() int         { return s.score }
func (s *GameState) Terminal() Terminal { return s.terminal }

// IsTerminal reports whether the game has ended
func (s *GameState) IsTerminal() bool {
	return s.terminal != TerminalNone
}

// Snapshot returns the current display view
func (s *GameState) Snapshot() StateSnapshot {
	return StateSnapshot{
		Health:   s.health,
		Ammo:     s.ammo,
		Score:    s.score,
		Terminal: s.terminal,
	}
}

// MarkWon transitions to Won; a no-op if already terminal
func (s *GameState) MarkWon() {
	if s.terminal != TerminalNone {
		return
	}
	s.terminal = TerminalWon
}

// MarkLost transitions to Lost; a no-op if already terminal
func (s *GameState) MarkLost() {
	if s.terminal != TerminalNone {
		return
	}
	s.terminal = TerminalLost
}

// Damage reduces health, clamping at zero. No upward clamp exists; health
// has no cap during updates.
func (s *GameState) Damage(amount float64) {
	if s.terminal != TerminalNone {
		return
	}
	s.health -= amount
	if s.health < 0 {
		s.health = 0
	}
}

// SpendAmmo consumes one round if any remain and the game is live
// Returns false without side effect otherwise
func (s *GameState) SpendAmmo() bool {
	if s.terminal != TerminalNone || s.ammo <= 0 {
		return false
	}
	s.ammo--
	return true
}

// AddScore credits points; a no-op once terminal
func (s *GameState) AddScore(points int) {
	if s.terminal != TerminalNone {
		return
	}
	s.score += points
}
