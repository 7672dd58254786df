package system

import (
	"github.com/lowrez/gridfire/engine"
	"github.com/lowrez/gridfire/input"
	"github.com/lowrez/gridfire/parameter"
	"github.com/lowrez/gridfire/physics"
	"github.com/lowrez/gridfire/vmath"
)

// Chase steers every enemy straight at the player and applies contact
// damage. Each enemy reads only player state and the static grid, never
// another enemy, so iteration order cannot affect the outcome.
type Chase struct{}

func NewChase() *Chase {
	return &Chase{}
}

func (c *Chase) Update(w *engine.World, in input.Snapshot, dt float64) {
	player := w.Player.Pos

	for _, h := range w.Enemies.Live() {
		e, ok := w.Enemies.Get(h)
		if !ok {
			continue
		}

		// Horizontal-plane pursuit; enemies neither fly nor sink
		dx := player.X - e.Pos.X
		dz := player.Z - e.Pos.Z
		dist := vmath.Magnitude(dx, dz)

		// Chase band: no movement beyond perception, none at point-blank
		// range where a step would overshoot through the player
		if dist > parameter.EnemyChaseMin && dist < parameter.EnemyPerceptionRange {
			nx, nz := vmath.Normalize2D(dx, dz)
			step := e.Speed * dt
			e.Pos.X, e.Pos.Z, _, _ = physics.SlideMove(
				e.Pos.X, e.Pos.Z, nx*step, nz*step, w.Grid.IsBlocked)
		}

		// Contact damage runs on its own threshold, independent of the
		// movement suppression band
		if dist < parameter.EnemyContactRange {
			w.State.Damage(parameter.EnemyContactDamageRate * dt)
			if w.State.Health() <= 0 {
				w.State.MarkLost()
			}
		}
	}
}
