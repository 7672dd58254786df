package system

import (
	"math"

	"github.com/lowrez/gridfire/engine"
	"github.com/lowrez/gridfire/input"
	"github.com/lowrez/gridfire/parameter"
	"github.com/lowrez/gridfire/vmath"
)

// Projectiles integrates live rounds, resolves wall and enemy impacts, and
// handles fire intents. Fire is processed after the update pass: a round
// spawned this tick is first integrated and tested on the next tick.
type Projectiles struct{}

func NewProjectiles() *Projectiles {
	return &Projectiles{}
}

func (s *Projectiles) Update(w *engine.World, in input.Snapshot, dt float64) {
	for _, h := range w.Projectiles.Live() {
		p, ok := w.Projectiles.Get(h)
		if !ok {
			continue
		}

		p.Pos = vmath.V3FAdd(p.Pos, vmath.V3FScale(p.Vel, dt))
		p.Lifespan -= dt

		// Wall impact and expiry take precedence over enemy hits
		if p.Lifespan <= 0 || w.Grid.IsBlocked(p.Pos.X, p.Pos.Z) {
			w.Projectiles.Remove(h)
			continue
		}

		s.resolveHit(w, h, p)
	}

	if in.Fire {
		s.fire(w)
	}
}

// resolveHit tests a round against every live enemy in arena order and
// applies at most one hit. The round is destroyed on any impact, lethal
// or not.
func (s *Projectiles) resolveHit(w *engine.World, h engine.Handle, p *engine.Projectile) {
	for _, eh := range w.Enemies.Live() {
		e, ok := w.Enemies.Get(eh)
		if !ok {
			continue
		}

		// Cylindrical hitbox: vertical band plus horizontal radius
		if math.Abs(p.Pos.Y-e.Pos.Y) >= parameter.ProjectileHitBand {
			continue
		}
		if vmath.Magnitude(p.Pos.X-e.Pos.X, p.Pos.Z-e.Pos.Z) >= parameter.ProjectileHitRadius {
			continue
		}

		e.Health--
		if e.Health <= 0 {
			if w.Enemies.Remove(eh) {
				w.State.AddScore(parameter.KillScore)
			}
		}
		w.Projectiles.Remove(h)
		return
	}
}

// fire spawns one round along the player's aim, gated by ammo and the
// terminal flag. The muzzle offset keeps it clear of the firer.
func (s *Projectiles) fire(w *engine.World) {
	if !w.State.SpendAmmo() {
		return
	}

	fx, fz := w.Player.Forward()
	aim := vmath.Vec3F{X: fx, Z: fz}

	w.Projectiles.Insert(engine.Projectile{
		Pos:      vmath.V3FAdd(w.Player.Pos, vmath.V3FScale(aim, parameter.ProjectileMuzzleOffset)),
		Vel:      vmath.V3FScale(aim, parameter.ProjectileSpeed),
		Lifespan: parameter.ProjectileLifespan,
	})
}
