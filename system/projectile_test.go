package system

import (
	"math"
	"testing"

	"github.com/lowrez/gridfire/input"
	"github.com/lowrez/gridfire/parameter"
)

// TestProjectileFireSpendsOneRound verifies a successful fire decrements
// ammo by exactly one and spawns one round at the muzzle offset
func TestProjectileFireSpendsOneRound(t *testing.T) {
	w := newWorld(t, openLevel(8, 30))
	s := NewProjectiles()

	ammo := w.State.Ammo()
	s.Update(w, input.Snapshot{Fire: true}, dt)

	if w.State.Ammo() != ammo-1 {
		t.Errorf("Expected ammo %d, got %d", ammo-1, w.State.Ammo())
	}
	if w.Projectiles.Len() != 1 {
		t.Fatalf("Expected 1 projectile, got %d", w.Projectiles.Len())
	}

	h := w.Projectiles.Live()[0]
	p, _ := w.Projectiles.Get(h)
	fx, fz := w.Player.Forward()
	wantX := w.Player.Pos.X + fx*parameter.ProjectileMuzzleOffset
	wantZ := w.Player.Pos.Z + fz*parameter.ProjectileMuzzleOffset
	if math.Abs(p.Pos.X-wantX) > 1e-9 || math.Abs(p.Pos.Z-wantZ) > 1e-9 {
		t.Errorf("Expected spawn at muzzle offset (%v, %v), got (%v, %v)",
			wantX, wantZ, p.Pos.X, p.Pos.Z)
	}
	if p.Lifespan != parameter.ProjectileLifespan {
		t.Errorf("Expected full lifespan, got %v", p.Lifespan)
	}
}

// TestProjectileFireAtZeroAmmo verifies firing empty is a no-op
func TestProjectileFireAtZeroAmmo(t *testing.T) {
	w := newWorld(t, openLevel(8, 30))
	s := NewProjectiles()

	for w.State.Ammo() > 0 {
		w.State.SpendAmmo()
	}
	s.Update(w, input.Snapshot{Fire: true}, dt)

	if w.Projectiles.Len() != 0 {
		t.Errorf("Expected no projectile at zero ammo, got %d", w.Projectiles.Len())
	}
	if w.State.Ammo() != 0 {
		t.Errorf("Expected ammo to stay 0, got %d", w.State.Ammo())
	}
}

// TestProjectileFireWhileTerminal verifies firing after game end is a no-op
func TestProjectileFireWhileTerminal(t *testing.T) {
	w := newWorld(t, openLevel(8, 30))
	s := NewProjectiles()

	w.State.MarkWon()
	ammo := w.State.Ammo()
	s.Update(w, input.Snapshot{Fire: true}, dt)

	if w.Projectiles.Len() != 0 || w.State.Ammo() != ammo {
		t.Errorf("Expected fire suppressed once terminal, projectiles=%d ammo=%d",
			w.Projectiles.Len(), w.State.Ammo())
	}
}

// TestProjectileLifetime verifies an unobstructed round is removed at
// elapsed simulated time >= lifespan and not before
func TestProjectileLifetime(t *testing.T) {
	w := newWorld(t, openLevel(8, 60))
	s := NewProjectiles()

	s.Update(w, input.Snapshot{Fire: true}, dt)
	if w.Projectiles.Len() != 1 {
		t.Fatal("Expected one live projectile")
	}

	const step = 0.1
	ticks := int(parameter.ProjectileLifespan / step)

	for i := 0; i < ticks-1; i++ {
		s.Update(w, input.Snapshot{}, step)
	}
	if w.Projectiles.Len() != 1 {
		t.Fatalf("Expected projectile alive before lifespan elapsed")
	}

	s.Update(w, input.Snapshot{}, step)
	if w.Projectiles.Len() != 0 {
		t.Error("Expected projectile removed once lifespan elapsed")
	}
}

// TestProjectileWallImpact verifies a round is consumed by the first wall
// it crosses, with no score change
func TestProjectileWallImpact(t *testing.T) {
	w := newWorld(t, openLevel(8, 5))
	s := NewProjectiles()

	s.Update(w, input.Snapshot{Fire: true}, dt)
	for i := 0; i < 100 && w.Projectiles.Len() > 0; i++ {
		s.Update(w, input.Snapshot{}, dt)
	}

	if w.Projectiles.Len() != 0 {
		t.Error("Expected projectile consumed by the wall")
	}
	if w.State.Score() != 0 {
		t.Errorf("Expected no score from wall impact, got %d", w.State.Score())
	}
}

// TestProjectileSpawnTickNotTested verifies a round fired this tick is not
// collision-tested until the next update pass
func TestProjectileSpawnTickNotTested(t *testing.T) {
	w := newWorld(t, openLevel(8, 30))
	s := NewProjectiles()

	// Enemy sitting exactly at the muzzle
	fx, fz := w.Player.Forward()
	h := placeEnemy(w,
		w.Player.Pos.X+fx*parameter.ProjectileMuzzleOffset,
		w.Player.Pos.Z+fz*parameter.ProjectileMuzzleOffset, 4.0)

	s.Update(w, input.Snapshot{Fire: true}, dt)
	e, _ := w.Enemies.Get(h)
	if e.Health != parameter.EnemyInitialHealth {
		t.Errorf("Expected no hit on the spawn tick, health %d", e.Health)
	}

	s.Update(w, input.Snapshot{}, dt)
	e, _ = w.Enemies.Get(h)
	if e.Health != parameter.EnemyInitialHealth-1 {
		t.Errorf("Expected hit on the following tick, health %d", e.Health)
	}
	if w.Projectiles.Len() != 0 {
		t.Error("Expected projectile destroyed by the hit")
	}
}

// TestProjectileKillAccounting verifies an enemy dies after exactly three
// distinct hits and the kill bonus is credited once
func TestProjectileKillAccounting(t *testing.T) {
	w := newWorld(t, openLevel(8, 30))
	s := NewProjectiles()

	fx, fz := w.Player.Forward()
	h := placeEnemy(w, w.Player.Pos.X+fx*8, w.Player.Pos.Z+fz*8, 4.0)

	for hit := 1; hit <= parameter.EnemyInitialHealth; hit++ {
		s.Update(w, input.Snapshot{Fire: true}, dt)
		for i := 0; i < 200 && w.Projectiles.Len() > 0; i++ {
			s.Update(w, input.Snapshot{}, dt)
		}

		e, alive := w.Enemies.Get(h)
		if hit < parameter.EnemyInitialHealth {
			if !alive {
				t.Fatalf("Expected enemy alive after %d hits", hit)
			}
			if e.Health != parameter.EnemyInitialHealth-hit {
				t.Fatalf("Expected health %d after %d hits, got %d",
					parameter.EnemyInitialHealth-hit, hit, e.Health)
			}
			if w.State.Score() != 0 {
				t.Fatalf("Expected no score before the kill, got %d", w.State.Score())
			}
		} else {
			if alive {
				t.Fatal("Expected enemy removed on the third hit")
			}
			if w.State.Score() != parameter.KillScore {
				t.Fatalf("Expected score %d exactly once, got %d",
					parameter.KillScore, w.State.Score())
			}
		}
	}
}

// TestProjectileSingleHitPerRound verifies overlapping enemies cost a round
// only one hit: the first in arena order takes damage, the other is untouched
func TestProjectileSingleHitPerRound(t *testing.T) {
	w := newWorld(t, openLevel(8, 30))
	s := NewProjectiles()

	fx, fz := w.Player.Forward()
	ex := w.Player.Pos.X + fx*8
	ez := w.Player.Pos.Z + fz*8
	h1 := placeEnemy(w, ex, ez, 4.0)
	h2 := placeEnemy(w, ex, ez, 4.0)

	s.Update(w, input.Snapshot{Fire: true}, dt)
	for i := 0; i < 200 && w.Projectiles.Len() > 0; i++ {
		s.Update(w, input.Snapshot{}, dt)
	}

	e1, _ := w.Enemies.Get(h1)
	e2, _ := w.Enemies.Get(h2)
	if e1.Health != parameter.EnemyInitialHealth-1 {
		t.Errorf("Expected first enemy hit once, health %d", e1.Health)
	}
	if e2.Health != parameter.EnemyInitialHealth {
		t.Errorf("Expected second enemy untouched, health %d", e2.Health)
	}
}

// TestProjectileVerticalBandMiss verifies the cylinder hitbox: a round
// passing outside the vertical band does not register
func TestProjectileVerticalBandMiss(t *testing.T) {
	w := newWorld(t, openLevel(8, 30))
	s := NewProjectiles()

	fx, fz := w.Player.Forward()
	h := placeEnemy(w, w.Player.Pos.X+fx*8, w.Player.Pos.Z+fz*8, 4.0)
	e, _ := w.Enemies.Get(h)
	e.Pos.Y = w.Player.Pos.Y + parameter.ProjectileHitBand + 0.1

	s.Update(w, input.Snapshot{Fire: true}, dt)
	for i := 0; i < 300 && w.Projectiles.Len() > 0; i++ {
		s.Update(w, input.Snapshot{}, dt)
	}

	e, _ = w.Enemies.Get(h)
	if e.Health != parameter.EnemyInitialHealth {
		t.Errorf("Expected miss outside the vertical band, health %d", e.Health)
	}
}
