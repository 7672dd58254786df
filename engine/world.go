package engine

import (
	"math/rand"

	"github.com/lowrez/gridfire/grid"
	"github.com/lowrez/gridfire/parameter"
	"github.com/lowrez/gridfire/vmath"
)

// World aggregates everything one game instance simulates: the static grid,
// the player, the enemy and projectile arenas, and the game state. It has
// exactly one writer pipeline (the scheduler's system chain); no locks.
type World struct {
	Grid        *grid.Grid
	Player      Player
	Enemies     Arena[Enemy]
	Projectiles Arena[Projectile]
	State       *GameState

	rng *rand.Rand
}

// NewWorld builds a world from a parsed level. Enemies spawn at the level's
// markers with speed rolled once from the seeded source.
func NewWorld(lvl *grid.Level, seed int64) *World {
	w := &World{
		Grid:  lvl.Grid,
		State: NewGameState(),
		rng:   rand.New(rand.NewSource(seed)),
		Player: Player{
			Pos: vmath.Vec3F{
				X: lvl.PlayerStart.X,
				Y: parameter.PlayerEyeHeight,
				Z: lvl.PlayerStart.Z,
			},
		},
	}

	for _, sp := range lvl.EnemySpawns {
		w.SpawnEnemy(sp.X, sp.Z)
	}

	return w
}

// SpawnEnemy places an enemy with per-spawn speed variance
func (w *World) SpawnEnemy(x, z float64) Handle {
	return w.Enemies.Insert(Enemy{
		Pos:    vmath.Vec3F{X: x, Y: parameter.EnemyHeight, Z: z},
		Health: parameter.EnemyInitialHealth,
		Speed:  parameter.EnemyBaseSpeed + w.rng.Float64()*parameter.EnemySpeedJitter,
	})
}

// Rand exposes the world's deterministic random source
func (w *World) Rand() *rand.Rand {
	return w.rng
}
