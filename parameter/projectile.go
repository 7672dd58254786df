package parameter

// Projectile Flight
const (
	// ProjectileSpeed is flight speed in world units/sec
	ProjectileSpeed = 24.0

	// ProjectileLifespan is seconds before an unobstructed projectile expires
	ProjectileLifespan = 2.0

	// ProjectileMuzzleOffset is spawn displacement along the aim direction
	// Keeps a fresh projectile clear of the firer's own position
	ProjectileMuzzleOffset = 0.8
)

// Projectile Hit Detection
const (
	// ProjectileHitRadius is the horizontal hit distance against an enemy
	ProjectileHitRadius = 0.6

	// ProjectileHitBand is the vertical half-extent of the enemy hitbox
	// Together with ProjectileHitRadius this approximates a cylinder
	ProjectileHitBand = 0.8
)

// Scoring
const (
	// KillScore is awarded once per enemy destroyed
	KillScore = 100
)
