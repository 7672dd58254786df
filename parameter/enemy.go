package parameter

// Enemy Chase Behavior
const (
	// EnemyPerceptionRange is the distance beyond which an enemy ignores the player
	EnemyPerceptionRange = 20.0

	// EnemyChaseMin is the distance below which chase movement is suppressed
	// Prevents overshoot jitter through the player at point-blank range
	EnemyChaseMin = 0.6

	// EnemyBaseSpeed is minimum chase speed in world units/sec
	EnemyBaseSpeed = 3.0

	// EnemySpeedJitter is the maximum random speed bonus rolled once at spawn
	EnemySpeedJitter = 1.5
)

// Enemy Combat
const (
	// EnemyInitialHealth is hit points at spawn
	EnemyInitialHealth = 3

	// EnemyContactRange is the distance below which contact damage applies
	// Overlaps EnemyChaseMin; both checks run independently each tick
	EnemyContactRange = 1.0

	// EnemyContactDamageRate is player health lost per second of contact
	EnemyContactDamageRate = 30.0

	// EnemyHeight is the fixed Y of an enemy's center in world units
	EnemyHeight = 1.2
)
