package parameter

// Player Motion
const (
	// PlayerAccel is input acceleration in world units/sec²
	PlayerAccel = 80.0

	// VelocityDamping is the exponential velocity decay rate in 1/sec
	// Applied before the tick's own input so fresh acceleration is not blunted
	VelocityDamping = 10.0

	// PlayerTurnRate is yaw change per second of held turn input, in radians
	PlayerTurnRate = 2.4

	// PlayerEyeHeight is the fixed Y of the player position in world units
	PlayerEyeHeight = 1.6
)

// Player Resources
const (
	// PlayerStartHealth is starting health
	PlayerStartHealth = 100.0

	// PlayerStartAmmo is starting ammo
	PlayerStartAmmo = 20
)
