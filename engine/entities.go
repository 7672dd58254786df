package engine

import (
	"math"

	"github.com/lowrez/gridfire/vmath"
)

// Player is the camera-holding entity. Velocity lives in the camera-local
// frame: X lateral, Z forward-back. Y position is fixed at eye height.
type Player struct {
	Pos vmath.Vec3F
	Vel vmath.Vec3F
	Yaw float64
}

// Forward returns the horizontal unit vector the player faces
func (p *Player) Forward() (x, z float64) {
	return math.Sin(p.Yaw), math.Cos(p.Yaw)
}

// Right returns the horizontal unit vector to the player's right
func (p *Player) Right() (x, z float64) {
	return math.Cos(p.Yaw), -math.Sin(p.Yaw)
}

// Enemy chases the player in the horizontal plane. Speed is rolled once at
// spawn and never changes.
type Enemy struct {
	Pos    vmath.Vec3F
	Health int
	Speed  float64
}

// Projectile flies in a straight line until it expires or hits something
type Projectile struct {
	Pos      vmath.Vec3F
	Vel      vmath.Vec3F
	Lifespan float64
}
