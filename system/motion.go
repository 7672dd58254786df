package system

import (
	"github.com/lowrez/gridfire/engine"
	"github.com/lowrez/gridfire/input"
	"github.com/lowrez/gridfire/parameter"
	"github.com/lowrez/gridfire/physics"
)

// Motion integrates player input into velocity and resolves movement
// against the grid with per-axis sliding. Runs first in the pipeline.
type Motion struct{}

func NewMotion() *Motion {
	return &Motion{}
}

func (m *Motion) Update(w *engine.World, in input.Snapshot, dt float64) {
	p := &w.Player

	p.Yaw += in.TurnAxis() * parameter.PlayerTurnRate * dt

	// Damping applies before the tick's own input so fresh acceleration
	// is not blunted on the frame it arrives
	p.Vel.X -= p.Vel.X * parameter.VelocityDamping * dt
	p.Vel.Z -= p.Vel.Z * parameter.VelocityDamping * dt

	ix, iz := in.MoveAxes()
	p.Vel.X -= ix * parameter.PlayerAccel * dt
	p.Vel.Z -= iz * parameter.PlayerAccel * dt

	// Two legs in the camera frame, lateral before forward; a blocked leg
	// reverts and zeroes its velocity component so the other axis slides
	rx, rz := p.Right()
	fx, fz := p.Forward()
	lat := -p.Vel.X * dt
	fwd := -p.Vel.Z * dt

	x, z, hit := physics.StepLeg(p.Pos.X, p.Pos.Z, rx*lat, rz*lat, w.Grid.IsBlocked)
	if hit {
		p.Vel.X = 0
	}
	x, z, hit = physics.StepLeg(x, z, fx*fwd, fz*fwd, w.Grid.IsBlocked)
	if hit {
		p.Vel.Z = 0
	}
	p.Pos.X = x
	p.Pos.Z = z

	if w.Grid.IsExit(p.Pos.X, p.Pos.Z) {
		w.State.MarkWon()
	}
}
