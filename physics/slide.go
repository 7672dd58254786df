package physics

// BlockedFunc reports whether a world-plane position is in solid space
type BlockedFunc func(x, z float64) bool

// StepLeg applies one displacement leg and tests the destination. A blocked
// leg is reverted in full; it never partially applies.
func StepLeg(posX, posZ, dx, dz float64, blocked BlockedFunc) (nx, nz float64, hit bool) {
	nx = posX + dx
	nz = posZ + dz
	if blocked(nx, nz) {
		return posX, posZ, true
	}
	return nx, nz, false
}

// SlideMove resolves a displacement one world axis at a time: X first,
// then Z. A blocked axis is reverted while the other still applies, which
// yields wall-sliding for diagonal moves into corners. The fixed axis
// order is the tie-break for corner cases.
// Returns the resolved position and which axes were blocked.
func SlideMove(posX, posZ, dx, dz float64, blocked BlockedFunc) (nx, nz float64, hitX, hitZ bool) {
	nx, nz, hitX = StepLeg(posX, posZ, dx, 0, blocked)
	nx, nz, hitZ = StepLeg(nx, nz, 0, dz, blocked)
	return nx, nz, hitX, hitZ
}
