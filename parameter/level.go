package parameter

// Level Geometry
const (
	// CellSize is the world-unit edge length of one grid cell
	CellSize = 2.0
)
