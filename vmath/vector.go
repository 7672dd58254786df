package vmath

import (
	"math"
)

// Normalize2D returns the unit vector of (x, y), zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	inv := 1.0 / mag
	return x * inv, y * inv
}

// Magnitude returns vector length sqrt(x² + y²)
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// MagnitudeSq returns squared magnitude without sqrt
// Use for range comparisons against squared thresholds
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := Magnitude(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}
