package helix

import "math"

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// NormalizeAngle wraps any angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a tiny negative value can round up to exactly 2π.
	if a >= TwoPi {
		a = 0
	}
	return a
}

// IsAngleInRange reports whether angle lies in the half-open arc
// [start, end), walking counter-clockwise from start. All three angles are
// normalized first; an arc with start > end wraps through 0.
func IsAngleInRange(angle, start, end float64) bool {
	angle = NormalizeAngle(angle)
	start = NormalizeAngle(start)
	end = NormalizeAngle(end)

	if start <= end {
		return angle >= start && angle < end
	}
	return angle >= start || angle < end
}

// ArcLength returns the counter-clockwise length of the arc [start, end).
func ArcLength(start, end float64) float64 {
	start = NormalizeAngle(start)
	end = NormalizeAngle(end)
	if start <= end {
		return end - start
	}
	return TwoPi - start + end
}
