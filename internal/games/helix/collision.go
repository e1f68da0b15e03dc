package helix

import (
	"math"

	"github.com/vovakirdan/tui-helix/internal/config"
)

// Collision describes the ball's relation to one platform in one step.
type Collision struct {
	Hit           bool // Ball is in the band over solid material
	Danger        bool // The material is a danger arc
	PassedThrough bool // Ball is in the band over the gap
}

// BallAngle returns the angle of the tower under the ball. Rotating the
// tower by θ moves the material under the fixed ball by -θ.
func BallAngle(rotation float64) float64 {
	return NormalizeAngle(-rotation)
}

// DepthIndex returns the level index nearest below the ball's height.
func DepthIndex(y, levelGap float64) int {
	return int(math.Floor(y / -levelGap))
}

// InBand reports whether the ball's bottom lies within the platform's
// collision band: from the top surface down to the underside plus tolerance.
func InBand(b Ball, p Platform, tower config.TowerConfig) bool {
	bottom := b.Bottom()
	top := p.Y + tower.PlatformHeight/2
	floor := p.Y - tower.PlatformHeight/2 - tower.CollisionTolerance
	return bottom <= top && bottom >= floor
}

// Resolve tests the ball against one platform under the given rotation.
// The result is zero when the ball is outside the band.
func Resolve(b Ball, p Platform, rotation float64, tower config.TowerConfig) Collision {
	if !InBand(b, p, tower) {
		return Collision{}
	}
	if seg, ok := p.SegmentAt(BallAngle(rotation)); ok {
		return Collision{Hit: true, Danger: seg.Danger}
	}
	return Collision{PassedThrough: true}
}

// TopOf returns the y of a platform's upper surface.
func TopOf(p Platform, tower config.TowerConfig) float64 {
	return p.Y + tower.PlatformHeight/2
}
