package helix

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-helix/internal/config"
)

// Ball is the falling ball. Only its vertical motion is simulated; its
// angular position is the negated tower rotation.
type Ball struct {
	Y         float64 // Vertical position of the center, decreasing while descending
	VelocityY float64 // Signed vertical speed per reference frame
	Radius    float64
}

// Bottom returns the ball's lower extent.
func (b Ball) Bottom() float64 {
	return b.Y - b.Radius
}

// Advance integrates one step of dt reference frames under gravity,
// never letting the fall speed exceed the terminal velocity.
func Advance(b Ball, dt float64, phys config.PhysicsConfig) Ball {
	if dt <= 0 {
		return b
	}
	b.VelocityY = math.Max(b.VelocityY+phys.Gravity*dt, phys.TerminalVelocity)
	b.Y += b.VelocityY * dt
	return b
}

// Bounce returns the ball resting on a surface at topY, launched upward.
func Bounce(b Ball, topY float64, phys config.PhysicsConfig) Ball {
	b.Y = topY + b.Radius
	b.VelocityY = phys.BounceVelocity
	return b
}

// FrameDelta converts wall time into reference frames, capped so a stalled
// host cannot push the ball through a platform in one tick.
func FrameDelta(elapsed time.Duration, phys config.PhysicsConfig) float64 {
	return CapFrameDelta(elapsed.Seconds()*float64(phys.ReferenceFPS), phys)
}

// CapFrameDelta clamps a frame delta to [0, MaxFrameDelta].
func CapFrameDelta(frames float64, phys config.PhysicsConfig) float64 {
	if frames <= 0 || math.IsNaN(frames) {
		return 0
	}
	return math.Min(frames, phys.MaxFrameDelta)
}
