package helix

import (
	"testing"

	"github.com/vovakirdan/tui-helix/internal/config"
)

// testPlatform is a ring at level 1 with a gap at [1, 2), a danger arc at
// [3, 4) and safe material everywhere else.
func testPlatform() Platform {
	return Platform{
		Level:    1,
		Y:        -3,
		GapStart: 1,
		GapEnd:   2,
		Segments: []Segment{
			{Start: 2, End: 3, Color: "#3185FC"},
			{Start: 3, End: 4, Danger: true, Color: "#F5F5F5"},
			{Start: 4, End: 1, Color: "#3185FC"},
		},
	}
}

func TestResolve(t *testing.T) {
	tower := config.DefaultHelixConfig().Tower
	p := testPlatform()
	const r = 0.18

	// Rotation θ puts angle -θ under the ball.
	tests := []struct {
		name     string
		y        float64
		rotation float64
		want     Collision
	}{
		{"above band", -1, -2.5, Collision{}},
		{"on safe arc", -3 + r, -2.5, Collision{Hit: true}},
		{"on wrapped safe arc", -3 + r, -0.5, Collision{Hit: true}},
		{"on danger arc", -3 + r, -3.5, Collision{Hit: true, Danger: true}},
		{"over gap", -3 + r, -1.5, Collision{PassedThrough: true}},
		{"deep in tolerance", -3 - 0.4 + r, -2.5, Collision{Hit: true}},
		{"below band", -4, -2.5, Collision{}},
		{"gap start inclusive", -3 + r, -1, Collision{PassedThrough: true}},
		{"gap end belongs to segment", -3 + r, -2, Collision{Hit: true}},
		{"full turns ignored", -3 + r, -1.5 + 3*TwoPi, Collision{PassedThrough: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{Y: tt.y, Radius: r}
			if got := Resolve(b, p, tt.rotation, tower); got != tt.want {
				t.Errorf("Resolve(y=%v, rot=%v) = %+v, want %+v", tt.y, tt.rotation, got, tt.want)
			}
		})
	}
}

func TestInBandEdges(t *testing.T) {
	tower := config.DefaultHelixConfig().Tower
	p := testPlatform()
	top := TopOf(p, tower)
	floor := p.Y - tower.PlatformHeight/2 - tower.CollisionTolerance

	if !InBand(Ball{Y: top + 0.18 - 1e-9, Radius: 0.18}, p, tower) {
		t.Error("ball resting on the top surface is not in band")
	}
	if InBand(Ball{Y: top + 0.19, Radius: 0.18}, p, tower) {
		t.Error("ball above the top surface is in band")
	}
	if !InBand(Ball{Y: floor + 0.18 + 1e-9, Radius: 0.18}, p, tower) {
		t.Error("ball at the tolerance floor is not in band")
	}
	if InBand(Ball{Y: floor + 0.17, Radius: 0.18}, p, tower) {
		t.Error("ball below the tolerance floor is in band")
	}
}

func TestDepthIndex(t *testing.T) {
	tests := []struct {
		y    float64
		want int
	}{
		{4, -2},
		{0.5, -1},
		{0, 0},
		{-0.1, 0},
		{-3, 1},
		{-5.9, 1},
		{-6, 2},
	}
	for _, tt := range tests {
		if got := DepthIndex(tt.y, 3); got != tt.want {
			t.Errorf("DepthIndex(%v, 3) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestBallAngle(t *testing.T) {
	if got := BallAngle(0.5); got != NormalizeAngle(-0.5) {
		t.Errorf("BallAngle(0.5) = %v", got)
	}
	if got := BallAngle(0); got != 0 {
		t.Errorf("BallAngle(0) = %v, want 0", got)
	}
}
