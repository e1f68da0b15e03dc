package helix

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-4 * math.Pi, 0},
	}

	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("NormalizeAngle(%v) = %v, outside [0, 2π)", tt.in, got)
		}
	}
}

func TestNormalizeAngleTinyNegative(t *testing.T) {
	got := NormalizeAngle(-1e-18)
	if got < 0 || got >= TwoPi {
		t.Errorf("NormalizeAngle(-1e-18) = %v, outside [0, 2π)", got)
	}
}

func TestIsAngleInRange(t *testing.T) {
	tests := []struct {
		name              string
		angle, start, end float64
		want              bool
	}{
		{"inside plain arc", 1.0, 0.5, 2.0, true},
		{"outside plain arc", 2.5, 0.5, 2.0, false},
		{"start is inclusive", 0.5, 0.5, 2.0, true},
		{"end is exclusive", 2.0, 0.5, 2.0, false},
		{"wrapped arc past zero", 0.1, 6.0, 0.5, true},
		{"wrapped arc before zero", 6.1, 6.0, 0.5, true},
		{"outside wrapped arc", 3.0, 6.0, 0.5, false},
		{"wrapped start inclusive", 6.0, 6.0, 0.5, true},
		{"wrapped end exclusive", 0.5, 6.0, 0.5, false},
		{"unnormalized angle", 1.0 + TwoPi, 0.5, 2.0, true},
		{"negative angle", -0.2, 6.0, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAngleInRange(tt.angle, tt.start, tt.end); got != tt.want {
				t.Errorf("IsAngleInRange(%v, %v, %v) = %v, want %v", tt.angle, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestArcLength(t *testing.T) {
	if got := ArcLength(0.5, 2.0); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("ArcLength(0.5, 2.0) = %v, want 1.5", got)
	}
	want := TwoPi - 6.0 + 0.5
	if got := ArcLength(6.0, 0.5); math.Abs(got-want) > 1e-9 {
		t.Errorf("ArcLength(6.0, 0.5) = %v, want %v", got, want)
	}
}
