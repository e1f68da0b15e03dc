package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate reports configuration values that would break gameplay
// guarantees: a passable gap on every ring, a ring never fully dangerous,
// and a ball that cannot skip a platform or bounce into the one above.
func (c HelixConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	p := c.Physics
	if p.Gravity >= 0 {
		add("physics.gravity must be negative, got %v", p.Gravity)
	}
	if p.BounceVelocity <= 0 {
		add("physics.bounce_velocity must be positive, got %v", p.BounceVelocity)
	}
	if p.TerminalVelocity >= 0 {
		add("physics.terminal_velocity must be negative, got %v", p.TerminalVelocity)
	}
	if p.ReferenceFPS <= 0 {
		add("physics.reference_fps must be positive, got %d", p.ReferenceFPS)
	}
	if p.MaxFrameDelta <= 0 {
		add("physics.max_frame_delta must be positive, got %v", p.MaxFrameDelta)
	}

	if c.Ball.Radius <= 0 {
		add("ball.radius must be positive, got %v", c.Ball.Radius)
	}

	t := c.Tower
	if t.LevelGap <= 0 {
		add("tower.level_gap must be positive, got %v", t.LevelGap)
	}
	if t.PlatformHeight <= 0 {
		add("tower.platform_height must be positive, got %v", t.PlatformHeight)
	}
	if t.CollisionTolerance < 0 {
		add("tower.collision_tolerance must not be negative, got %v", t.CollisionTolerance)
	}
	if t.InitialPlatforms <= 0 || t.BatchSize <= 0 || t.Lookahead <= 0 {
		add("tower.initial_platforms, batch_size and lookahead must be positive")
	}
	if t.FallMargin <= 0 {
		add("tower.fall_margin must be positive, got %v", t.FallMargin)
	}

	// One frame of terminal fall must not jump over the collision band.
	band := t.PlatformHeight + t.CollisionTolerance
	if -p.TerminalVelocity >= band {
		add("terminal fall per frame (%v) must be smaller than the collision band (%v)", -p.TerminalVelocity, band)
	}

	// A bounce must not reach the platform above.
	if p.Gravity < 0 {
		apex := p.BounceVelocity * p.BounceVelocity / (-2 * p.Gravity)
		if t.PlatformHeight+apex >= t.LevelGap-t.CollisionTolerance {
			add("bounce apex (%.2f) reaches the platform above (level_gap %v)", apex, t.LevelGap)
		}
	}

	g := c.Generation
	if len(g.Palette) == 0 {
		add("generation.palette must not be empty")
	}
	if g.ColorInterval <= 0 {
		add("generation.color_interval must be positive, got %d", g.ColorInterval)
	}
	if g.MinSafeArc <= 0 || g.DangerOffset < 0 {
		add("generation.min_safe_arc must be positive and danger_offset not negative")
	}

	d := c.Difficulty
	if d.TierInterval <= 0 {
		add("difficulty.tier_interval must be positive, got %d", d.TierInterval)
	}
	if d.Gap.MinFloor <= 0 {
		add("difficulty.gap.min_floor must be positive, got %v", d.Gap.MinFloor)
	}
	if d.Gap.MinStep < 0 || d.Gap.RangeStep < 0 || d.Danger.Step < 0 || d.DangerSize.Step < 0 {
		add("difficulty steps must not be negative")
	}
	widest := math.Max(d.Gap.Min, d.Gap.MinFloor) + math.Max(d.Gap.Range, d.Gap.RangeFloor)
	if widest+g.MinSafeArc >= 2*math.Pi {
		add("widest gap (%.2f) leaves less than min_safe_arc of material", widest)
	}
	if d.Danger.Ceiling >= 1 || d.Danger.Ceiling < 0 {
		add("difficulty.danger.ceiling must be in [0, 1), got %v", d.Danger.Ceiling)
	}

	s := c.Scoring
	if s.PointsPerLevel < 0 || s.PerfectBonus < 0 || s.StreakThreshold <= 0 {
		add("scoring values must not be negative and streak_threshold must be positive")
	}

	return errors.Join(errs...)
}
