// Package config provides YAML-based game configuration loading and
// difficulty management for the helix tower game.
package config

// HelixConfig enumerates every tunable of the game once.
type HelixConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Ball       BallConfig       `yaml:"ball"`
	Tower      TowerConfig      `yaml:"tower"`
	Generation GenerationConfig `yaml:"generation"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Controls   ControlsConfig   `yaml:"controls"`
}

// PhysicsConfig defines the ball's vertical kinematics.
// Velocities are in world units per reference frame; positive is up.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // Signed, negative pulls down
	BounceVelocity   float64 `yaml:"bounce_velocity"`   // Velocity set on a safe bounce
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Signed fall speed limit
	ReferenceFPS     int     `yaml:"reference_fps"`     // Frame rate one frame delta refers to
	MaxFrameDelta    float64 `yaml:"max_frame_delta"`   // Cap on frames integrated per tick
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	StartY float64 `yaml:"start_y"`
}

// TowerConfig defines platform geometry and lazy generation.
type TowerConfig struct {
	LevelGap           float64 `yaml:"level_gap"`           // Vertical distance between platforms
	PlatformHeight     float64 `yaml:"platform_height"`     // Platform thickness
	CollisionTolerance float64 `yaml:"collision_tolerance"` // Extra band below a platform
	InitialPlatforms   int     `yaml:"initial_platforms"`   // Platforms generated at session start
	BatchSize          int     `yaml:"batch_size"`          // Platforms appended per extension
	Lookahead          int     `yaml:"lookahead"`           // Levels ahead of the ball kept generated
	FallMargin         float64 `yaml:"fall_margin"`         // Distance below the last platform that ends the run
}

// GenerationConfig defines per-platform layout rules.
type GenerationConfig struct {
	SafeLevels    int      `yaml:"safe_levels"`    // Leading levels that never get a danger arc
	DangerOffset  float64  `yaml:"danger_offset"`  // Safe sliver between gap and danger arc
	MinSafeArc    float64  `yaml:"min_safe_arc"`   // Safe material that must remain on every ring
	ColorInterval int      `yaml:"color_interval"` // Levels sharing one palette color
	Palette       []string `yaml:"palette"`
	DangerColor   string   `yaml:"danger_color"`
}

// ScoringConfig defines points awarded for passing gaps.
type ScoringConfig struct {
	PointsPerLevel  int `yaml:"points_per_level"`
	PerfectBonus    int `yaml:"perfect_bonus"`
	StreakThreshold int `yaml:"streak_threshold"`
}

// DifficultyConfig defines how generation parameters scale with depth.
type DifficultyConfig struct {
	Enabled      bool            `yaml:"enabled"`
	InitialTier  int             `yaml:"initial_tier"`
	TierInterval int             `yaml:"tier_interval"` // Levels per tier
	Gap          GapCurve        `yaml:"gap"`
	Danger       DangerCurve     `yaml:"danger"`
	DangerSize   DangerSizeCurve `yaml:"danger_size"`
}

// GapCurve shrinks the gap linearly per tier down to a floor.
type GapCurve struct {
	Min        float64 `yaml:"min"`
	Range      float64 `yaml:"range"`
	MinStep    float64 `yaml:"min_step"`
	RangeStep  float64 `yaml:"range_step"`
	MinFloor   float64 `yaml:"min_floor"`
	RangeFloor float64 `yaml:"range_floor"`
}

// DangerCurve raises the danger probability linearly per tier up to a ceiling.
type DangerCurve struct {
	Probability float64 `yaml:"probability"`
	Step        float64 `yaml:"step"`
	Ceiling     float64 `yaml:"ceiling"`
}

// DangerSizeCurve grows danger arcs linearly per tier up to a ceiling.
type DangerSizeCurve struct {
	Min          float64 `yaml:"min"`
	Range        float64 `yaml:"range"`
	Step         float64 `yaml:"step"`
	MinCeiling   float64 `yaml:"min_ceiling"`
	RangeCeiling float64 `yaml:"range_ceiling"`
}

// ControlsConfig maps input to tower rotation.
type ControlsConfig struct {
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per mouse column dragged
	KeyStep       float64 `yaml:"key_step"`       // Radians per arrow key press
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialTierForPreset returns the starting tier for a difficulty preset.
func InitialTierForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}
