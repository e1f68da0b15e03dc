package config

import (
	_ "embed"
)

//go:embed defaults/helix.yaml
var defaultHelixYAML []byte

// DefaultHelixConfig returns the built-in configuration.
// It mirrors defaults/helix.yaml and backs it up if the embed cannot be parsed.
func DefaultHelixConfig() HelixConfig {
	return HelixConfig{
		Physics: PhysicsConfig{
			Gravity:          -0.012,
			BounceVelocity:   0.22,
			TerminalVelocity: -0.45,
			ReferenceFPS:     60,
			MaxFrameDelta:    3,
		},
		Ball: BallConfig{
			Radius: 0.18,
			StartY: 4,
		},
		Tower: TowerConfig{
			LevelGap:           3.0,
			PlatformHeight:     0.3,
			CollisionTolerance: 0.3,
			InitialPlatforms:   20,
			BatchSize:          10,
			Lookahead:          8,
			FallMargin:         10,
		},
		Generation: GenerationConfig{
			SafeLevels:    3,
			DangerOffset:  0.2,
			MinSafeArc:    0.5,
			ColorInterval: 7,
			Palette: []string{
				"#E84855", // Red
				"#3185FC", // Blue
				"#FFBE0B", // Yellow
				"#2EC4B6", // Cyan
				"#9B5DE5", // Purple
				"#F15BB5", // Pink
				"#00F5D4", // Teal
				"#FFA07A", // Light coral
			},
			DangerColor: "#F5F5F5",
		},
		Scoring: ScoringConfig{
			PointsPerLevel:  10,
			PerfectBonus:    5,
			StreakThreshold: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialTier:  0,
			TierInterval: 10,
			Gap: GapCurve{
				Min:        1.3,
				Range:      0.7,
				MinStep:    0.1,
				RangeStep:  0.05,
				MinFloor:   0.6,
				RangeFloor: 0.2,
			},
			Danger: DangerCurve{
				Probability: 0.25,
				Step:        0.05,
				Ceiling:     0.6,
			},
			DangerSize: DangerSizeCurve{
				Min:          0.4,
				Range:        0.3,
				Step:         0.1,
				MinCeiling:   1.2,
				RangeCeiling: 0.6,
			},
		},
		Controls: ControlsConfig{
			RotationSpeed: 0.05,
			KeyStep:       0.2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHelixYAML
}
