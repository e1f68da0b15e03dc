package config

import "math"

// DifficultyParams are the generation parameters for one level.
// Angles are in radians.
type DifficultyParams struct {
	GapMin            float64
	GapRange          float64
	DangerProbability float64
	DangerMin         float64
	DangerRange       float64
}

// DifficultyModel maps a level index to generation parameters.
// It is deterministic; randomness is applied by the level generator.
type DifficultyModel struct {
	cfg DifficultyConfig
}

// NewDifficultyModel creates a difficulty model.
func NewDifficultyModel(cfg DifficultyConfig) *DifficultyModel {
	if cfg.TierInterval <= 0 {
		cfg.TierInterval = 1 // Prevent division by zero
	}
	if cfg.InitialTier < 0 {
		cfg.InitialTier = 0
	}
	return &DifficultyModel{cfg: cfg}
}

// IsEnabled returns whether tiers progress with depth.
func (d *DifficultyModel) IsEnabled() bool {
	return d.cfg.Enabled
}

// TierInterval returns the number of levels per tier.
func (d *DifficultyModel) TierInterval() int {
	return d.cfg.TierInterval
}

// Tier returns the difficulty bracket of a level.
func (d *DifficultyModel) Tier(level int) int {
	if !d.cfg.Enabled {
		return d.cfg.InitialTier
	}
	if level < 0 {
		level = 0
	}
	return d.cfg.InitialTier + level/d.cfg.TierInterval
}

// Params returns the generation parameters for a level.
// Gap bounds never drop below their floors and danger values never exceed
// their ceilings, whatever the level.
func (d *DifficultyModel) Params(level int) DifficultyParams {
	tier := float64(d.Tier(level))
	gap := d.cfg.Gap
	danger := d.cfg.Danger
	size := d.cfg.DangerSize

	return DifficultyParams{
		GapMin:            math.Max(gap.MinFloor, gap.Min-tier*gap.MinStep),
		GapRange:          math.Max(gap.RangeFloor, gap.Range-tier*gap.RangeStep),
		DangerProbability: clampF(danger.Probability+tier*danger.Step, 0, danger.Ceiling),
		DangerMin:         math.Min(size.MinCeiling, size.Min+tier*size.Step),
		DangerRange:       math.Min(size.RangeCeiling, size.Range+tier*size.Step),
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
