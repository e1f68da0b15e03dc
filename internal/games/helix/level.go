package helix

import (
	"slices"

	"github.com/vovakirdan/tui-helix/internal/config"
)

// arcEpsilon is the shortest arc worth keeping as a segment.
const arcEpsilon = 1e-9

// Segment is a solid arc of a platform ring. The arc is [Start, End)
// counter-clockwise and may wrap through 0.
type Segment struct {
	Start  float64
	End    float64
	Danger bool
	Color  string
}

// Length returns the segment's angular size.
func (s Segment) Length() float64 {
	return ArcLength(s.Start, s.End)
}

// Contains reports whether angle falls inside the segment.
func (s Segment) Contains(angle float64) bool {
	return IsAngleInRange(angle, s.Start, s.End)
}

// Platform is one ring of the tower. Level doubles as its identifier.
type Platform struct {
	Level    int
	Y        float64
	GapStart float64
	GapEnd   float64
	Segments []Segment
	Color    string
}

// SegmentAt returns the first segment containing angle.
func (p Platform) SegmentAt(angle float64) (Segment, bool) {
	for _, s := range p.Segments {
		if s.Contains(angle) {
			return s, true
		}
	}
	return Segment{}, false
}

// DangerArc returns the total angular size of danger segments.
func (p Platform) DangerArc() float64 {
	total := 0.0
	for _, s := range p.Segments {
		if s.Danger {
			total += s.Length()
		}
	}
	return total
}

// Generator lays out platforms from the configured rules and the
// difficulty model.
type Generator struct {
	gen        config.GenerationConfig
	levelGap   float64
	difficulty *config.DifficultyModel
}

// NewGenerator creates a generator.
func NewGenerator(cfg config.HelixConfig, difficulty *config.DifficultyModel) *Generator {
	return &Generator{
		gen:        cfg.Generation,
		levelGap:   cfg.Tower.LevelGap,
		difficulty: difficulty,
	}
}

// Difficulty returns the model driving generation parameters.
func (g *Generator) Difficulty() *config.DifficultyModel {
	return g.difficulty
}

// ColorFor returns the palette color of a level. Colors rotate every
// ColorInterval levels.
func (g *Generator) ColorFor(level int) string {
	if len(g.gen.Palette) == 0 {
		return ""
	}
	interval := max(g.gen.ColorInterval, 1)
	return g.gen.Palette[(max(level, 0)/interval)%len(g.gen.Palette)]
}

type arc struct {
	length float64
	danger bool
}

// GenerateLevel builds the platform for a level. The gap position and size
// and the optional danger arc are drawn from rng; everything else derives
// from the level index.
func (g *Generator) GenerateLevel(level int, rng RandomSource) Platform {
	params := g.difficulty.Params(level)

	gapSize := params.GapMin + rng.Float64()*params.GapRange
	gapSize = min(gapSize, TwoPi-g.gen.MinSafeArc)
	gapStart := rng.Float64() * TwoPi
	gapEnd := gapStart + gapSize
	safeArc := TwoPi - gapSize

	// Rings are described counter-clockwise starting at the gap's end.
	arcs := []arc{{length: safeArc}}
	if level >= g.gen.SafeLevels && rng.Float64() < params.DangerProbability {
		size := params.DangerMin + rng.Float64()*params.DangerRange
		afterGap := rng.Float64() < 0.5
		offset := g.gen.DangerOffset
		rest := safeArc - offset - size
		if size > arcEpsilon && rest >= g.gen.MinSafeArc {
			if afterGap {
				arcs = []arc{{length: offset}, {length: size, danger: true}, {length: rest}}
			} else {
				arcs = []arc{{length: rest}, {length: size, danger: true}, {length: offset}}
			}
		}
	}

	color := g.ColorFor(level)
	segments := make([]Segment, 0, len(arcs))
	cursor := gapEnd
	for i, a := range arcs {
		next := cursor + a.length
		if i == len(arcs)-1 {
			next = gapStart + TwoPi
		}
		if next-cursor > arcEpsilon {
			seg := Segment{
				Start:  NormalizeAngle(cursor),
				End:    NormalizeAngle(next),
				Danger: a.danger,
				Color:  color,
			}
			if a.danger {
				seg.Color = g.gen.DangerColor
			}
			segments = append(segments, seg)
		}
		cursor = next
	}

	return Platform{
		Level:    level,
		Y:        -float64(level) * g.levelGap,
		GapStart: NormalizeAngle(gapStart),
		GapEnd:   NormalizeAngle(gapEnd),
		Segments: segments,
		Color:    color,
	}
}

// GeneratePlatforms builds count consecutive levels starting at startLevel.
func (g *Generator) GeneratePlatforms(startLevel, count int, rng RandomSource) []Platform {
	out := make([]Platform, 0, max(count, 0))
	for i := range max(count, 0) {
		out = append(out, g.GenerateLevel(startLevel+i, rng))
	}
	return out
}

// Tower is the append-only platform sequence of one run. Platform i is
// always level i; generated platforms are never regenerated or reordered.
type Tower struct {
	gen       *Generator
	rng       RandomSource
	platforms []Platform
}

// NewTower creates an empty tower drawing layouts from rng.
func NewTower(gen *Generator, rng RandomSource) *Tower {
	return &Tower{gen: gen, rng: rng}
}

// Platform returns the platform of a level if it has been generated.
func (t *Tower) Platform(level int) (Platform, bool) {
	if level < 0 || level >= len(t.platforms) {
		return Platform{}, false
	}
	return t.platforms[level], true
}

// Last returns the deepest generated platform.
func (t *Tower) Last() (Platform, bool) {
	return t.Platform(len(t.platforms) - 1)
}

// Range returns a copy of the platforms with levels in [from, to].
func (t *Tower) Range(from, to int) []Platform {
	from = max(from, 0)
	to = min(to, len(t.platforms)-1)
	if from > to {
		return nil
	}
	return slices.Clone(t.platforms[from : to+1])
}

// Extend appends count freshly generated levels.
func (t *Tower) Extend(count int) {
	t.platforms = append(t.platforms, t.gen.GeneratePlatforms(len(t.platforms), count, t.rng)...)
}

// EnsureAhead extends the tower in batches until at least lookahead levels
// exist below depth. It reports whether anything was appended.
func (t *Tower) EnsureAhead(depth, lookahead, batch int) bool {
	batch = max(batch, 1)
	grew := false
	for depth+lookahead >= len(t.platforms) {
		t.Extend(batch)
		grew = true
	}
	return grew
}
