package helix

import (
	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/core"
)

// Status is the lifecycle phase of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the scoring and lifecycle record of a session.
// IsPlaying and IsGameOver are never both true.
type GameState struct {
	Score         int
	BestScore     int
	CurrentLevel  int
	BounceCount   int
	PerfectStreak int
	IsPlaying     bool
	IsPaused      bool
	IsGameOver    bool
	NewBest       bool
}

// Snapshot is the complete simulation state after one tick. A session
// replaces its snapshot wholesale at the end of every step, so readers
// never observe a half-applied tick.
type Snapshot struct {
	Status        Status
	State         GameState
	Ball          Ball
	Rotation      float64
	DeepestPassed int // Deepest level fallen through, -1 before the first
	Ticks         int
}

// BallAngle returns the tower angle currently under the ball.
func (s Snapshot) BallAngle() float64 {
	return BallAngle(s.Rotation)
}

// Session owns one player's game: the tower, the snapshot and the best
// score slot. It is driven by Step and is not safe for concurrent use.
type Session struct {
	cfg  config.HelixConfig
	gen  *Generator
	best core.BestScoreStore
	seed int64
	runs int

	tower *Tower
	snap  Snapshot
}

// NewSession creates an idle session. The best score is read from best
// once here; a nil store keeps it in memory.
func NewSession(cfg config.HelixConfig, seed int64, best core.BestScoreStore) *Session {
	if best == nil {
		best = core.NewMemoryBestScore(0)
	}
	difficulty := config.NewDifficultyModel(cfg.Difficulty)

	s := &Session{
		cfg:  cfg,
		gen:  NewGenerator(cfg, difficulty),
		best: best,
		seed: seed,
	}
	s.tower = s.newTower()
	s.snap = Snapshot{
		Status:        StatusIdle,
		State:         GameState{BestScore: max(best.Load(), 0)},
		Ball:          Ball{Y: cfg.Ball.StartY, Radius: cfg.Ball.Radius},
		DeepestPassed: -1,
	}
	return s
}

// Config returns the session's configuration.
func (s *Session) Config() config.HelixConfig {
	return s.cfg
}

// Snapshot returns the state after the last step.
func (s *Session) Snapshot() Snapshot {
	return s.snap
}

// State returns the scoring record after the last step.
func (s *Session) State() GameState {
	return s.snap.State
}

// Tower returns the current run's platforms.
func (s *Session) Tower() *Tower {
	return s.tower
}

// Difficulty returns the model used for generation.
func (s *Session) Difficulty() *config.DifficultyModel {
	return s.gen.Difficulty()
}

func (s *Session) newTower() *Tower {
	t := NewTower(s.gen, NewSeededSource(s.seed+int64(s.runs)))
	t.Extend(s.cfg.Tower.InitialPlatforms)
	return t
}

// Step advances the session by one host tick and returns what happened.
func (s *Session) Step(in core.InputFrame) []core.Event {
	next := s.snap
	next.Ticks++
	var events []core.Event

	switch next.Status {
	case StatusIdle:
		if in.Has(core.ActionStart) || in.Has(core.ActionRestart) {
			next = s.start(next)
			events = append(events, core.EventStart)
		}
		s.snap = next
		return events
	case StatusGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) {
			next = s.start(next)
			events = append(events, core.EventStart)
		}
		s.snap = next
		return events
	}

	// Restart abandons the running run. The best score is only recorded
	// at game over.
	if in.Has(core.ActionRestart) {
		s.snap = s.start(next)
		return append(events, core.EventStart)
	}

	if in.Has(core.ActionPause) {
		if next.Status == StatusPaused {
			next.Status = StatusPlaying
		} else {
			next.Status = StatusPaused
		}
		next.State.IsPaused = next.Status == StatusPaused
	}
	if next.Status == StatusPaused {
		s.snap = next
		return events
	}

	next.Rotation += in.RotationDelta

	// Integrate in slices of at most one reference frame so the ball
	// never moves further than the collision band in a single slice.
	frames := CapFrameDelta(in.FrameDelta, s.cfg.Physics)
	for frames > 0 && next.Status == StatusPlaying {
		dt := min(frames, 1)
		frames -= dt
		next, events = s.advance(next, dt, events)
	}

	s.snap = next
	return events
}

func (s *Session) start(prev Snapshot) Snapshot {
	s.runs++
	s.tower = s.newTower()
	return Snapshot{
		Status: StatusPlaying,
		State: GameState{
			BestScore: prev.State.BestScore,
			IsPlaying: true,
		},
		Ball:          Ball{Y: s.cfg.Ball.StartY, Radius: s.cfg.Ball.Radius},
		DeepestPassed: -1,
		Ticks:         prev.Ticks,
	}
}

// advance runs one physics slice: kinematics, then collision against the
// platforms around the ball, then the fall-out check and generation.
func (s *Session) advance(snap Snapshot, dt float64, events []core.Event) (Snapshot, []core.Event) {
	tower := s.cfg.Tower
	ball := Advance(snap.Ball, dt, s.cfg.Physics)

	// A rising ball never collides, and passed levels are final.
	if ball.VelocityY <= 0 {
		depth := DepthIndex(ball.Y, tower.LevelGap)
	scan:
		for level := max(depth-1, snap.DeepestPassed+1); level <= depth+1; level++ {
			p, ok := s.tower.Platform(level)
			if !ok {
				continue
			}
			c := Resolve(ball, p, snap.Rotation, tower)
			switch {
			case c.Hit && c.Danger:
				snap.Ball = ball
				return s.gameOver(snap, events)
			case c.Hit:
				ball = Bounce(ball, TopOf(p, tower), s.cfg.Physics)
				snap.State.BounceCount++
				snap.State.PerfectStreak = 0
				events = append(events, core.EventBounce)
				break scan
			case c.PassedThrough:
				snap, events = s.pass(snap, level, events)
			}
		}
	}
	snap.Ball = ball

	if last, ok := s.tower.Last(); ok && ball.Y < last.Y-tower.FallMargin {
		return s.gameOver(snap, events)
	}
	s.tower.EnsureAhead(DepthIndex(ball.Y, tower.LevelGap), tower.Lookahead, tower.BatchSize)
	return snap, events
}

func (s *Session) pass(snap Snapshot, level int, events []core.Event) (Snapshot, []core.Event) {
	scoring := s.cfg.Scoring
	snap.DeepestPassed = level
	snap.State.PerfectStreak++
	snap.State.Score += scoring.PointsPerLevel
	snap.State.CurrentLevel = max(snap.State.CurrentLevel, level+1)
	events = append(events, core.EventPass)
	if scoring.StreakThreshold > 0 && snap.State.PerfectStreak >= scoring.StreakThreshold {
		snap.State.Score += scoring.PerfectBonus
		events = append(events, core.EventPerfect)
	}
	return snap, events
}

func (s *Session) gameOver(snap Snapshot, events []core.Event) (Snapshot, []core.Event) {
	snap.Status = StatusGameOver
	snap.State.IsPlaying = false
	snap.State.IsPaused = false
	snap.State.IsGameOver = true
	events = append(events, core.EventGameOver)
	if snap.State.Score > snap.State.BestScore {
		snap.State.BestScore = snap.State.Score
		snap.State.NewBest = true
		s.best.Save(snap.State.Score)
		events = append(events, core.EventNewBest)
	}
	return snap, events
}
