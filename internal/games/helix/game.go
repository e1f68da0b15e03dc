// Package helix implements a Helix Jump-style game: a ball bounces down a
// rotating tower of ring platforms and must fall through each ring's gap
// while avoiding danger arcs.
package helix

import (
	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/core"
	"github.com/vovakirdan/tui-helix/internal/registry"
)

// perfectFlashTicks is how long the streak banner stays on screen.
const perfectFlashTicks = 45

// Game adapts a Session to the registry.Game interface and keeps the
// presentation-only state the renderer needs.
type Game struct {
	session *Session
	cfg     config.HelixConfig
	runtime core.RuntimeConfig
	best    core.BestScoreStore

	camera       float64 // World y at the top of the tower view; only decreases during a run
	cameraSet    bool
	perfectFlash int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An unknown name is
// rejected and leaves the current preset unchanged.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// LoadConfig resolves the configuration the game will run with, including
// the difficulty preset. The returned source names where it came from.
func LoadConfig() (config.HelixConfig, string, error) {
	cfg, source, err := config.LoadHelix(configPath)
	if err != nil {
		return config.DefaultHelixConfig(), config.SourceBuiltin, err
	}
	config.ApplyHelixPreset(&cfg, difficultyPreset)
	return cfg, source, nil
}

// New creates a new Helix Tower game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "helix"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Helix Tower"
}

// UseBestScore sets the store the best score is loaded from and saved to.
// It takes effect at the next Reset.
func (g *Game) UseBestScore(store core.BestScoreStore) {
	g.best = store
}

// Reset creates a fresh idle session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultHelixConfig()
		config.ApplyHelixPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig creates a fresh idle session from an explicit config.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.HelixConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.session = NewSession(cfg, runtime.Seed, g.best)
	g.cameraSet = false
	g.perfectFlash = 0
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.HelixConfig {
	return g.cfg
}

// Step advances the game by one host tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.session.Step(in)

	if g.perfectFlash > 0 {
		g.perfectFlash--
	}
	for _, e := range events {
		switch e {
		case core.EventStart:
			g.cameraSet = false
			g.perfectFlash = 0
		case core.EventPerfect:
			g.perfectFlash = perfectFlashTicks
		case core.EventBounce:
			g.perfectFlash = 0
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the host-facing summary of the session.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    st.Score,
		Best:     st.BestScore,
		Level:    st.CurrentLevel,
		Playing:  st.IsPlaying,
		GameOver: st.IsGameOver,
		Paused:   st.IsPaused,
		NewBest:  st.NewBest,
	}
}

// Register the game with the registry
func init() {
	registry.Register("helix", func() registry.Game {
		return New()
	})
}
