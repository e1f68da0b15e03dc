package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/core"
	"github.com/vovakirdan/tui-helix/internal/games/helix"
	"github.com/vovakirdan/tui-helix/internal/registry"
)

// Rows reserved below the game for key help.
const (
	shortHelpRows = 1
	fullHelpRows  = 3
)

// Options configures the game host.
type Options struct {
	Runtime  core.RuntimeConfig
	Physics  config.PhysicsConfig
	Controls config.ControlsConfig
	Logger   *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	help       help.Model
	styles     styleCache
	drag       dragState
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-shortHelpRows, 1)),
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     newStyleCache(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	m.opts.Logger.Debug("game ready", "game", m.game.ID(), "seed", m.opts.Runtime.Seed)

	// Start the tick loop
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if dx := m.drag.update(msg); dx != 0 {
			m.inputFrame.Rotate(float64(dx) * m.opts.Controls.RotationSpeed)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	m.keys.ApplyKey(msg, &m.inputFrame, m.opts.Controls.KeyStep)
	return m, nil
}

// handleResize processes window resize events. The session survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the game screen to the window minus the help rows.
func (m *Model) layout() {
	rows := shortHelpRows
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	m.screen.Resize(m.opts.Runtime.ScreenW, max(m.opts.Runtime.ScreenH-rows, 1))
}

// handleTick runs one simulation step sized by the wall time since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frames := 1.0
	if !m.lastTick.IsZero() {
		frames = helix.FrameDelta(now.Sub(m.lastTick), m.opts.Physics)
	}
	m.lastTick = now
	m.inputFrame.FrameDelta = frames

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m Model) logEvents(result core.StepResult) {
	st := result.State
	for _, e := range result.Events {
		switch e {
		case core.EventStart:
			m.opts.Logger.Info("run started", "best", st.Best)
		case core.EventGameOver:
			m.opts.Logger.Info("game over", "score", st.Score, "level", st.Level, "best", st.Best)
		case core.EventNewBest:
			m.opts.Logger.Info("new best score", "score", st.Best)
		case core.EventPerfect:
			m.opts.Logger.Debug("perfect streak", "score", st.Score)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to spin the tower
	)

	_, err := p.Run()
	return err
}
