package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-helix/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Pause, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "spin left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "spin right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ApplyKey records the game input a key press stands for in frame.
// Rotation keys turn the tower by step radians. It reports whether the
// key was consumed.
func (k KeyMap) ApplyKey(msg tea.KeyMsg, frame *core.InputFrame, step float64) bool {
	switch {
	case key.Matches(msg, k.Left):
		frame.Set(core.ActionRotateLeft)
		frame.Rotate(-step)
	case key.Matches(msg, k.Right):
		frame.Set(core.ActionRotateRight)
		frame.Rotate(step)
	case key.Matches(msg, k.Start):
		frame.Set(core.ActionStart)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	default:
		return false
	}
	return true
}

// dragState turns mouse drags into rotation. Only horizontal motion with
// the left button held counts.
type dragState struct {
	active bool
	lastX  int
}

// update consumes a mouse message and returns the columns dragged since
// the previous one.
func (d *dragState) update(msg tea.MouseMsg) int {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			d.active = true
			d.lastX = msg.X
		}
	case tea.MouseActionMotion:
		if d.active && msg.Button == tea.MouseButtonLeft {
			dx := msg.X - d.lastX
			d.lastX = msg.X
			return dx
		}
	case tea.MouseActionRelease:
		d.active = false
	}
	return 0
}
