package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-helix/internal/config"
)

// DifficultyOption is one entry of the difficulty menu.
type DifficultyOption struct {
	Preset config.DifficultyPreset // Empty keeps the configured difficulty
	Label  string
	Detail string
}

// DifficultyOptions lists the menu entries for cfg, describing how each
// preset starts out.
func DifficultyOptions(cfg config.HelixConfig) []DifficultyOption {
	presets := []struct {
		preset config.DifficultyPreset
		label  string
	}{
		{"", "As configured"},
		{config.DifficultyEasy, "Easy"},
		{config.DifficultyNormal, "Normal"},
		{config.DifficultyHard, "Hard"},
		{config.DifficultyFixed, "Fixed"},
	}

	opts := make([]DifficultyOption, 0, len(presets))
	for _, p := range presets {
		c := cfg
		config.ApplyHelixPreset(&c, p.preset)
		d := config.NewDifficultyModel(c.Difficulty)
		params := d.Params(0)

		progression := "gets harder with depth"
		if !d.IsEnabled() {
			progression = "never changes"
		}
		opts = append(opts, DifficultyOption{
			Preset: p.preset,
			Label:  p.label,
			Detail: fmt.Sprintf("tier %d, gaps %.0f°+, %.0f%% danger, %s",
				d.Tier(0), degrees(params.GapMin), params.DangerProbability*100, progression),
		})
	}
	return opts
}

// menuKeyMap defines the key bindings for menus.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DifficultyMenuModel lets users choose a difficulty preset before playing.
type DifficultyMenuModel struct {
	options  []DifficultyOption
	cursor   int
	width    int
	height   int
	keys     menuKeyMap
	chosen   bool
	quitting bool
}

// NewDifficultyMenuModel creates a new difficulty menu.
func NewDifficultyMenuModel(options []DifficultyOption, width, height int) DifficultyMenuModel {
	return DifficultyMenuModel{
		options: options,
		width:   width,
		height:  height,
		keys:    defaultMenuKeyMap(),
	}
}

// Init initializes the model.
func (m DifficultyMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.options) > 0 {
				m.chosen = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the menu.
func (m DifficultyMenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2EC4B6"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("H E L I X   T O W E R", m.width, titleStyle))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width, lipgloss.NewStyle()))
	b.WriteString("\n\n")

	for i, o := range m.options {
		line := fmt.Sprintf("  %-14s %s", o.Label, o.Detail)
		style := dimStyle
		if i == m.cursor {
			line = fmt.Sprintf("> %-14s %s", o.Label, o.Detail)
			style = activeStyle
		}
		b.WriteString(centerText(line, m.width, style))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width, dimStyle))
	return b.String()
}

// Selected returns the chosen option, or nil if the user quit.
func (m DifficultyMenuModel) Selected() *DifficultyOption {
	if !m.chosen || len(m.options) == 0 {
		return nil
	}
	o := m.options[m.cursor]
	return &o
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int, style lipgloss.Style) string {
	w := lipgloss.Width(text)
	if w >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-w)/2) + style.Render(text)
}

// RunDifficultyMenu shows the difficulty menu and returns the choice,
// or nil if the user quit.
func RunDifficultyMenu(cfg config.HelixConfig, width, height int) (*DifficultyOption, error) {
	p := tea.NewProgram(
		NewDifficultyMenuModel(DifficultyOptions(cfg), width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyMenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
