package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-helix/internal/config"
)

// TierColumns are the headers of the difficulty table.
var TierColumns = []string{"Tier", "Levels", "Gap°", "Danger %", "Danger°"}

// TierRows summarizes the generation parameters of the first n tiers.
// A model without progression has a single tier covering every level.
func TierRows(d *config.DifficultyModel, n int) []table.Row {
	if !d.IsEnabled() {
		n = 1
	}
	interval := d.TierInterval()

	rows := make([]table.Row, 0, n)
	for i := range n {
		first := i * interval
		levels := fmt.Sprintf("%d-%d", first, first+interval-1)
		if !d.IsEnabled() {
			levels = "all"
		}
		p := d.Params(first)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", d.Tier(first)),
			levels,
			fmt.Sprintf("%.0f-%.0f", degrees(p.GapMin), degrees(p.GapMin+p.GapRange)),
			fmt.Sprintf("%.0f", p.DangerProbability*100),
			fmt.Sprintf("%.0f-%.0f", degrees(p.DangerMin), degrees(p.DangerMin+p.DangerRange)),
		})
	}
	return rows
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// TierKeyMap defines the key bindings for the tier table.
type TierKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TierKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k TierKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultTierKeyMap returns default key bindings.
func DefaultTierKeyMap() TierKeyMap {
	return TierKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TierTableModel is the Bubble Tea model for the difficulty table.
type TierTableModel struct {
	title    string
	table    table.Model
	help     help.Model
	keys     TierKeyMap
	quitting bool
}

// NewTierTableModel creates a table over rows.
func NewTierTableModel(title string, rows []table.Row, height int) TierTableModel {
	widths := []int{6, 10, 10, 10, 10}
	columns := make([]table.Column, len(TierColumns))
	for i, t := range TierColumns {
		columns[i] = table.Column{Title: t, Width: widths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height-6, 3)), // Leave room for title and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TierTableModel{
		title: title,
		table: t,
		help:  help.New(),
		keys:  DefaultTierKeyMap(),
	}
}

// Init initializes the tier table model.
func (m TierTableModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tier table.
func (m TierTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-6, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the tier table.
func (m TierTableModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunTierTable shows the difficulty table until the user quits.
func RunTierTable(title string, rows []table.Row, height int) error {
	p := tea.NewProgram(NewTierTableModel(title, rows, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
