package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/core"
	"github.com/vovakirdan/tui-helix/internal/games/helix"
)

func TestApplyKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		rotation float64
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, -0.2},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, 0.2},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionRotateLeft, -0.2},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionStart, 0},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, 0},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, 0},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, 0},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if !keys.ApplyKey(tt.msg, &frame, 0.2) {
				t.Fatal("key not consumed")
			}
			if !frame.Has(tt.action) {
				t.Errorf("frame lacks %v", tt.action)
			}
			if math.Abs(frame.RotationDelta-tt.rotation) > 1e-12 {
				t.Errorf("RotationDelta = %v, want %v", frame.RotationDelta, tt.rotation)
			}
		})
	}

	frame := core.NewInputFrame()
	if keys.ApplyKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, &frame, 0.2) {
		t.Error("unbound key consumed")
	}
}

func TestDragState(t *testing.T) {
	var d dragState

	steps := []struct {
		msg  tea.MouseMsg
		want int
	}{
		{tea.MouseMsg{X: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, 0},
		{tea.MouseMsg{X: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 0},
		{tea.MouseMsg{X: 14, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, 4},
		{tea.MouseMsg{X: 12, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, -2},
		{tea.MouseMsg{X: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, 0},
		{tea.MouseMsg{X: 30, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, 0},
	}

	for i, s := range steps {
		if got := d.update(s.msg); got != s.want {
			t.Errorf("step %d: dx = %d, want %d", i, got, s.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(6, 0, "hex", core.Color("#E84855"))
	s.DrawTextColored(0, 1, "ansi", core.ColorCyan)

	out := RenderScreen(s, newStyleCache())
	for _, want := range []string{"plain", "hex", "ansi"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q: %q", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, want 1", got)
	}
}

func newTestModel(t *testing.T) (Model, *helix.Game) {
	t.Helper()
	cfg := config.DefaultHelixConfig()
	g := helix.New()
	g.UseBestScore(core.NewMemoryBestScore(0))

	m := NewModel(g, Options{
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9},
		Physics:  cfg.Physics,
		Controls: cfg.Controls,
	})
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelStartAndRotate(t *testing.T) {
	m, g := newTestModel(t)
	now := time.Now()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = update(t, m, TickMsg(now))
	if !m.State().Playing {
		t.Fatalf("state after start = %+v", m.State())
	}

	m = update(t, m, tea.MouseMsg{X: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 15, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(now.Add(time.Second/60)))

	want := 5 * m.opts.Controls.RotationSpeed
	if got := g.Session().Snapshot().Rotation; math.Abs(got-want) > 1e-9 {
		t.Errorf("rotation after drag = %v, want %v", got, want)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg(now.Add(2*time.Second/60)))
	want -= m.opts.Controls.KeyStep
	if got := g.Session().Snapshot().Rotation; math.Abs(got-want) > 1e-9 {
		t.Errorf("rotation after key = %v, want %v", got, want)
	}
}

func TestModelStallIsCapped(t *testing.T) {
	m, g := newTestModel(t)
	now := time.Now()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = update(t, m, TickMsg(now))
	before := g.Session().Snapshot().Ball.Y

	update(t, m, TickMsg(now.Add(5*time.Second)))
	after := g.Session().Snapshot().Ball.Y

	maxDrop := -m.opts.Physics.TerminalVelocity * m.opts.Physics.MaxFrameDelta
	if drop := before - after; drop <= 0 || drop > maxDrop {
		t.Errorf("ball dropped %v in a stalled tick, want (0, %v]", drop, maxDrop)
	}
}

func TestModelViewAndResize(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.screen.Width() != 60 || m.screen.Height() != 20-shortHelpRows {
		t.Errorf("screen %dx%d", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "HELIX TOWER") || !strings.Contains(view, "quit") {
		t.Errorf("view missing title or help")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if m.screen.Height() != 20-fullHelpRows {
		t.Errorf("screen height %d with full help", m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestTierRows(t *testing.T) {
	cfg := config.DefaultHelixConfig()
	d := config.NewDifficultyModel(cfg.Difficulty)

	rows := TierRows(d, 4)
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	for i, r := range rows {
		if len(r) != len(TierColumns) {
			t.Fatalf("row %d has %d cells", i, len(r))
		}
	}
	if rows[0][1] != "0-9" || rows[1][1] != "10-19" {
		t.Errorf("level ranges = %q, %q", rows[0][1], rows[1][1])
	}
	if rows[0][3] != "25" {
		t.Errorf("tier 0 danger = %q, want 25", rows[0][3])
	}

	cfg.Difficulty.Enabled = false
	rows = TierRows(config.NewDifficultyModel(cfg.Difficulty), 4)
	if len(rows) != 1 || rows[0][1] != "all" {
		t.Errorf("fixed difficulty rows = %v", rows)
	}
}
