package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-helix/internal/core"
)

// styleCache maps core.Color to lipgloss styles. Colors are ANSI indexes or
// hex strings, both of which lipgloss.Color understands.
type styleCache map[core.Color]lipgloss.Style

func newStyleCache() styleCache {
	return styleCache{core.ColorDefault: lipgloss.NewStyle()}
}

func (c styleCache) style(color core.Color) lipgloss.Style {
	if s, ok := c[color]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(string(color)))
	c[color] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
