package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/artgrid/internal/core"
)

// halfBlock shows the top pixel as foreground and the bottom as background.
const halfBlock = "▀"

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent identical cells to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)
			n := 0
			for x < s.Width() && s.Get(x, y) == start {
				n++
				x++
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(start.Top.Hex())).
				Background(lipgloss.Color(start.Bottom.Hex()))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}
