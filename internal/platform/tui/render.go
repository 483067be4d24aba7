package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-combos/internal/core"
)

// palette maps each core.Color to its lipgloss style.
var palette = func() [core.ColorCount]lipgloss.Style {
	var p [core.ColorCount]lipgloss.Style
	fg := func(code string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	p[core.ColorDefault] = lipgloss.NewStyle()
	p[core.ColorGreen] = fg("2")
	p[core.ColorWhite] = fg("7")
	p[core.ColorGray] = fg("245")
	p[core.ColorBrightRed] = fg("9")
	p[core.ColorBrightGreen] = fg("10")
	p[core.ColorBrightYellow] = fg("11")
	p[core.ColorBrightMagenta] = fg("13").Bold(true) // detected move banners
	p[core.ColorBrightCyan] = fg("14")
	p[core.ColorBrightWhite] = fg("15")
	return p
}()

// styleFor returns the style of c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color are styled as a single run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		run.Reset()
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(run.String()))
				run.Reset()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
