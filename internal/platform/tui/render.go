package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/letter-workshop/internal/core"
)

// basePalette maps core.Color to lipgloss styles.
var basePalette = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// monoPalette keeps two intensities: bright colors render bold.
var monoPalette = map[core.Color]lipgloss.Style{
	core.ColorBrightRed:     lipgloss.NewStyle().Bold(true),
	core.ColorBrightGreen:   lipgloss.NewStyle().Bold(true),
	core.ColorBrightYellow:  lipgloss.NewStyle().Bold(true),
	core.ColorBrightBlue:    lipgloss.NewStyle().Bold(true),
	core.ColorBrightMagenta: lipgloss.NewStyle().Bold(true),
	core.ColorBrightCyan:    lipgloss.NewStyle().Bold(true),
	core.ColorBrightWhite:   lipgloss.NewStyle().Bold(true),
	core.ColorGray:          lipgloss.NewStyle().Faint(true),
}

// cellStyle resolves the style for a color under the given palette.
// Colors the palette leaves out fall back to the base palette, or plain text
// when the palette is monochrome.
func cellStyle(palette map[core.Color]lipgloss.Style, mono bool, c core.Color) lipgloss.Style {
	if style, ok := palette[c]; ok {
		return style
	}
	if mono {
		return lipgloss.NewStyle()
	}
	if style, ok := basePalette[c]; ok {
		return style
	}
	return basePalette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display using
// the current theme. Groups adjacent cells with the same color to minimize
// ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	theme := GetTheme()
	palette := basePalette
	if theme.Monochrome {
		palette = monoPalette
	}

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
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(palette, theme.Monochrome, startColor).Render(run.String()))
		}
	}
	return sb.String()
}
