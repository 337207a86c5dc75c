package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the menu and scoreboard styles.
type Theme struct {
	Name       string
	Monochrome bool // Game screens drop colors and keep only intensity

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuTarget      lipgloss.Style

	// Footer
	HUDControls lipgloss.Style

	// Scoreboard table
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	TableBorder   lipgloss.Color
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuTarget:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),

		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		TableHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		TableSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		TableBorder:   lipgloss.Color("240"),
	}
}

// NeonTheme returns a brighter variant of the default theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	theme.MenuTarget = lipgloss.NewStyle().Foreground(lipgloss.Color("118"))
	theme.TableHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("199"))
	theme.TableSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("87")).Bold(true)
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.Monochrome = true
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.MenuTarget = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.TableHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"mono":    MonochromeTheme,
}

// ThemeNames lists the known theme names.
func ThemeNames() []string {
	return []string{"default", "neon", "mono"}
}

// ThemeByName looks up a theme by name (case-insensitive).
func ThemeByName(name string) (Theme, error) {
	fn, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (valid: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return fn(), nil
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
