// Package ui provides terminal feedback for modularizer: headless
// detection, themed status symbols and progress spinners.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ThemeColors holds the hex colors used by interactive components.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Muted     string
}

// Theme controls the appearance of UI components.
type Theme struct {
	NoColor bool
	Colors  ThemeColors
}

// ThemeConfig configures NewTheme.
type ThemeConfig struct {
	NoColor bool
	Mode    string // "dark" or "light"; anything else is treated as dark
}

var darkColors = ThemeColors{
	Primary:   "#DA7756",
	Secondary: "#7C3AED",
	Success:   "#10B981",
	Error:     "#EF4444",
	Warning:   "#F59E0B",
	Muted:     "#9CA3AF",
}

var lightColors = ThemeColors{
	Primary:   "#C45A3C",
	Secondary: "#5B21B6",
	Success:   "#059669",
	Error:     "#DC2626",
	Warning:   "#D97706",
	Muted:     "#6B7280",
}

// NewTheme creates a Theme from cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	colors := darkColors
	if cfg.Mode == "light" {
		colors = lightColors
	}
	return &Theme{NoColor: cfg.NoColor, Colors: colors}
}

// DefaultTheme picks the light or dark palette from the terminal background,
// honouring the NO_COLOR convention.
func DefaultTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return NewTheme(ThemeConfig{NoColor: noColor, Mode: themeMode(lipgloss.HasDarkBackground())})
}

func themeMode(darkBackground bool) string {
	if darkBackground {
		return "dark"
	}
	return "light"
}
