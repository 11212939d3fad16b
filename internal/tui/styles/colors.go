// Package styles provides the chrome palette and style definitions for the
// huepick TUI. The chrome stays neutral so the user's palette is the only
// colourful thing on screen; helpers at the bottom turn palette colours into
// lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/huepick/internal/color"
)

// --- Chrome palette ---

var (
	// Core text
	White   = lipgloss.Color("#E2E2E2")
	Gray    = lipgloss.Color("#888888")
	Muted   = lipgloss.Color("#555555")
	DimGray = lipgloss.Color("#444444")
	Dark    = lipgloss.Color("#333333")

	// Accent
	Blue     = lipgloss.Color("#5FAFFF")
	DimBlue  = lipgloss.Color("#3A6FA0")
	DarkBlue = lipgloss.Color("#1A2F40")

	// Status
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)

// Of converts a palette colour to a lipgloss colour.
func Of(c color.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Fill paints the cell background with c.
func Fill(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(Of(c))
}

// Ink paints text with c.
func Ink(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Of(c))
}

// On paints text with fg over a bg fill.
func On(fg, bg color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Of(fg)).Background(Of(bg))
}
