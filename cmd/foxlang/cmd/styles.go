package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/foxlang/fox"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorValue = lipgloss.Color("#10B981")
	colorTitle = lipgloss.Color("#8B5CF6")

	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorValue)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	promptStyle = lipgloss.NewStyle().Foreground(colorTitle)
)

func renderValue(v fox.Value) string {
	return valueStyle.Render(v.String()) + " " + mutedStyle.Render("("+v.Type()+")")
}
