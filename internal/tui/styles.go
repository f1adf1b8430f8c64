package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskfocus/internal/timer"
)

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorWork    lipgloss.Color = "#f38ba8"
	colorBreak   lipgloss.Color = "#a6e3a1"
	colorLong    lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorSurface lipgloss.Color = "#313244"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	clockStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle    = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 2)
	successStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorLong)
	dotDoneStyle   = lipgloss.NewStyle().Foreground(colorWork)
	dotTodoStyle   = lipgloss.NewStyle().Foreground(colorSurface)
	timerBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 4)
	sectionStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginBottom(1)
	settingRow     = lipgloss.NewStyle().Padding(0, 1)
	settingRowFocus = lipgloss.NewStyle().Padding(0, 1).Foreground(colorLong).Bold(true)
)

// modeStyle colors the mode label per interval kind.
func modeStyle(m timer.Mode) lipgloss.Style {
	switch m {
	case timer.ModeBreak:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBreak)
	case timer.ModeLongBreak:
		return lipgloss.NewStyle().Bold(true).Foreground(colorLong)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorWork)
	}
}
