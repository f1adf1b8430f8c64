package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskfocus/internal/timer"
)

const appName = "Jaskfocus"

func (a *App) View() string {
	var body string
	switch a.view {
	case viewHistory:
		body = a.renderHistory()
	case viewSettings:
		body = a.renderSettings()
	default:
		body = a.renderTimer()
	}

	sections := []string{
		titleStyle.Render(appName) + mutedStyle.Render("  "+string(a.view)),
		"",
		body,
	}
	if a.status != "" {
		style := statusStyle
		if a.statusSev == timer.SeveritySuccess {
			style = successStyle
		}
		sections = append(sections, "", style.Render(a.status))
	}
	sections = append(sections, "", a.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (a *App) renderTimer() string {
	m := a.machine

	state := "paused (space to start)"
	if m.Running() {
		state = "running"
	}

	inner := lipgloss.JoinVertical(lipgloss.Center,
		modeStyle(m.Mode()).Render(m.Mode().Label()),
		clockStyle.Render(formatClock(m.Remaining())),
		a.progressBar.ViewAs(m.Progress()),
		"",
		sessionDots(m.CompletedSessions(), m.Mode()),
		mutedStyle.Render(state),
	)
	return timerBoxStyle.Render(inner)
}

func (a *App) renderHistory() string {
	lines := []string{
		sectionStyle.Render("History"),
		fmt.Sprintf("Today:     %d sessions, %d min focused", a.today.Sessions, a.today.FocusMinutes()),
		fmt.Sprintf("Last 7 d:  %d sessions, %d min focused", a.week.Sessions, a.week.FocusMinutes()),
		"",
	}
	if len(a.recent) == 0 {
		lines = append(lines, mutedStyle.Render("No completed sessions yet."))
	} else {
		lines = append(lines, mutedStyle.Render("Recent:"))
		for _, s := range a.recent {
			lines = append(lines, fmt.Sprintf("  %s  %2d min",
				s.EndedAt.Local().Format("Mon 15:04"), s.DurationSeconds/60))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderSettings() string {
	rows := []struct {
		label string
		value string
	}{
		{"Focus length", fmt.Sprintf("%d min", a.cfg.Timer.WorkSeconds/60)},
		{"Short break", fmt.Sprintf("%d min", a.cfg.Timer.BreakSeconds/60)},
		{"Long break", fmt.Sprintf("%d min", a.cfg.Timer.LongBreakSeconds/60)},
		{"Auto-start next", onOff(a.cfg.Timer.AutoStartNext)},
		{"Completion sound", onOff(a.cfg.Timer.SoundOnComplete)},
	}

	lines := []string{sectionStyle.Render("Settings"), ""}
	for i, row := range rows {
		prefix := "  "
		style := settingRow
		if i == a.settingsCursor {
			prefix = cursorStyle.Render("> ")
			style = settingRowFocus
		}
		value := row.value
		if a.editing && i == a.settingsCursor {
			value = a.inputBuffer + "_ min"
		}
		lines = append(lines, prefix+style.Render(fmt.Sprintf("%-18s %s", row.label, value)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderFooter() string {
	bindings := a.keys.ShortHelp()
	if a.view == viewSettings {
		bindings = a.keys.settingsHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return footerStyle.Render(strings.Join(parts, "  "))
}

// formatClock renders remaining seconds as m:ss, or h:mm:ss past an hour.
func formatClock(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// sessionDots shows progress toward the long break: filled dots for completed
// sessions in the current cycle of four. During the long break itself all
// four stay lit.
func sessionDots(completed int, mode timer.Mode) string {
	done := completed % 4
	if done == 0 && completed > 0 && mode == timer.ModeLongBreak {
		done = 4
	}
	var b strings.Builder
	for i := 0; i < 4; i++ {
		if i < done {
			b.WriteString(dotDoneStyle.Render("●"))
		} else {
			b.WriteString(dotTodoStyle.Render("○"))
		}
		if i < 3 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
