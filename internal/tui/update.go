package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskfocus/internal/timer"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		w := msg.Width - 14
		if w > 48 {
			w = 48
		}
		if w > 0 {
			a.progressBar.Width = w
		}
		return a, nil

	case tickMsg:
		return a.handleTick(msg)

	case statusClearMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
		}
		return a, nil

	case statsMsg:
		if msg.err != nil {
			a.logger.Warn("load stats failed", "err", msg.err)
			return a, nil
		}
		a.today = msg.today
		a.week = msg.week
		a.recent = msg.recent
		return a, nil

	case sessionSavedMsg:
		if msg.err != nil {
			a.logger.Warn("save session failed", "err", msg.err)
			return a, nil
		}
		return a, a.loadStats()

	case configSavedMsg:
		if msg.err != nil {
			a.logger.Warn("save config failed", "err", msg.err)
			return a, a.setStatus("Could not save settings.", timer.SeverityInfo)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleTick advances the machine by one second and keeps the tick chain
// alive while the countdown runs.
func (a *App) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != a.tickSeq || !a.machine.Running() {
		return a, nil
	}

	before := a.machine.CompletedSessions()
	a.machine.Tick()

	cmds := a.afterMachineCall(before)
	if a.machine.Running() {
		cmds = append(cmds, a.tickCmd())
	}
	return a, tea.Batch(cmds...)
}

// afterMachineCall drains host notices into the status bar and records a
// finished work interval in history.
func (a *App) afterMachineCall(completedBefore int) []tea.Cmd {
	var cmds []tea.Cmd

	for _, n := range a.bridge.drain() {
		cmds = append(cmds, a.setStatus(n.text, n.sev))
	}

	if a.machine.CompletedSessions() > completedBefore {
		row := a.completedSessionRow(nowUTC())
		a.workStartedAt = time.Time{}
		a.logger.Info("work session complete",
			"sessions", a.machine.CompletedSessions(), "next", string(a.machine.Mode()))
		if cmd := a.saveSession(row); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// the settings editor captures raw input first
	if a.view == viewSettings && a.editing {
		return a.handleSettingsInput(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.NextView):
		return a.cycleView()
	}

	switch a.view {
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHistory:
		return a, nil
	default:
		return a.handleTimerKey(msg)
	}
}

func (a *App) cycleView() (tea.Model, tea.Cmd) {
	switch a.view {
	case viewTimer:
		a.view = viewHistory
		return a, a.loadStats()
	case viewHistory:
		a.view = viewSettings
		a.settingsCursor = 0
		return a, nil
	default:
		a.view = viewTimer
		return a, nil
	}
}

func (a *App) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Toggle):
		wasRunning := a.machine.Running()
		a.machine.ToggleRunning()
		if wasRunning {
			return a, nil // chain dies by not rescheduling
		}
		if a.machine.Mode() == timer.ModeWork && a.workStartedAt.IsZero() {
			a.workStartedAt = time.Now()
		}
		a.tickSeq++
		return a, a.tickCmd()

	case key.Matches(msg, a.keys.Reset):
		a.machine.Reset()
		a.workStartedAt = time.Time{}
		return a, a.setStatus("Timer reset.", timer.SeverityInfo)

	case key.Matches(msg, a.keys.Work):
		return a.switchMode(timer.ModeWork)
	case key.Matches(msg, a.keys.Break):
		return a.switchMode(timer.ModeBreak)
	case key.Matches(msg, a.keys.LongBreak):
		return a.switchMode(timer.ModeLongBreak)
	}
	return a, nil
}

func (a *App) switchMode(m timer.Mode) (tea.Model, tea.Cmd) {
	a.machine.SwitchMode(m)
	a.workStartedAt = time.Time{}
	return a, a.setStatus("Switched to "+m.Label()+".", timer.SeverityInfo)
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.UpDown):
		switch msg.String() {
		case "up", "k":
			a.settingsCursor = (a.settingsCursor + settingCount - 1) % settingCount
		default:
			a.settingsCursor = (a.settingsCursor + 1) % settingCount
		}
		return a, nil

	case key.Matches(msg, a.keys.Enter):
		switch a.settingsCursor {
		case settingAutoStart:
			a.cfg.Timer.AutoStartNext = !a.cfg.Timer.AutoStartNext
			return a, a.applySettings()
		case settingSound:
			a.cfg.Timer.SoundOnComplete = !a.cfg.Timer.SoundOnComplete
			return a, a.applySettings()
		default:
			a.editing = true
			a.inputBuffer = ""
			return a, nil
		}
	}
	return a, nil
}

// handleSettingsInput collects digits for a duration field until enter.
func (a *App) handleSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.editing = false
		a.inputBuffer = ""
		return a, nil

	case key.Matches(msg, a.keys.Enter):
		a.editing = false
		return a, a.commitDuration()
	}

	switch msg.String() {
	case "backspace":
		if a.inputBuffer != "" {
			a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && s >= "0" && s <= "9" && len(a.inputBuffer) < 5 {
			a.inputBuffer += s
		}
	}
	return a, nil
}

// commitDuration parses the edited value as whole minutes.
func (a *App) commitDuration() tea.Cmd {
	raw := strings.TrimSpace(a.inputBuffer)
	a.inputBuffer = ""
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return a.setStatus("Enter a positive number of minutes.", timer.SeverityInfo)
	}

	seconds := minutes * 60
	switch a.settingsCursor {
	case settingWork:
		a.cfg.Timer.WorkSeconds = seconds
	case settingBreak:
		a.cfg.Timer.BreakSeconds = seconds
	case settingLongBreak:
		a.cfg.Timer.LongBreakSeconds = seconds
	}
	return a.applySettings()
}

// applySettings pushes the edited config into the machine and persists it.
func (a *App) applySettings() tea.Cmd {
	a.machine.SetConfig(machineConfig(a.cfg.Timer))
	return tea.Batch(
		a.setStatus("Settings saved.", timer.SeveritySuccess),
		a.saveConfig(),
	)
}
