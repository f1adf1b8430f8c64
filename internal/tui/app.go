// Package tui is the Bubble Tea shell around the focus timer. It owns the
// tick source, renders the timer widget, and implements the host capability
// surface (notices, sound, history storage) the state machine calls into.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskfocus/internal/config"
	"github.com/jask/jaskfocus/internal/database"
	"github.com/jask/jaskfocus/internal/database/repository"
	"github.com/jask/jaskfocus/internal/timer"
)

type viewState string

const (
	viewTimer    viewState = "timer"
	viewHistory  viewState = "history"
	viewSettings viewState = "settings"
)

// settings editor rows, in display order
const (
	settingWork = iota
	settingBreak
	settingLongBreak
	settingAutoStart
	settingSound
	settingCount
)

// App ties the state machine to the terminal.
type App struct {
	ctx      context.Context
	cfg      config.Config
	machine  *timer.Machine
	bridge   *hostBridge
	sessions *repository.SessionRepo
	logger   *slog.Logger

	view        viewState
	keys        keyMap
	progressBar progress.Model

	width  int
	height int

	status    string
	statusSev timer.Severity
	statusSeq int

	// tickSeq invalidates stale tea.Tick deliveries after a pause, so at
	// most one tick chain is ever live.
	tickSeq int

	// workStartedAt tracks the wall-clock start of the current work
	// interval for the history row written on completion.
	workStartedAt time.Time

	today  repository.Totals
	week   repository.Totals
	recent []repository.Session

	settingsCursor int
	editing        bool
	inputBuffer    string
}

// New builds the shell. sessions and logger may be nil; history recording and
// logging degrade to no-ops.
func New(ctx context.Context, cfg config.Config, sessions *repository.SessionRepo, play func() error, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	bridge := &hostBridge{play: play, logger: logger}
	a := &App{
		ctx:         ctx,
		cfg:         cfg,
		bridge:      bridge,
		sessions:    sessions,
		logger:      logger,
		view:        viewTimer,
		keys:        newKeyMap(),
		progressBar: progress.New(progress.WithDefaultGradient()),
	}
	a.machine = timer.New(machineConfig(cfg.Timer), bridge)
	return a
}

// machineConfig maps the persisted settings onto the state machine's config.
func machineConfig(t config.TimerConfig) timer.Config {
	return timer.Config{
		WorkSeconds:      t.WorkSeconds,
		BreakSeconds:     t.BreakSeconds,
		LongBreakSeconds: t.LongBreakSeconds,
		AutoStartNext:    t.AutoStartNext,
		SoundOnComplete:  t.SoundOnComplete,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadStats()
}

// loadStats queries today's and the trailing week's aggregates plus the
// recent session list.
func (a *App) loadStats() tea.Cmd {
	if a.sessions == nil {
		return nil
	}
	return func() tea.Msg {
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		var msg statsMsg
		var err error
		if msg.today, err = a.sessions.TotalsSince(a.ctx, startOfDay.UTC()); err != nil {
			return statsMsg{err: err}
		}
		if msg.week, err = a.sessions.TotalsSince(a.ctx, now.AddDate(0, 0, -7).UTC()); err != nil {
			return statsMsg{err: err}
		}
		if msg.recent, err = a.sessions.ListRecent(a.ctx, 10); err != nil {
			return statsMsg{err: err}
		}
		return msg
	}
}

// saveSession writes one completed work interval to history.
func (a *App) saveSession(s repository.Session) tea.Cmd {
	if a.sessions == nil {
		return nil
	}
	return func() tea.Msg {
		return sessionSavedMsg{err: a.sessions.Insert(a.ctx, s)}
	}
}

// saveConfig persists the current settings and is chained from the settings
// editor.
func (a *App) saveConfig() tea.Cmd {
	cfg := a.cfg
	return func() tea.Msg {
		return configSavedMsg{err: config.Save(cfg)}
	}
}

func (a *App) tickCmd() tea.Cmd {
	seq := a.tickSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// setStatus shows a status-bar notice and schedules its expiry.
func (a *App) setStatus(text string, sev timer.Severity) tea.Cmd {
	a.status = text
	a.statusSev = sev
	a.statusSeq++
	seq := a.statusSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// completedSessionRow builds the history row for the work interval that just
// finished.
func (a *App) completedSessionRow(endedAt time.Time) repository.Session {
	started := a.workStartedAt
	if started.IsZero() {
		started = endedAt.Add(-time.Duration(a.cfg.Timer.WorkSeconds) * time.Second)
	}
	return repository.Session{
		ID:              newSessionID(),
		Mode:            string(timer.ModeWork),
		StartedAt:       started.UTC().Truncate(time.Second),
		EndedAt:         endedAt,
		DurationSeconds: a.cfg.Timer.WorkSeconds,
	}
}

func nowUTC() time.Time { return database.Now() }
