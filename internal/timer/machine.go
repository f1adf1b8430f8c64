// Package timer implements the focus timer state machine: a countdown that
// cycles between work intervals and short/long breaks. The machine is pure
// state. It owns no clock and renders nothing; the shell drives it with Tick
// once per elapsed second and supplies side effects through Host.
package timer

import "fmt"

// Mode identifies which interval the countdown is measuring.
type Mode string

const (
	ModeWork      Mode = "work"
	ModeBreak     Mode = "break"
	ModeLongBreak Mode = "long_break"
)

// Label returns the mode name shown to the user.
func (m Mode) Label() string {
	switch m {
	case ModeBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// Severity classifies a notice for presentation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Every fourth completed work interval earns a long break.
const sessionsPerLongBreak = 4

// Config holds the externally supplied timer settings. All durations are
// positive seconds; callers validate before handing the config over.
type Config struct {
	WorkSeconds      int
	BreakSeconds     int
	LongBreakSeconds int
	AutoStartNext    bool
	SoundOnComplete  bool
}

// DefaultConfig is the classic 25/5/15 pomodoro split.
func DefaultConfig() Config {
	return Config{
		WorkSeconds:      1500,
		BreakSeconds:     300,
		LongBreakSeconds: 900,
		AutoStartNext:    true,
		SoundOnComplete:  true,
	}
}

// Host is the capability surface the machine calls into. Implementations are
// fire-and-forget; a PlayCompletionSound error is swallowed and never alters
// timer state.
type Host interface {
	ShowNotice(text string, sev Severity)
	PlayCompletionSound() error
}

// noopHost keeps the machine usable when no host is wired.
type noopHost struct{}

func (noopHost) ShowNotice(string, Severity) {}
func (noopHost) PlayCompletionSound() error  { return nil }

// Machine is the timer state. Not safe for concurrent use; all mutation is
// expected to arrive serialized through a single event loop.
type Machine struct {
	cfg  Config
	host Host

	mode      Mode
	remaining int
	running   bool
	completed int
}

// New returns a machine resting at the start of a work interval.
func New(cfg Config, host Host) *Machine {
	if host == nil {
		host = noopHost{}
	}
	m := &Machine{cfg: cfg, host: host, mode: ModeWork}
	m.remaining = m.durationFor(ModeWork)
	return m
}

func (m *Machine) Mode() Mode             { return m.mode }
func (m *Machine) Remaining() int         { return m.remaining }
func (m *Machine) Running() bool          { return m.running }
func (m *Machine) CompletedSessions() int { return m.completed }

// Duration returns the configured length of the active interval in seconds.
func (m *Machine) Duration() int { return m.durationFor(m.mode) }

// Progress reports how far the active interval has advanced, in [0, 1].
func (m *Machine) Progress() float64 {
	d := m.durationFor(m.mode)
	return 1 - float64(m.remaining)/float64(d)
}

// ToggleRunning starts the countdown if paused and pauses it if running.
func (m *Machine) ToggleRunning() {
	m.running = !m.running
}

// Reset pauses the countdown and restores the active interval to its full
// duration. Mode and the completed-session count are untouched.
func (m *Machine) Reset() {
	m.running = false
	m.remaining = m.durationFor(m.mode)
}

// SwitchMode pauses the countdown and jumps to the target interval at full
// duration. Legal for any mode, from any state.
func (m *Machine) SwitchMode(target Mode) {
	m.running = false
	m.mode = target
	m.remaining = m.durationFor(target)
}

// Tick advances the countdown by one second. The interval that reaches zero
// completes synchronously inside the same call, so a completed machine is
// already resting at the start of the next interval when Tick returns. Ticks
// delivered while paused are dropped; the shell's tick source may deliver one
// stale tick after a pause.
func (m *Machine) Tick() {
	if !m.running || m.remaining == 0 {
		return
	}
	m.remaining--
	if m.remaining == 0 {
		m.complete()
	}
}

// SetConfig re-reads externally changed settings. A shrunk duration clamps
// the live countdown; a machine resting at full duration snaps to the new
// full duration so an idle timer always shows the configured length.
func (m *Machine) SetConfig(cfg Config) {
	atFull := !m.running && m.remaining == m.durationFor(m.mode)
	m.cfg = cfg
	full := m.durationFor(m.mode)
	if atFull || m.remaining > full {
		m.remaining = full
	}
}

func (m *Machine) durationFor(mode Mode) int {
	switch mode {
	case ModeBreak:
		return m.cfg.BreakSeconds
	case ModeLongBreak:
		return m.cfg.LongBreakSeconds
	default:
		return m.cfg.WorkSeconds
	}
}

// complete handles the zero-crossing. It fires exactly once per finished
// interval, from the Tick that brought the countdown to zero.
func (m *Machine) complete() {
	if m.cfg.SoundOnComplete {
		_ = m.host.PlayCompletionSound()
	}

	if m.mode == ModeWork {
		m.completed++
		if m.completed%sessionsPerLongBreak == 0 {
			m.mode = ModeLongBreak
			m.host.ShowNotice(fmt.Sprintf("Focus session %d complete. Time for a long break.", m.completed), SeveritySuccess)
		} else {
			m.mode = ModeBreak
			m.host.ShowNotice(fmt.Sprintf("Focus session %d complete. Take a short break.", m.completed), SeveritySuccess)
		}
		m.remaining = m.durationFor(m.mode)
		m.running = m.cfg.AutoStartNext
		return
	}

	// Breaks never auto-start the next focus session; getting back to work
	// is always a user action.
	m.mode = ModeWork
	m.remaining = m.durationFor(ModeWork)
	m.running = false
	m.host.ShowNotice("Break finished. Ready to focus when you are.", SeverityInfo)
}
