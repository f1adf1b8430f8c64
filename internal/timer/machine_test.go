package timer

import (
	"errors"
	"fmt"
	"testing"
)

// recordingHost captures notices and sound triggers, optionally failing
// playback to exercise the swallow path.
type recordingHost struct {
	notices    []string
	severities []Severity
	sounds     int
	soundErr   error
}

func (h *recordingHost) ShowNotice(text string, sev Severity) {
	h.notices = append(h.notices, text)
	h.severities = append(h.severities, sev)
}

func (h *recordingHost) PlayCompletionSound() error {
	h.sounds++
	return h.soundErr
}

func testConfig() Config {
	return Config{
		WorkSeconds:      4,
		BreakSeconds:     2,
		LongBreakSeconds: 3,
		AutoStartNext:    true,
		SoundOnComplete:  true,
	}
}

// runInterval ticks a running machine through n seconds.
func runInterval(t *testing.T, m *Machine, n int) {
	t.Helper()
	if !m.Running() {
		m.ToggleRunning()
	}
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

func TestNewMachineRestsAtFullWorkInterval(t *testing.T) {
	m := New(DefaultConfig(), nil)
	if m.Mode() != ModeWork {
		t.Fatalf("mode = %q, want %q", m.Mode(), ModeWork)
	}
	if m.Remaining() != 1500 {
		t.Fatalf("remaining = %d, want 1500", m.Remaining())
	}
	if m.Running() {
		t.Fatal("new machine must start paused")
	}
	if m.CompletedSessions() != 0 {
		t.Fatalf("completed = %d, want 0", m.CompletedSessions())
	}
}

func TestToggleRunningFlipsAndRestores(t *testing.T) {
	m := New(testConfig(), nil)
	m.ToggleRunning()
	if !m.Running() {
		t.Fatal("first toggle should start the countdown")
	}
	m.ToggleRunning()
	if m.Running() {
		t.Fatal("second toggle should return to paused")
	}
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	m := New(testConfig(), nil)
	m.Tick()
	m.Tick()
	if m.Remaining() != 4 {
		t.Fatalf("remaining = %d, want 4 (paused machine must not count down)", m.Remaining())
	}
}

func TestFullIntervalCompletesExactlyOnce(t *testing.T) {
	host := &recordingHost{}
	m := New(testConfig(), host)
	runInterval(t, m, 4)

	if got := m.CompletedSessions(); got != 1 {
		t.Fatalf("completed = %d, want 1", got)
	}
	if len(host.notices) != 1 {
		t.Fatalf("notices = %d, want exactly 1", len(host.notices))
	}
	if host.sounds != 1 {
		t.Fatalf("sound triggers = %d, want exactly 1", host.sounds)
	}
	if m.Mode() != ModeBreak {
		t.Fatalf("mode after first work interval = %q, want %q", m.Mode(), ModeBreak)
	}
	if m.Remaining() != 2 {
		t.Fatalf("remaining = %d, want break duration 2", m.Remaining())
	}
}

func TestWorkCompletionHonorsAutoStart(t *testing.T) {
	for _, auto := range []bool{true, false} {
		t.Run(fmt.Sprintf("auto=%v", auto), func(t *testing.T) {
			cfg := testConfig()
			cfg.AutoStartNext = auto
			m := New(cfg, nil)
			runInterval(t, m, 4)
			if m.Running() != auto {
				t.Fatalf("running = %v after work completion, want %v", m.Running(), auto)
			}
		})
	}
}

func TestBreakCompletionNeverAutoStarts(t *testing.T) {
	for _, mode := range []Mode{ModeBreak, ModeLongBreak} {
		t.Run(string(mode), func(t *testing.T) {
			cfg := testConfig()
			cfg.AutoStartNext = true
			m := New(cfg, nil)
			m.SwitchMode(mode)
			runInterval(t, m, m.Duration())

			if m.Mode() != ModeWork {
				t.Fatalf("mode = %q, want %q", m.Mode(), ModeWork)
			}
			if m.Remaining() != cfg.WorkSeconds {
				t.Fatalf("remaining = %d, want %d", m.Remaining(), cfg.WorkSeconds)
			}
			if m.Running() {
				t.Fatal("break-to-work transition must not auto-start")
			}
		})
	}
}

func TestEveryFourthSessionEarnsLongBreak(t *testing.T) {
	cfg := testConfig()
	cfg.AutoStartNext = false
	host := &recordingHost{}
	m := New(cfg, host)

	for k := 1; k <= 8; k++ {
		m.SwitchMode(ModeWork)
		runInterval(t, m, cfg.WorkSeconds)

		want := ModeBreak
		if k%4 == 0 {
			want = ModeLongBreak
		}
		if m.Mode() != want {
			t.Fatalf("after session %d: mode = %q, want %q", k, m.Mode(), want)
		}
		if m.CompletedSessions() != k {
			t.Fatalf("after session %d: completed = %d", k, m.CompletedSessions())
		}
	}

	for _, sev := range host.severities {
		if sev != SeveritySuccess {
			t.Fatalf("work completion notice severity = %q, want %q", sev, SeveritySuccess)
		}
	}
}

func TestFourFullCyclesEndInLongBreak(t *testing.T) {
	cfg := testConfig()
	m := New(cfg, nil)

	// Work -> break -> work, three times, then the fourth work interval.
	for cycle := 0; cycle < 3; cycle++ {
		runInterval(t, m, cfg.WorkSeconds) // auto-starts the break
		for i := 0; i < cfg.BreakSeconds; i++ {
			m.Tick()
		}
	}
	runInterval(t, m, cfg.WorkSeconds)

	if m.Mode() != ModeLongBreak {
		t.Fatalf("mode = %q, want %q", m.Mode(), ModeLongBreak)
	}
	if m.Remaining() != cfg.LongBreakSeconds {
		t.Fatalf("remaining = %d, want %d", m.Remaining(), cfg.LongBreakSeconds)
	}
	if m.CompletedSessions() != 4 {
		t.Fatalf("completed = %d, want 4", m.CompletedSessions())
	}
}

func TestDefaultDurationsScenario(t *testing.T) {
	cfg := DefaultConfig()
	m := New(cfg, nil)
	runInterval(t, m, 1500)

	if m.Mode() != ModeBreak {
		t.Fatalf("mode = %q, want %q", m.Mode(), ModeBreak)
	}
	if m.Remaining() != 300 {
		t.Fatalf("remaining = %d, want 300", m.Remaining())
	}
	if !m.Running() {
		t.Fatal("break should auto-start with default settings")
	}
	if m.CompletedSessions() != 1 {
		t.Fatalf("completed = %d, want 1", m.CompletedSessions())
	}
}

func TestSwitchModePausesAndRefills(t *testing.T) {
	cfg := testConfig()
	m := New(cfg, nil)
	runInterval(t, m, 2) // mid-interval, running

	m.SwitchMode(ModeLongBreak)
	if m.Running() {
		t.Fatal("switch must pause the countdown")
	}
	if m.Mode() != ModeLongBreak {
		t.Fatalf("mode = %q, want %q", m.Mode(), ModeLongBreak)
	}
	if m.Remaining() != cfg.LongBreakSeconds {
		t.Fatalf("remaining = %d, want %d", m.Remaining(), cfg.LongBreakSeconds)
	}
	if m.CompletedSessions() != 0 {
		t.Fatal("switch must not touch the session count")
	}
}

func TestResetKeepsModeAndSessions(t *testing.T) {
	cfg := testConfig()
	m := New(cfg, nil)
	runInterval(t, m, cfg.WorkSeconds) // one session done, now in break
	m.Tick()                           // partially into the break

	m.Reset()
	if m.Running() {
		t.Fatal("reset must pause")
	}
	if m.Mode() != ModeBreak {
		t.Fatalf("reset changed mode to %q", m.Mode())
	}
	if m.Remaining() != cfg.BreakSeconds {
		t.Fatalf("remaining = %d, want %d", m.Remaining(), cfg.BreakSeconds)
	}
	if m.CompletedSessions() != 1 {
		t.Fatalf("completed = %d, want 1", m.CompletedSessions())
	}
}

func TestProgressBounds(t *testing.T) {
	cfg := testConfig()
	m := New(cfg, nil)
	if got := m.Progress(); got != 0 {
		t.Fatalf("progress at rest = %v, want 0", got)
	}

	m.ToggleRunning()
	prev := 0.0
	for i := 0; i < cfg.WorkSeconds-1; i++ {
		m.Tick()
		p := m.Progress()
		if p <= prev || p > 1 {
			t.Fatalf("progress after tick %d = %v (prev %v), want strictly increasing in (0,1]", i+1, p, prev)
		}
		prev = p
	}

	m.Reset()
	if got := m.Progress(); got != 0 {
		t.Fatalf("progress after reset = %v, want 0", got)
	}
}

func TestSoundFailureLeavesStateUntouched(t *testing.T) {
	host := &recordingHost{soundErr: errors.New("playback not permitted")}
	cfg := testConfig()
	m := New(cfg, host)
	runInterval(t, m, cfg.WorkSeconds)

	if host.sounds != 1 {
		t.Fatalf("sound triggers = %d, want 1", host.sounds)
	}
	if m.Mode() != ModeBreak || m.Remaining() != cfg.BreakSeconds || !m.Running() {
		t.Fatalf("sound failure disturbed state: mode=%q remaining=%d running=%v",
			m.Mode(), m.Remaining(), m.Running())
	}
	if len(host.notices) != 1 {
		t.Fatalf("notices = %d, want 1", len(host.notices))
	}
}

func TestSoundDisabledSkipsPlayback(t *testing.T) {
	host := &recordingHost{}
	cfg := testConfig()
	cfg.SoundOnComplete = false
	m := New(cfg, host)
	runInterval(t, m, cfg.WorkSeconds)

	if host.sounds != 0 {
		t.Fatalf("sound triggers = %d, want 0 when disabled", host.sounds)
	}
}

func TestToggleAtZeroDoesNotRecomplete(t *testing.T) {
	host := &recordingHost{}
	cfg := testConfig()
	cfg.AutoStartNext = false
	m := New(cfg, host)
	runInterval(t, m, cfg.WorkSeconds)

	// Paused at the start of the break. Toggling and ticking must not replay
	// the completion that already fired on the zero-crossing.
	m.ToggleRunning()
	m.ToggleRunning()
	if host.sounds != 1 || len(host.notices) != 1 {
		t.Fatalf("completion replayed: sounds=%d notices=%d", host.sounds, len(host.notices))
	}
}

func TestSetConfigClampsLiveCountdown(t *testing.T) {
	cfg := testConfig()
	m := New(cfg, nil)
	m.ToggleRunning()
	m.Tick() // remaining 3

	cfg.WorkSeconds = 2
	m.SetConfig(cfg)
	if m.Remaining() != 2 {
		t.Fatalf("remaining = %d, want clamped to 2", m.Remaining())
	}
}

func TestSetConfigSnapsIdleTimerToNewDuration(t *testing.T) {
	cfg := testConfig()
	m := New(cfg, nil)

	cfg.WorkSeconds = 10
	m.SetConfig(cfg)
	if m.Remaining() != 10 {
		t.Fatalf("remaining = %d, want 10 (idle timer shows the configured length)", m.Remaining())
	}
}

func TestNoticeContentDiffersByBranch(t *testing.T) {
	cfg := testConfig()
	cfg.AutoStartNext = false
	host := &recordingHost{}
	m := New(cfg, host)

	for k := 1; k <= 4; k++ {
		m.SwitchMode(ModeWork)
		runInterval(t, m, cfg.WorkSeconds)
	}
	if len(host.notices) != 4 {
		t.Fatalf("notices = %d, want 4", len(host.notices))
	}
	if host.notices[0] == host.notices[3] {
		t.Fatalf("short-break and long-break notices must differ, both %q", host.notices[0])
	}

	m.SwitchMode(ModeBreak)
	runInterval(t, m, cfg.BreakSeconds)
	last := host.notices[len(host.notices)-1]
	lastSev := host.severities[len(host.severities)-1]
	if last == host.notices[0] {
		t.Fatal("break completion notice must differ from work completion notice")
	}
	if lastSev != SeverityInfo {
		t.Fatalf("break completion severity = %q, want %q", lastSev, SeverityInfo)
	}
}
