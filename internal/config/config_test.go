package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JASKFOCUS_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 1500, cfg.Timer.WorkSeconds)
	require.Equal(t, 300, cfg.Timer.BreakSeconds)
	require.Equal(t, 900, cfg.Timer.LongBreakSeconds)
	require.True(t, cfg.Timer.AutoStartNext)
	require.True(t, cfg.Timer.SoundOnComplete)
	require.NotEmpty(t, cfg.Database.Path)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[timer]
work_seconds = 600
break_seconds = 120
long_break_seconds = 480
auto_start_next = false
sound_on_complete = false

[ui]
accent_color = "#a6e3a1"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("JASKFOCUS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 600, cfg.Timer.WorkSeconds)
	require.Equal(t, 120, cfg.Timer.BreakSeconds)
	require.Equal(t, 480, cfg.Timer.LongBreakSeconds)
	require.False(t, cfg.Timer.AutoStartNext)
	require.False(t, cfg.Timer.SoundOnComplete)
	require.Equal(t, "#a6e3a1", cfg.UI.AccentColor)
}

func TestLoadNormalizesBadDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[timer]
work_seconds = 0
break_seconds = -5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("JASKFOCUS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 1500, cfg.Timer.WorkSeconds)
	require.Equal(t, 300, cfg.Timer.BreakSeconds)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("JASKFOCUS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Timer.WorkSeconds = 2700
	cfg.Timer.AutoStartNext = false
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2700, got.Timer.WorkSeconds)
	require.False(t, got.Timer.AutoStartNext)
	require.Equal(t, cfg.Timer.BreakSeconds, got.Timer.BreakSeconds)
}
