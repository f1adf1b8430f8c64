// Package config loads and saves application settings via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Timer    TimerConfig    `mapstructure:"timer"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
}

// TimerConfig holds the focus timer settings.
type TimerConfig struct {
	WorkSeconds      int  `mapstructure:"work_seconds"`
	BreakSeconds     int  `mapstructure:"break_seconds"`
	LongBreakSeconds int  `mapstructure:"long_break_seconds"`
	AutoStartNext    bool `mapstructure:"auto_start_next"`
	SoundOnComplete  bool `mapstructure:"sound_on_complete"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AccentColor string `mapstructure:"accent_color"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// JASKFOCUS_. Non-positive durations are replaced with the defaults so a
// mangled config file cannot stall the timer.
func Load() (Config, error) {
	v := viper.New()

	// default values: classic 25/5/15 pomodoro split
	v.SetDefault("timer.work_seconds", 1500)
	v.SetDefault("timer.break_seconds", 300)
	v.SetDefault("timer.long_break_seconds", 900)
	v.SetDefault("timer.auto_start_next", true)
	v.SetDefault("timer.sound_on_complete", true)
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskfocus", "jaskfocus.db"))
	v.SetDefault("ui.accent_color", "#89b4fa")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKFOCUS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskfocus"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKFOCUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Timer = c.Timer.normalized()
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI settings view.
func Save(cfg Config) error {
	path := os.Getenv("JASKFOCUS_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "jaskfocus", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("timer.work_seconds", cfg.Timer.WorkSeconds)
	v.Set("timer.break_seconds", cfg.Timer.BreakSeconds)
	v.Set("timer.long_break_seconds", cfg.Timer.LongBreakSeconds)
	v.Set("timer.auto_start_next", cfg.Timer.AutoStartNext)
	v.Set("timer.sound_on_complete", cfg.Timer.SoundOnComplete)
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.accent_color", cfg.UI.AccentColor)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// normalized substitutes defaults for durations that cannot drive a countdown.
func (t TimerConfig) normalized() TimerConfig {
	if t.WorkSeconds <= 0 {
		t.WorkSeconds = 1500
	}
	if t.BreakSeconds <= 0 {
		t.BreakSeconds = 300
	}
	if t.LongBreakSeconds <= 0 {
		t.LongBreakSeconds = 900
	}
	return t
}
