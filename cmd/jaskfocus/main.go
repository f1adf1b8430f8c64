package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskfocus/internal/config"
	"github.com/jask/jaskfocus/internal/database"
	"github.com/jask/jaskfocus/internal/database/repository"
	"github.com/jask/jaskfocus/internal/logging"
	"github.com/jask/jaskfocus/internal/sound"
	"github.com/jask/jaskfocus/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logRuntime, err := logging.New()
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logRuntime.Close()
	logger := logRuntime.Logger

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	sessions := repository.NewSessionRepo(db)
	chime := sound.NewPlayer()

	app := tui.New(ctx, cfg, sessions, chime.Play, logger)
	logger.Info("starting", "db", cfg.Database.Path)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", "err", err)
		log.Fatalf("run: %v", err)
	}
}
