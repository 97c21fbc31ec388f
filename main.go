package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/zobe03/se-todo-app/internal/category"
	"github.com/zobe03/se-todo-app/internal/config"
	"github.com/zobe03/se-todo-app/internal/storage"
	"github.com/zobe03/se-todo-app/internal/todo"
	"github.com/zobe03/se-todo-app/internal/ui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = config.FromEnv(cfg)

	logger := log.New(os.Stderr)
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	store, err := storage.New(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("could not open store", "dir", cfg.DataDir, "err", err)
	}

	todos := todo.NewController(store)
	categories := category.NewController(store)

	// Materialize any due recurrences before the first render.
	if created := todos.HandleRecurring(); len(created) > 0 {
		logger.Info("created recurring tasks", "count", len(created))
	}

	p := tea.NewProgram(ui.NewModel(todos, categories), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Fatal("ui error", "err", err)
	}
}
