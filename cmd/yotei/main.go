package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkobaru/yotei/internal/bus"
	"github.com/mkobaru/yotei/internal/config"
	"github.com/mkobaru/yotei/internal/notify"
	"github.com/mkobaru/yotei/internal/scheduler"
	"github.com/mkobaru/yotei/internal/storage"
	"github.com/mkobaru/yotei/internal/update"
	"github.com/mkobaru/yotei/internal/views"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "path to the config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "yotei failed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	views.SetColored(cfg.UI.ColoredOutput)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	events, err := store.Load(ctx)
	cancel()
	if err != nil {
		// A broken database should not keep the calendar from opening.
		events = storage.Seed(time.Now())
	}

	engine := scheduler.NewEngine(cfg.Scheduler.Buffer)
	engine.Start()
	defer engine.Stop()

	planner := scheduler.NewPlanner(engine,
		time.Duration(cfg.Scheduler.Lead)*time.Minute,
		time.Duration(cfg.Scheduler.Lookahead)*time.Hour)
	planner.Rearm(events, time.Now())

	eventBus := bus.New()
	defer eventBus.Close()
	eventBus.Publish(events)

	resync, err := scheduler.NewResync(planner, eventBus, cfg.Scheduler.Resync)
	if err != nil {
		return fmt.Errorf("resync: %w", err)
	}
	resync.Start()
	defer resync.Stop()

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notifications.Enabled {
		notifier = notify.Exec{}
	}

	m := update.NewModelWithRuntime(update.Runtime{
		Events:   events,
		Engine:   engine,
		Planner:  planner,
		Bus:      eventBus,
		Store:    store,
		Notifier: notifier,
	})

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
