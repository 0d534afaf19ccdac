package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"project_timer/internal"
	"project_timer/internal/config"
	"project_timer/internal/engine"
	"project_timer/internal/logger"
	"project_timer/internal/session"
	"project_timer/internal/store"
)

func main() {
	settings := config.Default()
	if path, err := config.DefaultPath(); err == nil {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		settings = loaded
	}

	logger.SetLevel(settings.LogLevel)
	logger.Init(settings.LogDir)
	logger.Infof("----------------- Project Timer Launched ----------------")

	backend, err := openBackend(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	st, err := store.Open(backend)
	if err != nil {
		// A bad record is recoverable: start from an empty one.
		logger.Warnf("%v", err)
	}

	eng := engine.New(settings.CountdownSeconds())
	ctl := session.NewController(st, eng)
	m := internal.NewModel(ctl)

	p := tea.NewProgram(m, tea.WithAltScreen())

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			p.Send(internal.MsgTick{})
		}
	}()

	go func() {
		for range eng.Subscribe(1) {
			p.Send(internal.MsgAlarm{})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func openBackend(settings config.Settings) (store.Backend, error) {
	if settings.Storage == config.StorageSQLite {
		backend, err := store.OpenSQLite(settings.DataFile)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		return backend, nil
	}
	return store.NewJSONFile(settings.DataFile), nil
}
