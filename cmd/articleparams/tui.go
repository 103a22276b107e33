package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/articleparams/internal/config"
	"github.com/alexisbeaulieu97/articleparams/internal/logger"
	"github.com/alexisbeaulieu97/articleparams/internal/tui"
)

func runTUI(opts tuiOptions) error {
	log, err := newSessionLogger(opts)
	if err != nil {
		return err
	}
	defer log.Close() //nolint:errcheck

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	modelOpts := tui.Options{
		Config:       cfg,
		SubmitPolicy: opts.SubmitPolicy,
		Logger:       log,
	}

	if opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, log)
		if err != nil {
			return err
		}
		watcher.Start()
		defer watcher.Close() //nolint:errcheck

		modelOpts.Reloads = watcher.Changes()
		modelOpts.ReloadErrors = watcher.Errors()
	}

	m, err := tui.NewModel(modelOpts)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{"config": opts.ConfigPath}).Info("session started")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "parameters UI failed")
		return fmt.Errorf("failed to run parameters UI: %w", err)
	}

	log.WithFields(map[string]any{"revision": m.Page().Revision()}).Info("session closed")
	return nil
}

// newSessionLogger writes to a rotated file because the terminal belongs
// to the UI.
func newSessionLogger(opts tuiOptions) (*logger.Logger, error) {
	path := opts.LogFile
	if path == "" {
		def, err := defaultLogPath()
		if err != nil {
			return nil, fmt.Errorf("determine log path: %w", err)
		}
		path = def
	}

	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}

	return logger.New(logger.Options{Level: level, HumanReadable: true, File: path})
}
