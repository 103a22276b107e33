package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/articleparams/internal/logger"
)

// Watcher re-parses a configuration file whenever it changes on disk.
// It watches the parent directory so that editors which replace the file
// through a rename are still observed.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher
	log  *logger.Logger

	changes chan *Config // buffered, latest config wins
	errs    chan error

	closeCh   chan struct{}
	closeOnce sync.Once
	done      chan struct{}
}

// NewWatcher creates a watcher for path. Call Start to begin watching.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		fsw:     fsw,
		log:     log.WithFields(map[string]any{"component": "config_watcher", "path": abs}),
		changes: make(chan *Config, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Changes delivers successfully parsed configurations.
func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

// Errors delivers parse and validation failures of the watched file.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
	})
	return err
}

// Done is closed when the watch loop has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn(fmt.Sprintf("config watcher error: %v", err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := ParseConfig(w.path)
	if err != nil {
		w.log.Error(err, "config reload failed")
		select {
		case w.errs <- err:
		default:
		}
		return
	}

	w.log.Info("config reloaded")
	// Drop a config the consumer has not read yet; only the newest matters.
	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- cfg:
	default:
	}
}
