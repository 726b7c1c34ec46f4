package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/macropower/termbrot/api/v1beta1/configs"
)

// Watcher reloads a configuration file whenever it changes.
//
// The file's directory is watched rather than the file itself, so that
// editors which replace the file on save are handled.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(*configs.Config)
	path     string
}

// NewWatcher creates a [Watcher] for path. Each successful reload is passed
// to onChange; files that fail to load are logged and skipped.
func NewWatcher(path string, onChange func(*configs.Config)) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	err = fw.Add(filepath.Dir(absPath))
	if err != nil {
		_ = fw.Close()

		return nil, fmt.Errorf("add path to watcher: %w", err)
	}

	return &Watcher{
		watcher:  fw,
		onChange: onChange,
		path:     absPath,
	}, nil
}

// Run handles file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	logger := slog.With(slog.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(evt.Name) != w.path {
				continue
			}

			// Ignore events that are not related to content changes.
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(w.path)
			if err != nil {
				logger.Warn("ignoring invalid config", slog.Any("err", err))

				continue
			}

			logger.Info("config changed", slog.String("op", evt.Op.String()))
			w.onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			logger.Error("watch config", slog.Any("err", err))
		}
	}
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	if err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}

	return nil
}
