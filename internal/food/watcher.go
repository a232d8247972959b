package food

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/metrics"
)

// Watcher reloads a Table whenever its backing file is written or replaced.
type Watcher struct {
	path    string
	table   *Table
	watcher *fsnotify.Watcher
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewWatcher watches the directory of path, so editors that replace the file
// by rename are picked up as well.
func NewWatcher(path string, table *Table, metrics *metrics.Metrics, logger *logger.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fs watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{path: path, table: table, watcher: w, metrics: metrics, logger: logger}, nil
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			_ = w.Reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Food watcher: watch error", "path", w.path, "error", err)
		}
	}
}

// Reload parses the file and swaps it into the table. On failure the
// current table content stays in force.
func (w *Watcher) Reload() error {
	foods, err := LoadFile(w.path)
	w.metrics.FoodReloaded(err)
	if err != nil {
		w.logger.Error("Food watcher: failed to reload food reference",
			"path", w.path,
			"error", err.Error())
		return err
	}

	w.table.Replace(foods)
	w.logger.Info("Food watcher: food reference reloaded",
		"path", w.path,
		"foods", len(foods))

	return nil
}
