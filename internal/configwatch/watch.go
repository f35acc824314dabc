// Package configwatch applies configuration file edits to a running process.
// Only settings that are safe to change live are reloaded; today that is the
// log level.
package configwatch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 200 * time.Millisecond

// LevelFunc reads the log level out of the config file at path.
type LevelFunc func(path string) (slog.Level, error)

// Watch follows the config file at path until ctx is cancelled and stores
// every newly read log level in level. A file that fails to load keeps the
// current level.
//
// The parent directory is watched rather than the file itself: editors and
// config-map mounts replace files by rename, which drops a direct watch.
func Watch(ctx context.Context, path string, level *slog.LevelVar, load LevelFunc, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	logger.Info("configwatch: started", slog.String("path", target))

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("configwatch: stopped")
			return nil

		case <-fire:
			fire = nil
			reload(target, level, load, logger)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("configwatch: error", slog.String("error", watchErr.Error()))
		}
	}
}

func reload(path string, level *slog.LevelVar, load LevelFunc, logger *slog.Logger) {
	next, err := load(path)
	if err != nil {
		logger.Warn("configwatch: reload failed, keeping current settings",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return
	}
	if prev := level.Level(); prev != next {
		level.Set(next)
		logger.Info("configwatch: log level changed",
			slog.String("from", prev.String()),
			slog.String("to", next.String()))
	}
}
