package engineconfig

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config at path whenever it is written or replaced, reapplies the DEMO_*
// environment overrides and passes the result to onChange. Invalid files are logged and skipped. It blocks until ctx is done.
//
// The parent directory is watched rather than the file so editors that save by rename are seen.
// onChange runs on the watcher goroutine.
func Watch(ctx context.Context, path string, logger *log.Logger, onChange func(Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != target || !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				logger.Warn("config reload skipped", "path", path, "err", err)
				continue
			}
			if err := ApplyEnv(&cfg); err != nil {
				logger.Warn("config reload skipped", "path", path, "err", err)
				continue
			}
			logger.Info("config reloaded", "path", path)
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("config watcher", "err", err)
		}
	}
}
