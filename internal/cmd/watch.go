package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Alia5/plugui/internal/log"
)

// Watch re-runs inspect whenever the script file changes.
type Watch struct {
	File     string        `arg:"" name:"file" help:"Script file to watch" type:"existingfile"`
	Stream   []string      `help:"Only report the named streams" env:"PLUGUI_STREAM"`
	Dump     bool          `help:"Dump every event record after the table" env:"PLUGUI_DUMP"`
	Debounce time.Duration `help:"Wait this long after the last change before re-running" default:"100ms" env:"PLUGUI_WATCH_DEBOUNCE"`
}

// Run is called by Kong when the watch command is executed.
func (c *Watch) Run(logger *slog.Logger, events log.EventLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.Execute(ctx, logger, events, os.Stdout)
}

// Execute reports once and then after every change to the file until ctx
// is done. A broken script is logged, not fatal.
func (c *Watch) Execute(ctx context.Context, logger *slog.Logger, events log.EventLogger, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(c.File)
	// editors often replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", target, err)
	}

	ins := &Inspect{Files: []string{target}, Stream: c.Stream, Dump: c.Dump}
	run := func() {
		if err := ins.Execute(ctx, logger, events, w); err != nil {
			logger.Error("Inspect failed", "file", target, "error", err)
		}
	}
	run()
	logger.Info("Watching script", "file", target)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopped watching", "file", target)
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("Script changed", "file", target, "op", ev.Op.String())
			fire = time.After(c.Debounce)
		case <-fire:
			fire = nil
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "error", err)
		}
	}
}
