package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/Alia5/plugui/event"
	"github.com/Alia5/plugui/internal/adapter"
	"github.com/Alia5/plugui/internal/log"
	"github.com/Alia5/plugui/internal/report"
)

// Inspect replays scripts through the synthetic adapter and reports how
// every produced event narrows.
type Inspect struct {
	Files  []string `arg:"" name:"file" help:"Script files (.json, .yaml, .toml)" type:"existingfile"`
	Stream []string `help:"Only report the named streams" env:"PLUGUI_STREAM"`
	Dump   bool     `help:"Dump every event record after the table" env:"PLUGUI_DUMP"`
}

// Run is called by Kong when the inspect command is executed.
func (c *Inspect) Run(logger *slog.Logger, events log.EventLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.Execute(ctx, logger, events, os.Stdout)
}

// Execute loads the scripts, replays them and writes the report to w.
func (c *Inspect) Execute(ctx context.Context, logger *slog.Logger, events log.EventLogger, w io.Writer) error {
	scripts, err := adapter.LoadAll(ctx, c.Files...)
	if err != nil {
		return err
	}

	var rows []report.Row
	err = adapter.New(logger, events).Run(ctx, adapter.Merge(scripts...), func(stream string, e event.Any) error {
		if len(c.Stream) == 0 || slices.Contains(c.Stream, stream) {
			rows = append(rows, report.Build(stream, e))
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := report.Write(w, rows, report.Options{Dump: c.Dump}); err != nil {
		return err
	}
	logger.Info("Inspected scripts", "files", len(c.Files), "events", len(rows), "types", report.Summary(rows))
	return nil
}
