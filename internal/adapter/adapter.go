// Package adapter is a synthetic platform adapter. It produces event records
// from declarative scripts the way a host windowing layer would: one Source
// per input stream, fresh ids, non-decreasing timestamps, and a single
// hand-off of each event to the consumer.
package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Alia5/plugui/event"
	"github.com/Alia5/plugui/internal/log"
)

// DeliverFunc receives each produced event. Ownership passes to the callee;
// the adapter does not touch the event afterwards.
type DeliverFunc func(stream string, e event.Any) error

type Adapter struct {
	logger *slog.Logger
	events log.EventLogger
}

// New returns an Adapter. events may be nil.
func New(logger *slog.Logger, events log.EventLogger) *Adapter {
	if events == nil {
		events = log.NewEventLog(nil)
	}
	return &Adapter{logger: logger, events: events}
}

// Run replays the streams of script in order and hands every event to
// deliver. It stops at the first build, stamping or delivery error.
func (a *Adapter) Run(ctx context.Context, script *Script, deliver DeliverFunc) error {
	for _, st := range script.Streams {
		src := NewSource(st.Name)
		for i, step := range st.Steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := src.Produce(step)
			if err != nil {
				return fmt.Errorf("stream %s step %d: %w", st.Name, i, err)
			}
			if !src.checkPhase(e) {
				a.logger.Warn("gesture phase out of order",
					"stream", st.Name, "step", i, "phase", event.CastZoomGestureEvent(e).Phase)
			}

			v := event.View(e)
			a.logger.Log(ctx, log.LevelTrace, "produced event",
				"stream", st.Name, "id", v.ID(), "ts", v.Timestamp(), "type", v.Type())
			a.events.Log(st.Name, e)

			if err := deliver(st.Name, e); err != nil {
				return fmt.Errorf("deliver %v from stream %s: %w", v.Type(), st.Name, err)
			}
		}
		a.logger.Debug("stream replayed", "stream", st.Name, "events", len(st.Steps))
	}
	return nil
}
