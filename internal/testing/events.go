package testing

import (
	"io"
	"log/slog"
	"testing"

	"github.com/Alia5/plugui/event"
)

// AllEventTypes lists every discriminator the toolkit produces.
var AllEventTypes = []event.EventType{
	event.EventUnknown,
	event.EventMouseDown,
	event.EventMouseMove,
	event.EventMouseUp,
	event.EventMouseCancel,
	event.EventMouseEnter,
	event.EventMouseExit,
	event.EventMouseWheel,
	event.EventZoomGesture,
	event.EventKeyUp,
	event.EventKeyDown,
}

// NewEventOfType returns a freshly constructed record for discriminator typ,
// built through the public constructor of its concrete variant.
func NewEventOfType(t *testing.T, typ event.EventType) event.Any {
	t.Helper()

	pos := event.Point{X: 1, Y: 2}
	left := event.NewMouseButtonState(event.ButtonLeft)

	switch typ {
	case event.EventUnknown:
		return &event.Event{}
	case event.EventMouseDown:
		return event.NewMouseDownEvent(pos, left)
	case event.EventMouseMove:
		return event.NewMouseMoveEvent(pos, left)
	case event.EventMouseUp:
		return event.NewMouseUpEvent(pos, left)
	case event.EventMouseCancel:
		return event.NewMouseCancelEvent()
	case event.EventMouseEnter:
		return event.NewMouseEnterEvent(pos, left, event.Modifiers{})
	case event.EventMouseExit:
		return event.NewMouseExitEvent(pos, left, event.Modifiers{})
	case event.EventMouseWheel:
		return event.NewMouseWheelEvent()
	case event.EventZoomGesture:
		return event.NewZoomGestureEvent()
	case event.EventKeyUp:
		return event.NewKeyUpEvent()
	case event.EventKeyDown:
		return event.NewKeyDownEvent()
	}
	t.Fatalf("no constructor for %v", typ)
	return nil
}

// Logger returns a logger that drops everything below error and writes the
// rest to the test log.
func Logger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelError}))
}

// DiscardLogger returns a logger that writes nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
