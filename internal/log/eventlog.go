package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Alia5/plugui/event"
)

// EventLogger writes one line per produced event.
type EventLogger interface {
	Log(stream string, e event.Any)
}

// eventLogger implements EventLogger with thread-safe log.
type eventLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewEventLog creates a new EventLogger. If writer is nil, returns a no-op logger.
func NewEventLog(w io.Writer) EventLogger {
	return &eventLogger{w: w, now: time.Now}
}

// Log emits a single-line record with wall time, stream, discriminator and
// the fields of the capability layers the event narrows to.
func (l *eventLogger) Log(stream string, e event.Any) {
	if l.w == nil || e == nil {
		return
	}
	v := event.View(e)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s id=%d ts=%d type=%v",
		l.now().Format("2006/01/02 15:04:05"), stream, v.ID(), v.Timestamp(), v.Type())
	if p, ok := v.MousePosition(); ok {
		pos := p.MousePosition()
		fmt.Fprintf(&b, " pos=%g,%g", pos.X, pos.Y)
	}
	if m, ok := v.Mouse(); ok {
		fmt.Fprintf(&b, " buttons=%v", m.ButtonState())
	}
	if d, ok := v.MouseDown(); ok && v.Type() == event.EventMouseDown {
		fmt.Fprintf(&b, " clicks=%d", d.ClickCount())
	}
	if m, ok := v.Modifier(); ok {
		fmt.Fprintf(&b, " mods=%v", m.Modifiers())
	}
	if k, ok := v.Keyboard(); ok {
		fmt.Fprintf(&b, " char=%#04x virt=%v repeat=%t", k.Character(), k.Virt(), k.IsRepeat())
	}
	b.WriteByte('\n')

	l.mu.Lock()
	_, _ = io.WriteString(l.w, b.String())
	l.mu.Unlock()
}
