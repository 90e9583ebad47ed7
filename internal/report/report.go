// Package report renders what the narrowing functions and the legacy shims
// make of a sequence of events.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/term"

	"github.com/Alia5/plugui/event"
	"github.com/Alia5/plugui/legacy"
)

// Row is the inspection result for one event.
type Row struct {
	Stream    string
	ID        uint64
	Timestamp uint64
	Type      event.EventType

	MousePosition bool
	Mouse         bool
	MouseDown     bool
	Modifier      bool
	Keyboard      bool

	Buttons legacy.ButtonState
	// VstKey is the legacy virtual key, only meaningful when Keyboard is set.
	VstKey uint8

	record event.Any
}

// Build inspects e. The row keeps e so Write can dump it.
func Build(stream string, e event.Any) Row {
	v := event.View(e)
	r := Row{
		Stream:    stream,
		ID:        v.ID(),
		Timestamp: v.Timestamp(),
		Type:      v.Type(),

		MousePosition: event.AsMousePositionEvent(e) != nil,
		Mouse:         event.AsMouseEvent(e) != nil,
		MouseDown:     event.AsMouseDownEvent(e) != nil,
		Modifier:      event.AsModifierEvent(e) != nil,

		Buttons: legacy.ButtonStateFromMouseEvent(e),
		record:  e,
	}
	if k := event.AsKeyboardEvent(e); k != nil {
		r.Keyboard = true
		r.VstKey = legacy.ToVstVirtualKey(k.Virt)
	}
	return r
}

type Options struct {
	// Dump appends a go-spew dump of every record below the table.
	Dump bool
	// Header forces the header row on or off. Nil picks it by whether w is
	// a terminal.
	Header *bool
}

const columns = "STREAM\tID\tTS\tTYPE\tPOS\tMOUSE\tDOWN\tMOD\tKEY\tBUTTONSTATE\tVSTKEY"

// Write renders rows as an aligned table.
func Write(w io.Writer, rows []Row, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if showHeader(w, opts) {
		fmt.Fprintln(tw, columns)
	}
	for _, r := range rows {
		vst := "-"
		if r.Keyboard {
			vst = fmt.Sprint(r.VstKey)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%v\t%s\t%s\t%s\t%s\t%s\t%v\t%s\n",
			r.Stream, r.ID, r.Timestamp, r.Type,
			mark(r.MousePosition), mark(r.Mouse), mark(r.MouseDown), mark(r.Modifier), mark(r.Keyboard),
			r.Buttons, vst)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !opts.Dump {
		return nil
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "\n# %s #%d\n", r.Stream, r.ID); err != nil {
			return err
		}
		cfg.Fdump(w, r.record)
	}
	return nil
}

func showHeader(w io.Writer, opts Options) bool {
	if opts.Header != nil {
		return *opts.Header
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func mark(b bool) string {
	if b {
		return "x"
	}
	return "."
}

// Summary counts rows per event type, e.g. "MouseDown=2 KeyUp=1".
func Summary(rows []Row) string {
	counts := make(map[event.EventType]int)
	for _, r := range rows {
		counts[r.Type]++
	}
	var parts []string
	for t := event.EventUnknown; t <= event.EventKeyDown; t++ {
		if n := counts[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%v=%d", t, n))
		}
	}
	return strings.Join(parts, " ")
}
