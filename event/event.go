// Package event defines the input events a host windowing layer delivers to
// the toolkit.
//
// Records are layered by capability: Event, ModifierEvent, MousePositionEvent,
// MouseEvent, MouseDownEvent and the concrete variants each embed the layer
// below them. Generic code holds an Any and narrows it to a layer with the
// As* functions (mutable) or through an EventView (read-only). The narrowing
// decision depends on the discriminator alone.
//
// An event has a single owner during dispatch: records are handed around by
// pointer and must not be copied. go vet reports copies. A copy still
// remembers the record it was constructed as, so narrowing a copy yields the
// original record, not the copy.
package event

import (
	"sync"
	"sync/atomic"
)

// Any is implemented by every event record of this package, including each
// embedded layer of a record.
type Any interface {
	base() *Event
}

// Point is a position in view coordinates.
type Point struct {
	X, Y float64
}

// Event is the base of all event records.
type Event struct {
	_ [0]sync.Mutex // not copyable

	typ EventType
	// outermost record this base belongs to
	self Any

	// ID is unique across all events of the process. See NextID.
	ID uint64
	// Timestamp is non-decreasing within one input source stream.
	Timestamp uint64
	// Consumed stops dispatching once handled.
	Consumed ConsumeState
}

func (e *Event) base() *Event { return e }

// Type returns the discriminator set at construction.
func (e *Event) Type() EventType { return e.typ }

func (e *Event) init(t EventType, self Any) {
	e.typ = t
	e.self = self
}

var lastID atomic.Uint64

// NextID returns a process-wide unique event id. The first id is 1; 0 is
// left for records whose producer never assigned one.
func NextID() uint64 {
	return lastID.Add(1)
}

// ModifierEvent is an event carrying the pressed modifier keys.
type ModifierEvent struct {
	Event
	Modifiers Modifiers
}

func (e *ModifierEvent) modifierLayer() *ModifierEvent { return e }

// MousePositionEvent is a ModifierEvent located at a mouse position.
type MousePositionEvent struct {
	ModifierEvent
	MousePosition Point
}

func (e *MousePositionEvent) positionLayer() *MousePositionEvent { return e }

type (
	modifierLayer  interface{ modifierLayer() *ModifierEvent }
	positionLayer  interface{ positionLayer() *MousePositionEvent }
	mouseLayer     interface{ mouseLayer() *MouseEvent }
	mouseDownLayer interface{ mouseDownLayer() *MouseDownEvent }
	keyboardLayer  interface{ keyboardLayer() *KeyboardEvent }
)
