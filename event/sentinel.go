package event

import "sync"

var noEvent = sync.OnceValue(func() *Event { return &Event{} })

// NoEvent returns the shared empty event for slots that need one. It is of
// type EventUnknown, never consumed, and the same view on every call.
func NoEvent() EventView {
	return EventView{e: noEvent()}
}
