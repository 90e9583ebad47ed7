package event

// GestureEvent is a position event that is part of a gesture stream.
type GestureEvent struct {
	MousePositionEvent
	Phase GesturePhase
}

// ZoomGestureEvent is a pinch/zoom gesture step.
type ZoomGestureEvent struct {
	GestureEvent
	Zoom float64
}

// NewZoomGestureEvent returns a zoom step of unknown phase.
func NewZoomGestureEvent() *ZoomGestureEvent {
	e := &ZoomGestureEvent{}
	e.init(EventZoomGesture, e)
	return e
}
