package event

// The Cast functions are for call sites that already know the shape of an
// event. A discriminator outside the stated range is a programmer error:
// debug builds panic with the caller's location, builds tagged "release"
// skip the check and may return nil.

// CastMousePositionEvent returns the position layer of any positioned event
// except mouse cancel.
func CastMousePositionEvent(e Any) *MousePositionEvent {
	t := typeOf(e)
	assertf(t >= EventMouseDown && t <= EventZoomGesture && t != EventMouseCancel,
		"CastMousePositionEvent: unexpected %v", t)
	return layer[positionLayer](e).positionLayer()
}

// CastMouseEvent returns the button-carrying layer of mouse down/move/up and
// enter/exit events.
func CastMouseEvent(e Any) *MouseEvent {
	t := typeOf(e)
	assertf(t >= EventMouseDown && t <= EventMouseExit && t != EventMouseCancel,
		"CastMouseEvent: unexpected %v", t)
	return layer[mouseLayer](e).mouseLayer()
}

// CastMouseDownEvent returns e as a mouse down event.
func CastMouseDownEvent(e Any) *MouseDownEvent {
	assertType(e, EventMouseDown, "CastMouseDownEvent")
	return outer[*MouseDownEvent](e)
}

// CastMouseMoveEvent returns e as a mouse move event.
func CastMouseMoveEvent(e Any) *MouseMoveEvent {
	assertType(e, EventMouseMove, "CastMouseMoveEvent")
	return outer[*MouseMoveEvent](e)
}

// CastMouseUpEvent returns e as a mouse up event.
func CastMouseUpEvent(e Any) *MouseUpEvent {
	assertType(e, EventMouseUp, "CastMouseUpEvent")
	return outer[*MouseUpEvent](e)
}

// CastMouseEnterEvent returns e as a mouse enter event.
func CastMouseEnterEvent(e Any) *MouseEnterEvent {
	assertType(e, EventMouseEnter, "CastMouseEnterEvent")
	return outer[*MouseEnterEvent](e)
}

// CastMouseExitEvent returns e as a mouse exit event.
func CastMouseExitEvent(e Any) *MouseExitEvent {
	assertType(e, EventMouseExit, "CastMouseExitEvent")
	return outer[*MouseExitEvent](e)
}

// CastMouseCancelEvent returns e as a mouse cancel event.
func CastMouseCancelEvent(e Any) *MouseCancelEvent {
	assertType(e, EventMouseCancel, "CastMouseCancelEvent")
	return outer[*MouseCancelEvent](e)
}

// CastMouseWheelEvent returns e as a mouse wheel event.
func CastMouseWheelEvent(e Any) *MouseWheelEvent {
	assertType(e, EventMouseWheel, "CastMouseWheelEvent")
	return outer[*MouseWheelEvent](e)
}

// CastZoomGestureEvent returns e as a zoom gesture event.
func CastZoomGestureEvent(e Any) *ZoomGestureEvent {
	assertType(e, EventZoomGesture, "CastZoomGestureEvent")
	return outer[*ZoomGestureEvent](e)
}

// CastKeyboardEvent returns the keyboard layer of a key down or key up event.
func CastKeyboardEvent(e Any) *KeyboardEvent {
	t := typeOf(e)
	assertf(t == EventKeyDown || t == EventKeyUp, "CastKeyboardEvent: unexpected %v", t)
	return layer[keyboardLayer](e).keyboardLayer()
}

func typeOf(e Any) EventType {
	if b := baseOf(e); b != nil {
		return b.typ
	}
	return EventUnknown
}

// outer returns the outermost record of e as T, or the zero T.
func outer[T Any](e Any) T {
	var zero T
	b := baseOf(e)
	if b == nil {
		return zero
	}
	if v, ok := b.self.(T); ok {
		return v
	}
	return zero
}

// layer returns the outermost record of e as the layer interface L. When
// the record does not carry L, the result is a nil-safe stub whose layer
// method yields nil.
func layer[L any](e Any) L {
	b := baseOf(e)
	if b != nil {
		if v, ok := b.self.(L); ok {
			return v
		}
	}
	var stub noLayer
	return any(stub).(L)
}

// noLayer satisfies every layer interface with nil results.
type noLayer struct{}

func (noLayer) modifierLayer() *ModifierEvent      { return nil }
func (noLayer) positionLayer() *MousePositionEvent { return nil }
func (noLayer) mouseLayer() *MouseEvent            { return nil }
func (noLayer) mouseDownLayer() *MouseDownEvent    { return nil }
func (noLayer) keyboardLayer() *KeyboardEvent      { return nil }
