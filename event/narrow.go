package event

// The As functions narrow an event to a capability layer. They look at the
// discriminator only and return nil when the event is not of that shape.
// Records get their discriminator from their constructor, which also
// records the outermost record, so a matching discriminator always has the
// requested layer behind it.

// AsMousePositionEvent returns the position layer of mouse down/move/up,
// enter/exit, wheel and zoom gesture events.
func AsMousePositionEvent(e Any) *MousePositionEvent {
	b := baseOf(e)
	if b == nil {
		return nil
	}
	switch b.typ {
	case EventZoomGesture, EventMouseWheel,
		EventMouseDown, EventMouseMove, EventMouseUp,
		EventMouseEnter, EventMouseExit:
		return b.self.(positionLayer).positionLayer()
	}
	return nil
}

// AsMouseEvent returns the button-carrying layer of mouse down/move/up and
// enter/exit events.
func AsMouseEvent(e Any) *MouseEvent {
	b := baseOf(e)
	if b == nil {
		return nil
	}
	switch b.typ {
	case EventMouseDown, EventMouseMove, EventMouseUp,
		EventMouseEnter, EventMouseExit:
		return b.self.(mouseLayer).mouseLayer()
	}
	return nil
}

// AsMouseDownEvent returns the click-counted layer of mouse down, move and
// up events.
func AsMouseDownEvent(e Any) *MouseDownEvent {
	b := baseOf(e)
	if b == nil {
		return nil
	}
	switch b.typ {
	case EventMouseDown, EventMouseMove, EventMouseUp:
		return b.self.(mouseDownLayer).mouseDownLayer()
	}
	return nil
}

// AsModifierEvent returns the modifier layer of key, wheel and mouse
// down/move/up events.
func AsModifierEvent(e Any) *ModifierEvent {
	b := baseOf(e)
	if b == nil {
		return nil
	}
	switch b.typ {
	case EventKeyDown, EventKeyUp, EventMouseWheel,
		EventMouseDown, EventMouseMove, EventMouseUp:
		return b.self.(modifierLayer).modifierLayer()
	}
	return nil
}

// AsKeyboardEvent returns the keyboard layer of key down and key up events.
func AsKeyboardEvent(e Any) *KeyboardEvent {
	b := baseOf(e)
	if b == nil {
		return nil
	}
	switch b.typ {
	case EventKeyDown, EventKeyUp:
		return b.self.(keyboardLayer).keyboardLayer()
	}
	return nil
}

// Base returns the base layer of e, which every event has. It is nil only
// for a nil e.
func Base(e Any) *Event {
	return baseOf(e)
}

func baseOf(e Any) *Event {
	if e == nil {
		return nil
	}
	return e.base()
}
