package event

// MouseEvent is a position event that carries the pressed mouse buttons.
type MouseEvent struct {
	MousePositionEvent
	ButtonState MouseButtonState
}

func (e *MouseEvent) mouseLayer() *MouseEvent { return e }

const ignoreFollowUpEventsBit = ConsumeStateLast

// MouseDownEvent is a mouse event with a click count. It is also the layer
// shared by MouseMoveEvent and MouseUpEvent; their ClickCount is not
// meaningful and only MouseDown producers fill it.
type MouseDownEvent struct {
	MouseEvent
	ClickCount uint32
}

func (e *MouseDownEvent) mouseDownLayer() *MouseDownEvent { return e }

// NewMouseDownEvent returns a mouse down at pos with buttons pressed.
func NewMouseDownEvent(pos Point, buttons MouseButtonState) *MouseDownEvent {
	e := &MouseDownEvent{}
	e.init(EventMouseDown, e)
	e.MousePosition = pos
	e.ButtonState = buttons
	return e
}

// SetIgnoreFollowUpMoveAndUpEvents asks the dispatcher not to deliver the
// move and up events that follow this down event. It shares the Consumed
// word without touching the Handled bit.
func (e *MouseDownEvent) SetIgnoreFollowUpMoveAndUpEvents(state bool) {
	e.Consumed.SetBit(ignoreFollowUpEventsBit, state)
}

// IgnoreFollowUpMoveAndUpEvents reports whether a handler asked to skip
// the rest of this click.
func (e *MouseDownEvent) IgnoreFollowUpMoveAndUpEvents() bool {
	return e.Consumed.Bit(ignoreFollowUpEventsBit)
}

type MouseMoveEvent struct {
	MouseDownEvent
}

// NewMouseMoveEvent returns a mouse move to pos. buttons may be the zero
// state.
func NewMouseMoveEvent(pos Point, buttons MouseButtonState) *MouseMoveEvent {
	e := &MouseMoveEvent{}
	e.init(EventMouseMove, e)
	e.MousePosition = pos
	e.ButtonState = buttons
	return e
}

type MouseUpEvent struct {
	MouseDownEvent
}

// NewMouseUpEvent returns a mouse up at pos; buttons holds the released
// buttons.
func NewMouseUpEvent(pos Point, buttons MouseButtonState) *MouseUpEvent {
	e := &MouseUpEvent{}
	e.init(EventMouseUp, e)
	e.MousePosition = pos
	e.ButtonState = buttons
	return e
}

type MouseEnterEvent struct {
	MouseEvent
}

// NewMouseEnterEvent returns an event for the mouse entering a view at pos.
func NewMouseEnterEvent(pos Point, buttons MouseButtonState, mods Modifiers) *MouseEnterEvent {
	e := &MouseEnterEvent{}
	e.init(EventMouseEnter, e)
	e.MousePosition = pos
	e.ButtonState = buttons
	e.Modifiers = mods
	return e
}

// NewMouseEnterEventFrom builds an enter event at the position, buttons and
// modifiers of src. Nothing else is taken over from src.
func NewMouseEnterEventFrom(src *MouseEvent) *MouseEnterEvent {
	return NewMouseEnterEvent(src.MousePosition, src.ButtonState, src.Modifiers)
}

type MouseExitEvent struct {
	MouseEvent
}

// NewMouseExitEvent returns an event for the mouse leaving a view at pos.
func NewMouseExitEvent(pos Point, buttons MouseButtonState, mods Modifiers) *MouseExitEvent {
	e := &MouseExitEvent{}
	e.init(EventMouseExit, e)
	e.MousePosition = pos
	e.ButtonState = buttons
	e.Modifiers = mods
	return e
}

// NewMouseExitEventFrom builds an exit event at the position, buttons and
// modifiers of src. Nothing else is taken over from src.
func NewMouseExitEventFrom(src *MouseEvent) *MouseExitEvent {
	return NewMouseExitEvent(src.MousePosition, src.ButtonState, src.Modifiers)
}

// MouseCancelEvent aborts the current mouse interaction. It carries neither
// a position nor modifiers.
type MouseCancelEvent struct {
	Event
}

// NewMouseCancelEvent returns an event that aborts the current mouse
// interaction.
func NewMouseCancelEvent() *MouseCancelEvent {
	e := &MouseCancelEvent{}
	e.init(EventMouseCancel, e)
	return e
}

// MouseWheelEvent is a scroll at a mouse position.
type MouseWheelEvent struct {
	MousePositionEvent
	DeltaX, DeltaY float64
	Flags          WheelFlags
}

// NewMouseWheelEvent returns a wheel event with zero deltas at the origin.
func NewMouseWheelEvent() *MouseWheelEvent {
	e := &MouseWheelEvent{}
	e.init(EventMouseWheel, e)
	return e
}
