package event

// EventView is a read-only handle on an event. Narrowing a view yields
// views, never mutable records. The zero EventView behaves like an
// unknown, unconsumed event.
type EventView struct {
	e Any
}

// View returns a read-only handle on e.
func View(e Any) EventView {
	return EventView{e: e}
}

var zeroEvent Event

func (v EventView) header() *Event {
	if b := baseOf(v.e); b != nil {
		return b
	}
	return &zeroEvent
}

// IsZero reports whether v refers to no event at all.
func (v EventView) IsZero() bool { return v.e == nil }

func (v EventView) Type() EventType        { return v.header().typ }
func (v EventView) ID() uint64             { return v.header().ID }
func (v EventView) Timestamp() uint64      { return v.header().Timestamp }
func (v EventView) IsConsumed() bool       { return v.header().Consumed.IsHandled() }
func (v EventView) Consumed() ConsumeState { return v.header().Consumed }

// MousePosition narrows v like AsMousePositionEvent.
func (v EventView) MousePosition() (MousePositionView, bool) {
	if p := AsMousePositionEvent(v.e); p != nil {
		return MousePositionView{ModifierView{v, &p.ModifierEvent}, p}, true
	}
	return MousePositionView{}, false
}

// Mouse narrows v like AsMouseEvent.
func (v EventView) Mouse() (MouseView, bool) {
	if m := AsMouseEvent(v.e); m != nil {
		return newMouseView(v, m), true
	}
	return MouseView{}, false
}

// MouseDown narrows v like AsMouseDownEvent.
func (v EventView) MouseDown() (MouseDownView, bool) {
	if d := AsMouseDownEvent(v.e); d != nil {
		return MouseDownView{newMouseView(v, &d.MouseEvent), d}, true
	}
	return MouseDownView{}, false
}

// Modifier narrows v like AsModifierEvent.
func (v EventView) Modifier() (ModifierView, bool) {
	if m := AsModifierEvent(v.e); m != nil {
		return ModifierView{v, m}, true
	}
	return ModifierView{}, false
}

// Keyboard narrows v like AsKeyboardEvent.
func (v EventView) Keyboard() (KeyboardView, bool) {
	if k := AsKeyboardEvent(v.e); k != nil {
		return KeyboardView{ModifierView{v, &k.ModifierEvent}, k}, true
	}
	return KeyboardView{}, false
}

// ModifierView is a read-only ModifierEvent.
type ModifierView struct {
	EventView
	m *ModifierEvent
}

func (v ModifierView) Modifiers() Modifiers { return v.m.Modifiers }

// MousePositionView is a read-only MousePositionEvent.
type MousePositionView struct {
	ModifierView
	p *MousePositionEvent
}

func (v MousePositionView) MousePosition() Point { return v.p.MousePosition }

// MouseView is a read-only MouseEvent.
type MouseView struct {
	MousePositionView
	m *MouseEvent
}

func newMouseView(v EventView, m *MouseEvent) MouseView {
	return MouseView{
		MousePositionView: MousePositionView{ModifierView{v, &m.ModifierEvent}, &m.MousePositionEvent},
		m:                 m,
	}
}

func (v MouseView) ButtonState() MouseButtonState { return v.m.ButtonState }

// MouseDownView is a read-only MouseDownEvent.
type MouseDownView struct {
	MouseView
	d *MouseDownEvent
}

func (v MouseDownView) ClickCount() uint32 { return v.d.ClickCount }
func (v MouseDownView) IgnoreFollowUpMoveAndUpEvents() bool {
	return v.d.IgnoreFollowUpMoveAndUpEvents()
}

// KeyboardView is a read-only KeyboardEvent.
type KeyboardView struct {
	ModifierView
	k *KeyboardEvent
}

func (v KeyboardView) Character() uint32 { return v.k.Character }
func (v KeyboardView) Virt() VirtualKey  { return v.k.Virt }
func (v KeyboardView) IsRepeat() bool    { return v.k.IsRepeat }
