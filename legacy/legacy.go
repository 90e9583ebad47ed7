// Package legacy converts events to the button-state word and key codes of
// the interfaces that predate the event records.
package legacy

import (
	"strings"

	"github.com/Alia5/plugui/event"
)

// ButtonStateFromModifiers maps Control, Shift and Alt. Super has no
// counterpart.
func ButtonStateFromModifiers(mods event.Modifiers) ButtonState {
	var state ButtonState
	if mods.Has(event.ModifierControl) {
		state |= Control
	}
	if mods.Has(event.ModifierShift) {
		state |= Shift
	}
	if mods.Has(event.ModifierAlt) {
		state |= Alt
	}
	return state
}

// ButtonStateFromMouseEvent combines modifiers, pressed buttons and the
// double click bit of a mouse event. Events without a mouse layer only
// contribute their modifiers, if they carry any.
func ButtonStateFromMouseEvent(e event.Any) ButtonState {
	mouse := event.AsMouseEvent(e)
	if mouse == nil {
		if m := event.AsModifierEvent(e); m != nil {
			return ButtonStateFromModifiers(m.Modifiers)
		}
		return 0
	}

	state := ButtonStateFromModifiers(mouse.Modifiers)
	if mouse.ButtonState.Has(event.ButtonLeft) {
		state |= LButton
	}
	if mouse.ButtonState.Has(event.ButtonRight) {
		state |= RButton
	}
	if mouse.ButtonState.Has(event.ButtonMiddle) {
		state |= MButton
	}
	if mouse.ButtonState.Has(event.ButtonFourth) {
		state |= Button4
	}
	if mouse.ButtonState.Has(event.ButtonFifth) {
		state |= Button5
	}
	if down := event.AsMouseDownEvent(e); down != nil && down.ClickCount > 1 {
		state |= DoubleClick
	}
	return state
}

// ToVstVirtualKey returns the VST virtual key byte of key, or 0 if key
// cannot be mapped.
func ToVstVirtualKey(key event.VirtualKey) uint8 {
	if key <= event.VKeyEquals {
		return uint8(key)
	}
	return 0
}

var buttonStateNames = []struct {
	bit  ButtonState
	name string
}{
	{LButton, "LButton"},
	{MButton, "MButton"},
	{RButton, "RButton"},
	{Shift, "Shift"},
	{Control, "Control"},
	{Alt, "Alt"},
	{Apple, "Apple"},
	{Button4, "Button4"},
	{Button5, "Button5"},
	{DoubleClick, "DoubleClick"},
	{MouseWheelInverted, "MouseWheelInverted"},
}

func (s ButtonState) String() string {
	if s == 0 {
		return "0"
	}
	u := []string{}
	for _, b := range buttonStateNames {
		if s&b.bit != 0 {
			u = append(u, b.name)
		}
	}
	return strings.Join(u, "|")
}
