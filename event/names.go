package event

import (
	"fmt"
	"strings"
)

var eventTypeNames = [...]string{
	EventUnknown:     "Unknown",
	EventMouseDown:   "MouseDown",
	EventMouseMove:   "MouseMove",
	EventMouseUp:     "MouseUp",
	EventMouseCancel: "MouseCancel",
	EventMouseEnter:  "MouseEnter",
	EventMouseExit:   "MouseExit",
	EventMouseWheel:  "MouseWheel",
	EventZoomGesture: "ZoomGesture",
	EventKeyUp:       "KeyUp",
	EventKeyDown:     "KeyDown",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint32(t))
}

// ParseEventType maps a name as returned by String back to its EventType.
// Matching is case-insensitive.
func ParseEventType(s string) (EventType, bool) {
	for i, n := range eventTypeNames {
		if strings.EqualFold(n, s) {
			return EventType(i), true
		}
	}
	return EventUnknown, false
}

var virtualKeyNames = [...]string{
	VKeyNone:            "None",
	VKeyBack:            "Back",
	VKeyTab:             "Tab",
	VKeyClear:           "Clear",
	VKeyReturn:          "Return",
	VKeyPause:           "Pause",
	VKeyEscape:          "Escape",
	VKeySpace:           "Space",
	VKeyNext:            "Next",
	VKeyEnd:             "End",
	VKeyHome:            "Home",
	VKeyLeft:            "Left",
	VKeyUp:              "Up",
	VKeyRight:           "Right",
	VKeyDown:            "Down",
	VKeyPageUp:          "PageUp",
	VKeyPageDown:        "PageDown",
	VKeySelect:          "Select",
	VKeyPrint:           "Print",
	VKeyEnter:           "Enter",
	VKeySnapshot:        "Snapshot",
	VKeyInsert:          "Insert",
	VKeyDelete:          "Delete",
	VKeyHelp:            "Help",
	VKeyNumPad0:         "NumPad0",
	VKeyNumPad1:         "NumPad1",
	VKeyNumPad2:         "NumPad2",
	VKeyNumPad3:         "NumPad3",
	VKeyNumPad4:         "NumPad4",
	VKeyNumPad5:         "NumPad5",
	VKeyNumPad6:         "NumPad6",
	VKeyNumPad7:         "NumPad7",
	VKeyNumPad8:         "NumPad8",
	VKeyNumPad9:         "NumPad9",
	VKeyMultiply:        "Multiply",
	VKeyAdd:             "Add",
	VKeySeparator:       "Separator",
	VKeySubtract:        "Subtract",
	VKeyDecimal:         "Decimal",
	VKeyDivide:          "Divide",
	VKeyF1:              "F1",
	VKeyF2:              "F2",
	VKeyF3:              "F3",
	VKeyF4:              "F4",
	VKeyF5:              "F5",
	VKeyF6:              "F6",
	VKeyF7:              "F7",
	VKeyF8:              "F8",
	VKeyF9:              "F9",
	VKeyF10:             "F10",
	VKeyF11:             "F11",
	VKeyF12:             "F12",
	VKeyNumLock:         "NumLock",
	VKeyScroll:          "Scroll",
	VKeyShiftModifier:   "ShiftModifier",
	VKeyControlModifier: "ControlModifier",
	VKeyAltModifier:     "AltModifier",
	VKeyEquals:          "Equals",
}

func (k VirtualKey) String() string {
	if int(k) < len(virtualKeyNames) {
		return virtualKeyNames[k]
	}
	return fmt.Sprintf("VirtualKey(%d)", uint32(k))
}

// ParseVirtualKey maps a key name (case-insensitive) to its VirtualKey.
func ParseVirtualKey(s string) (VirtualKey, bool) {
	for i, n := range virtualKeyNames {
		if strings.EqualFold(n, s) {
			return VirtualKey(i), true
		}
	}
	return VKeyNone, false
}

var modifierKeyNames = []struct {
	key  ModifierKey
	name string
}{
	{ModifierShift, "Shift"},
	{ModifierAlt, "Alt"},
	{ModifierControl, "Control"},
	{ModifierSuper, "Super"},
}

func (k ModifierKey) String() string {
	if k == ModifierNone {
		return "None"
	}
	for _, m := range modifierKeyNames {
		if m.key == k {
			return m.name
		}
	}
	return fmt.Sprintf("ModifierKey(%#x)", uint32(k))
}

// ParseModifierKey maps a modifier name to its key. "ctrl", "cmd", "option"
// and "meta" are accepted as aliases.
func ParseModifierKey(s string) (ModifierKey, bool) {
	switch strings.ToLower(s) {
	case "ctrl", "cmd", "command":
		return ModifierControl, true
	case "option", "opt":
		return ModifierAlt, true
	case "meta", "win", "windows":
		return ModifierSuper, true
	case "none":
		return ModifierNone, true
	}
	for _, m := range modifierKeyNames {
		if strings.EqualFold(m.name, s) {
			return m.key, true
		}
	}
	return ModifierNone, false
}

var mouseButtonNames = []struct {
	button MouseButton
	name   string
}{
	{ButtonLeft, "Left"},
	{ButtonMiddle, "Middle"},
	{ButtonRight, "Right"},
	{ButtonFourth, "Fourth"},
	{ButtonFifth, "Fifth"},
}

func (b MouseButton) String() string {
	for _, m := range mouseButtonNames {
		if m.button == b {
			return m.name
		}
	}
	return fmt.Sprintf("MouseButton(%#x)", uint32(b))
}

// ParseMouseButton maps a button name (case-insensitive) to its position.
func ParseMouseButton(s string) (MouseButton, bool) {
	for _, m := range mouseButtonNames {
		if strings.EqualFold(m.name, s) {
			return m.button, true
		}
	}
	return 0, false
}

var phaseNames = [...]string{
	PhaseUnknown: "Unknown",
	PhaseBegin:   "Begin",
	PhaseChanged: "Changed",
	PhaseEnd:     "End",
}

func (p GesturePhase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("GesturePhase(%d)", uint32(p))
}

// ParseGesturePhase maps a phase name (case-insensitive) to its value.
func ParseGesturePhase(s string) (GesturePhase, bool) {
	for i, n := range phaseNames {
		if strings.EqualFold(n, s) {
			return GesturePhase(i), true
		}
	}
	return PhaseUnknown, false
}

func (f WheelFlags) String() string {
	var u []string
	if f&WheelDirectionInvertedFromDevice != 0 {
		u = append(u, "DirectionInvertedFromDevice")
	}
	if f&WheelPreciseDeltas != 0 {
		u = append(u, "PreciseDeltas")
	}
	if rest := f &^ (WheelDirectionInvertedFromDevice | WheelPreciseDeltas); rest != 0 {
		u = append(u, fmt.Sprintf("%#x", uint32(rest)))
	}
	if len(u) == 0 {
		return "0"
	}
	return strings.Join(u, "|")
}
