package event

// EventType discriminates the concrete record behind an event.
type EventType uint32

const (
	EventUnknown EventType = iota
	EventMouseDown
	EventMouseMove
	EventMouseUp
	EventMouseCancel
	EventMouseEnter
	EventMouseExit
	EventMouseWheel
	EventZoomGesture
	EventKeyUp
	EventKeyDown
)

// ModifierKey is a single modifier bit.
type ModifierKey uint32

// ModifierKey bitmasks
const (
	ModifierNone ModifierKey = 0

	ModifierShift   ModifierKey = 1 << 0 // left or right shift
	ModifierAlt     ModifierKey = 1 << 1 // alternate / option
	ModifierControl ModifierKey = 1 << 2 // Command on macOS, Control elsewhere
	ModifierSuper   ModifierKey = 1 << 3 // Control on macOS, Windows key on Windows, Super elsewhere
)

// MouseButton is a single button bit of a MouseButtonState.
type MouseButton uint32

// MouseButton positions. Bit 0 is reserved.
const (
	ButtonLeft   MouseButton = 1 << 1
	ButtonMiddle MouseButton = 1 << 2
	ButtonRight  MouseButton = 1 << 3
	ButtonFourth MouseButton = 1 << 4
	ButtonFifth  MouseButton = 1 << 5
)

// WheelFlags qualifies the deltas of a MouseWheelEvent.
type WheelFlags uint32

const (
	// WheelDirectionInvertedFromDevice: deltaX and deltaY are inverted.
	WheelDirectionInvertedFromDevice WheelFlags = 1 << 0
	// WheelPreciseDeltas: the deltas are multiplied by 0.1; divide by 0.1
	// to get exact pixel movement.
	WheelPreciseDeltas WheelFlags = 1 << 1
)

// Has reports whether all bits of f2 are set.
func (f WheelFlags) Has(f2 WheelFlags) bool { return f&f2 == f2 && f2 != 0 }

// GesturePhase is the position of a gesture event within its stream.
type GesturePhase uint32

const (
	PhaseUnknown GesturePhase = iota
	PhaseBegin
	PhaseChanged
	PhaseEnd
)

// CanFollow reports whether phase p may come right after prev in one
// gesture stream (Begin, zero or more Changed, End). PhaseUnknown is used
// for synthetic or partial streams and is accepted on either side.
func (p GesturePhase) CanFollow(prev GesturePhase) bool {
	if p == PhaseUnknown || prev == PhaseUnknown {
		return true
	}
	switch p {
	case PhaseBegin:
		return prev == PhaseEnd
	case PhaseChanged, PhaseEnd:
		return prev == PhaseBegin || prev == PhaseChanged
	}
	return false
}

// VirtualKey identifies a non-character key.
//
// The order of the members up to and including VKeyEquals must not change:
// it forms the dense range used by the legacy virtual-key byte.
type VirtualKey uint32

const (
	VKeyNone VirtualKey = iota

	VKeyBack
	VKeyTab
	VKeyClear
	VKeyReturn
	VKeyPause
	VKeyEscape
	VKeySpace
	VKeyNext
	VKeyEnd
	VKeyHome

	VKeyLeft
	VKeyUp
	VKeyRight
	VKeyDown
	VKeyPageUp
	VKeyPageDown

	VKeySelect
	VKeyPrint
	VKeyEnter
	VKeySnapshot
	VKeyInsert
	VKeyDelete
	VKeyHelp

	VKeyNumPad0
	VKeyNumPad1
	VKeyNumPad2
	VKeyNumPad3
	VKeyNumPad4
	VKeyNumPad5
	VKeyNumPad6
	VKeyNumPad7
	VKeyNumPad8
	VKeyNumPad9

	VKeyMultiply
	VKeyAdd
	VKeySeparator
	VKeySubtract
	VKeyDecimal
	VKeyDivide
	VKeyF1
	VKeyF2
	VKeyF3
	VKeyF4
	VKeyF5
	VKeyF6
	VKeyF7
	VKeyF8
	VKeyF9
	VKeyF10
	VKeyF11
	VKeyF12
	VKeyNumLock
	VKeyScroll

	VKeyShiftModifier
	VKeyControlModifier
	VKeyAltModifier

	VKeyEquals
	// do not change the order above
)
