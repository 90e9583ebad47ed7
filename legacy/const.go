package legacy

// ButtonState is the pre-4.11 combined mouse button and modifier word.
type ButtonState uint32

// ButtonState bits
const (
	LButton            ButtonState = 1 << 1
	MButton            ButtonState = 1 << 2
	RButton            ButtonState = 1 << 3
	Shift              ButtonState = 1 << 4
	Control            ButtonState = 1 << 5
	Alt                ButtonState = 1 << 6
	Apple              ButtonState = 1 << 7
	Button4            ButtonState = 1 << 8
	Button5            ButtonState = 1 << 9
	DoubleClick        ButtonState = 1 << 10
	MouseWheelInverted ButtonState = 1 << 11
)

// VstKeyCode modifier bitmasks
const (
	ModifierShift     = 1 << 0
	ModifierAlternate = 1 << 1 // Alt
	ModifierCommand   = 1 << 2 // Control on macOS
	ModifierControl   = 1 << 3 // Ctrl on PC, Apple on macOS
)
