package event

import "fmt"

// KeyboardEvent is a key press or release.
type KeyboardEvent struct {
	ModifierEvent
	// Character is a UTF-16 code unit, 0 for non-character keys.
	Character uint32
	Virt      VirtualKey
	// IsRepeat marks an auto-repeated key down.
	IsRepeat bool
}

func (e *KeyboardEvent) keyboardLayer() *KeyboardEvent { return e }

// NewKeyboardEvent returns a keyboard event of type t, which must be
// EventKeyDown or EventKeyUp.
func NewKeyboardEvent(t EventType) *KeyboardEvent {
	if t != EventKeyDown && t != EventKeyUp {
		panic(fmt.Sprintf("event: %v is not a keyboard event type", t))
	}
	e := &KeyboardEvent{}
	e.init(t, e)
	return e
}

// NewKeyDownEvent and NewKeyUpEvent are shorthands for NewKeyboardEvent.
func NewKeyDownEvent() *KeyboardEvent { return NewKeyboardEvent(EventKeyDown) }
func NewKeyUpEvent() *KeyboardEvent   { return NewKeyboardEvent(EventKeyUp) }
