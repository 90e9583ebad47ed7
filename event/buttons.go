package event

import (
	"fmt"
	"strings"
)

// MouseButtonState is the set of mouse buttons held during a mouse event.
//
// The Is queries are exclusive ("this button and no other"), Has is
// inclusive. Values compare with ==.
type MouseButtonState struct {
	data uint32
}

// NewMouseButtonState returns a state with only pos pressed.
func NewMouseButtonState(pos MouseButton) MouseButtonState {
	return MouseButtonState{data: uint32(pos)}
}

// The Is methods report whether exactly that one button is pressed.
func (s MouseButtonState) IsLeft() bool            { return s.data == uint32(ButtonLeft) }
func (s MouseButtonState) IsMiddle() bool          { return s.data == uint32(ButtonMiddle) }
func (s MouseButtonState) IsRight() bool           { return s.data == uint32(ButtonRight) }
func (s MouseButtonState) Is(pos MouseButton) bool { return s.data == uint32(pos) }

// IsOther reports whether exactly the button at bit index is pressed.
func (s MouseButtonState) IsOther(index uint32) bool {
	if index >= 32 {
		return false
	}
	return s.data == 1<<index
}

// Has reports whether pos is pressed, regardless of other buttons.
func (s MouseButtonState) Has(pos MouseButton) bool { return s.data&uint32(pos) != 0 }
func (s MouseButtonState) Empty() bool              { return s.data == 0 }

func (s *MouseButtonState) Add(pos MouseButton) { s.data |= uint32(pos) }
func (s *MouseButtonState) Set(pos MouseButton) { s.data = uint32(pos) }
func (s *MouseButtonState) Clear()              { s.data = 0 }

func (s MouseButtonState) String() string {
	if s.Empty() {
		return "None"
	}
	u := []string{}
	rest := s.data
	for _, b := range mouseButtonNames {
		if s.Has(b.button) {
			u = append(u, b.name)
			rest &^= uint32(b.button)
		}
	}
	if rest != 0 {
		u = append(u, fmt.Sprintf("%#x", rest))
	}
	return strings.Join(u, "|")
}
