package adapter

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/Alia5/plugui/event"
)

// Build constructs the event record a Step describes. ID and Timestamp are
// left for the Source to assign.
func Build(step Step) (event.Any, error) {
	typ, ok := event.ParseEventType(step.Type)
	if !ok || typ == event.EventUnknown {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, step.Type)
	}
	mods, err := parseModifiers(step.Modifiers)
	if err != nil {
		return nil, err
	}

	pos := event.Point{X: step.X, Y: step.Y}
	var buttons event.MouseButtonState
	switch typ {
	case event.EventMouseDown, event.EventMouseMove, event.EventMouseUp,
		event.EventMouseEnter, event.EventMouseExit:
		if buttons, err = parseButtons(step.Buttons); err != nil {
			return nil, err
		}
	}

	switch typ {
	case event.EventMouseDown:
		e := event.NewMouseDownEvent(pos, buttons)
		e.ClickCount = step.ClickCount
		e.Modifiers = mods
		return e, nil
	case event.EventMouseMove:
		e := event.NewMouseMoveEvent(pos, buttons)
		e.Modifiers = mods
		return e, nil
	case event.EventMouseUp:
		e := event.NewMouseUpEvent(pos, buttons)
		e.Modifiers = mods
		return e, nil
	case event.EventMouseEnter:
		return event.NewMouseEnterEvent(pos, buttons, mods), nil
	case event.EventMouseExit:
		return event.NewMouseExitEvent(pos, buttons, mods), nil
	case event.EventMouseCancel:
		return event.NewMouseCancelEvent(), nil
	case event.EventMouseWheel:
		flags, err := parseWheelFlags(step.WheelFlags)
		if err != nil {
			return nil, err
		}
		e := event.NewMouseWheelEvent()
		e.MousePosition = pos
		e.Modifiers = mods
		e.DeltaX, e.DeltaY = step.DeltaX, step.DeltaY
		e.Flags = flags
		return e, nil
	case event.EventZoomGesture:
		phase := event.PhaseUnknown
		if step.Phase != "" {
			if phase, ok = event.ParseGesturePhase(step.Phase); !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownPhase, step.Phase)
			}
		}
		e := event.NewZoomGestureEvent()
		e.MousePosition = pos
		e.Modifiers = mods
		e.Phase = phase
		e.Zoom = step.Zoom
		return e, nil
	case event.EventKeyDown, event.EventKeyUp:
		virt := event.VKeyNone
		if step.Virt != "" {
			if virt, ok = event.ParseVirtualKey(step.Virt); !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownVirtualKey, step.Virt)
			}
		}
		char, err := characterOf(step)
		if err != nil {
			return nil, err
		}
		e := event.NewKeyboardEvent(typ)
		e.Modifiers = mods
		e.Character = char
		e.Virt = virt
		e.IsRepeat = step.Repeat
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, step.Type)
}

// characterOf returns the first UTF-16 code unit of Char, or Code when Char
// is empty. Char must hold a single valid rune.
func characterOf(step Step) (uint32, error) {
	if step.Char == "" {
		return step.Code, nil
	}
	r, size := utf8.DecodeRuneInString(step.Char)
	if r == utf8.RuneError || size != len(step.Char) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, step.Char)
	}
	units := utf16.Encode([]rune{r})
	return uint32(units[0]), nil
}

func parseModifiers(names []string) (event.Modifiers, error) {
	var mods event.Modifiers
	for _, n := range names {
		k, ok := event.ParseModifierKey(strings.TrimSpace(n))
		if !ok {
			return event.Modifiers{}, fmt.Errorf("%w: %q", ErrUnknownModifier, n)
		}
		mods.Add(k)
	}
	return mods, nil
}

func parseButtons(names []string) (event.MouseButtonState, error) {
	var s event.MouseButtonState
	for _, n := range names {
		b, ok := event.ParseMouseButton(strings.TrimSpace(n))
		if !ok {
			return event.MouseButtonState{}, fmt.Errorf("%w: %q", ErrUnknownButton, n)
		}
		s.Add(b)
	}
	return s, nil
}

func parseWheelFlags(names []string) (event.WheelFlags, error) {
	var f event.WheelFlags
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "inverted", "directioninvertedfromdevice":
			f |= event.WheelDirectionInvertedFromDevice
		case "precise", "precisedeltas":
			f |= event.WheelPreciseDeltas
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownWheelFlag, n)
		}
	}
	return f, nil
}
