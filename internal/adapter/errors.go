package adapter

import "errors"

var (
	ErrUnknownEventType   = errors.New("unknown event type")
	ErrUnknownModifier    = errors.New("unknown modifier")
	ErrUnknownButton      = errors.New("unknown mouse button")
	ErrUnknownVirtualKey  = errors.New("unknown virtual key")
	ErrUnknownPhase       = errors.New("unknown gesture phase")
	ErrUnknownWheelFlag   = errors.New("unknown wheel flag")
	ErrInvalidCharacter   = errors.New("char must be exactly one valid character")
	ErrUnsupportedFormat  = errors.New("unsupported script format")
	ErrTimestampRegressed = errors.New("timestamp went backwards")
)
