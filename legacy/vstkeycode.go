//go:build !nodeprecated

package legacy

import "github.com/Alia5/plugui/event"

// VstKeyCode is the VST 2 key record.
type VstKeyCode struct {
	Character int32
	Virt      uint8
	Modifier  uint8
}

// ToVstKeyCode converts a keyboard event to a VstKeyCode.
//
// Deprecated: only for hosts still speaking VstKeyCode. Build with the
// nodeprecated tag to drop it.
func ToVstKeyCode(e *event.KeyboardEvent) VstKeyCode {
	code := VstKeyCode{
		Character: int32(e.Character),
		Virt:      ToVstVirtualKey(e.Virt),
	}
	if e.Modifiers.Has(event.ModifierShift) {
		code.Modifier |= ModifierShift
	}
	if e.Modifiers.Has(event.ModifierAlt) {
		code.Modifier |= ModifierAlternate
	}
	if e.Modifiers.Has(event.ModifierControl) {
		code.Modifier |= ModifierControl
	}
	if e.Modifiers.Has(event.ModifierSuper) {
		code.Modifier |= ModifierCommand
	}
	return code
}
