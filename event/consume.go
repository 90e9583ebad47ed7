package event

// ConsumeState records whether dispatch of an event must stop.
//
// Bit allocation:
//
//	bit 0                 Handled, propagation stop
//	bit ConsumeStateLast  MouseDownEvent: ignore follow-up move and up events
//
// Bits from ConsumeStateLast upwards belong to specific event variants.
type ConsumeState uint32

const (
	NotHandled ConsumeState = 0
	Handled    ConsumeState = 1 << 0
)

// ConsumeStateLast is the first bit index free for variant-specific flags.
const ConsumeStateLast = 1

// Set writes the Handled bit only; variant bits are kept.
func (c *ConsumeState) Set(state bool) {
	if state {
		*c |= Handled
	} else {
		*c &^= Handled
	}
}

// IsHandled reads the Handled bit only.
func (c ConsumeState) IsHandled() bool { return c&Handled != 0 }

// Reset clears all bits, including variant bits.
func (c *ConsumeState) Reset() { *c = NotHandled }

// Bit reports whether the bit at index is set.
func (c ConsumeState) Bit(index uint) bool { return c&(1<<index) != 0 }

// SetBit sets or clears the bit at index.
func (c *ConsumeState) SetBit(index uint, state bool) {
	if state {
		*c |= 1 << index
	} else {
		*c &^= 1 << index
	}
}
