package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/plugui/event"
)

var allModifierKeys = []event.ModifierKey{
	event.ModifierShift, event.ModifierAlt, event.ModifierControl, event.ModifierSuper,
}

// allModifierSets enumerates every combination of the four modifier keys.
func allModifierSets() []event.Modifiers {
	var sets []event.Modifiers
	for mask := 0; mask < 1<<len(allModifierKeys); mask++ {
		var m event.Modifiers
		for i, k := range allModifierKeys {
			if mask&(1<<i) != 0 {
				m.Add(k)
			}
		}
		sets = append(sets, m)
	}
	return sets
}

func TestModifiersAddRemove(t *testing.T) {
	for _, m := range allModifierSets() {
		for _, k := range allModifierKeys {
			added := m
			added.Add(k)
			assert.True(t, added.Has(k), "%v add %v", m, k)

			twice := added
			twice.Add(k)
			assert.Equal(t, added, twice, "add is idempotent")

			removed := added
			removed.Remove(k)
			assert.False(t, removed.Has(k), "%v remove %v", m, k)

			again := removed
			again.Remove(k)
			assert.Equal(t, removed, again, "remove of unset key is a no-op")
		}
	}
}

func TestModifiersIsIsExclusive(t *testing.T) {
	for _, m := range allModifierSets() {
		for _, k := range allModifierKeys {
			others := m
			others.Remove(k)
			want := m.Has(k) && others.Empty()
			assert.Equal(t, want, m.Is(k), "%v is %v", m, k)
		}
	}
}

func TestModifiersIsSet(t *testing.T) {
	m := event.NewModifiers(event.ModifierShift, event.ModifierControl)

	assert.True(t, m.Is(event.ModifierShift, event.ModifierControl))
	assert.True(t, m.Is(event.ModifierControl, event.ModifierShift))
	assert.False(t, m.Is(event.ModifierShift))
	assert.False(t, m.Is(event.ModifierShift, event.ModifierControl, event.ModifierAlt))
	assert.False(t, m.Is())
	assert.True(t, m.Has(event.ModifierShift))
	assert.False(t, m.Has(event.ModifierSuper))

	var empty event.Modifiers
	assert.True(t, empty.Is())
	assert.True(t, empty.Empty())
	assert.True(t, empty.Is(event.ModifierNone))
}

func TestModifiersSetAndClear(t *testing.T) {
	m := event.NewModifiers(event.ModifierShift, event.ModifierAlt)
	m.Set(event.ModifierSuper)
	assert.True(t, m.Is(event.ModifierSuper))

	m.Clear()
	assert.True(t, m.Empty())
}

func TestModifiersString(t *testing.T) {
	assert.Equal(t, "None", event.Modifiers{}.String())
	assert.Equal(t, "Shift+Control", event.NewModifiers(event.ModifierControl, event.ModifierShift).String())
	assert.Equal(t, []event.ModifierKey{event.ModifierAlt, event.ModifierSuper},
		event.NewModifiers(event.ModifierSuper, event.ModifierAlt).Keys())
}

func TestParseModifierKey(t *testing.T) {
	tests := []struct {
		in   string
		want event.ModifierKey
		ok   bool
	}{
		{"shift", event.ModifierShift, true},
		{"Alt", event.ModifierAlt, true},
		{"option", event.ModifierAlt, true},
		{"ctrl", event.ModifierControl, true},
		{"cmd", event.ModifierControl, true},
		{"super", event.ModifierSuper, true},
		{"meta", event.ModifierSuper, true},
		{"hyper", event.ModifierNone, false},
	}
	for _, tt := range tests {
		got, ok := event.ParseModifierKey(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMouseButtonStateExclusiveQueries(t *testing.T) {
	left := event.NewMouseButtonState(event.ButtonLeft)
	assert.True(t, left.IsLeft())
	assert.True(t, left.Is(event.ButtonLeft))
	assert.True(t, left.IsOther(1))
	assert.False(t, left.IsRight())
	assert.False(t, left.IsMiddle())

	both := left
	both.Add(event.ButtonRight)
	assert.False(t, both.IsLeft(), "IsLeft is exclusive")
	assert.False(t, both.IsRight())
	assert.True(t, both.Has(event.ButtonLeft), "Has is inclusive")
	assert.True(t, both.Has(event.ButtonRight))
	assert.False(t, both.Has(event.ButtonMiddle))
	assert.NotEqual(t, left, both)

	both.Set(event.ButtonMiddle)
	assert.True(t, both.IsMiddle())
	assert.Equal(t, event.NewMouseButtonState(event.ButtonMiddle), both)

	both.Clear()
	assert.True(t, both.Empty())
	assert.Equal(t, event.MouseButtonState{}, both)
}

func TestMouseButtonStateIsOther(t *testing.T) {
	var s event.MouseButtonState
	s.Set(event.ButtonFifth)
	assert.True(t, s.IsOther(5))
	assert.False(t, s.IsOther(4))
	assert.False(t, s.IsOther(40))
	assert.Equal(t, "Fifth", s.String())

	s.Add(event.ButtonFourth)
	assert.False(t, s.IsOther(5))
	assert.Equal(t, "Fourth|Fifth", s.String())
}

func TestConsumeStateBits(t *testing.T) {
	var c event.ConsumeState
	c.SetBit(event.ConsumeStateLast, true)
	c.SetBit(7, true)

	c.Set(true)
	assert.True(t, c.IsHandled())
	assert.True(t, c.Bit(event.ConsumeStateLast), "variant bit kept on true")
	assert.True(t, c.Bit(7))

	c.Set(false)
	assert.False(t, c.IsHandled())
	assert.True(t, c.Bit(event.ConsumeStateLast), "variant bit kept on false")
	assert.True(t, c.Bit(7))

	c.Set(true)
	c.Reset()
	assert.False(t, c.IsHandled())
	assert.Equal(t, event.NotHandled, c)
}

func TestConsumeStateTruthReadsHandledOnly(t *testing.T) {
	var c event.ConsumeState
	c.SetBit(event.ConsumeStateLast, true)
	assert.False(t, c.IsHandled())
}

func TestIgnoreFollowUpEvents(t *testing.T) {
	down := event.NewMouseDownEvent(event.Point{}, event.NewMouseButtonState(event.ButtonLeft))

	down.Consumed.Set(true)
	down.SetIgnoreFollowUpMoveAndUpEvents(true)
	assert.True(t, down.Consumed.IsHandled())
	assert.True(t, down.IgnoreFollowUpMoveAndUpEvents())

	down.Consumed.Set(false)
	assert.True(t, down.IgnoreFollowUpMoveAndUpEvents(), "independent of Handled")

	down.SetIgnoreFollowUpMoveAndUpEvents(false)
	down.Consumed.Set(true)
	assert.False(t, down.IgnoreFollowUpMoveAndUpEvents())
	assert.True(t, down.Consumed.IsHandled())

	down.SetIgnoreFollowUpMoveAndUpEvents(true)
	down.Consumed.Reset()
	assert.False(t, down.Consumed.IsHandled())
	assert.False(t, down.IgnoreFollowUpMoveAndUpEvents())
}

func TestGesturePhaseGrammar(t *testing.T) {
	assert.True(t, event.PhaseBegin.CanFollow(event.PhaseEnd))
	assert.True(t, event.PhaseChanged.CanFollow(event.PhaseBegin))
	assert.True(t, event.PhaseChanged.CanFollow(event.PhaseChanged))
	assert.True(t, event.PhaseEnd.CanFollow(event.PhaseChanged))
	assert.True(t, event.PhaseEnd.CanFollow(event.PhaseBegin))
	assert.True(t, event.PhaseUnknown.CanFollow(event.PhaseChanged))
	assert.True(t, event.PhaseChanged.CanFollow(event.PhaseUnknown))

	assert.False(t, event.PhaseBegin.CanFollow(event.PhaseChanged))
	assert.False(t, event.PhaseChanged.CanFollow(event.PhaseEnd))
	assert.False(t, event.PhaseEnd.CanFollow(event.PhaseEnd))
}

func TestWheelFlags(t *testing.T) {
	f := event.WheelPreciseDeltas
	assert.True(t, f.Has(event.WheelPreciseDeltas))
	assert.False(t, f.Has(event.WheelDirectionInvertedFromDevice))
	assert.Equal(t, "PreciseDeltas", f.String())
	assert.Equal(t, "0", event.WheelFlags(0).String())
}
