package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/plugui/event"
	"github.com/Alia5/plugui/internal/adapter"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		step  adapter.Step
		check func(t *testing.T, e event.Any)
	}{
		{
			name: "mouse down",
			step: adapter.Step{Type: "MouseDown", X: 12, Y: 34, Buttons: []string{"Left"}, ClickCount: 2, Modifiers: []string{"alt"}},
			check: func(t *testing.T, e event.Any) {
				d := event.CastMouseDownEvent(e)
				assert.Equal(t, event.Point{X: 12, Y: 34}, d.MousePosition)
				assert.True(t, d.ButtonState.IsLeft())
				assert.Equal(t, uint32(2), d.ClickCount)
				assert.True(t, d.Modifiers.Is(event.ModifierAlt))
			},
		},
		{
			name: "move with two buttons",
			step: adapter.Step{Type: "mousemove", Buttons: []string{"left", "fifth"}},
			check: func(t *testing.T, e event.Any) {
				m := event.CastMouseMoveEvent(e)
				assert.True(t, m.ButtonState.Has(event.ButtonLeft))
				assert.True(t, m.ButtonState.Has(event.ButtonFifth))
				assert.False(t, m.ButtonState.IsLeft())
			},
		},
		{
			name: "exit",
			step: adapter.Step{Type: "MouseExit", X: 3, Modifiers: []string{"super"}},
			check: func(t *testing.T, e event.Any) {
				x := event.CastMouseExitEvent(e)
				assert.Equal(t, 3.0, x.MousePosition.X)
				assert.True(t, x.Modifiers.Is(event.ModifierSuper))
			},
		},
		{
			name: "wheel",
			step: adapter.Step{Type: "MouseWheel", DeltaX: -1.5, DeltaY: 0.3, WheelFlags: []string{"precise", "inverted"}},
			check: func(t *testing.T, e event.Any) {
				w := event.CastMouseWheelEvent(e)
				assert.Equal(t, -1.5, w.DeltaX)
				assert.Equal(t, 0.3, w.DeltaY)
				assert.True(t, w.Flags.Has(event.WheelPreciseDeltas|event.WheelDirectionInvertedFromDevice))
			},
		},
		{
			name: "key with astral character",
			step: adapter.Step{Type: "KeyDown", Char: "😀", Virt: "Escape", Repeat: true},
			check: func(t *testing.T, e event.Any) {
				k := event.CastKeyboardEvent(e)
				assert.Equal(t, uint32(0xD83D), k.Character, "first UTF-16 unit")
				assert.Equal(t, event.VKeyEscape, k.Virt)
				assert.True(t, k.IsRepeat)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := adapter.Build(tt.step)
			require.NoError(t, err)
			tt.check(t, e)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		step adapter.Step
		want error
	}{
		{adapter.Step{Type: "Unknown"}, adapter.ErrUnknownEventType},
		{adapter.Step{Type: "Scroll"}, adapter.ErrUnknownEventType},
		{adapter.Step{Type: "KeyDown", Modifiers: []string{"hyper"}}, adapter.ErrUnknownModifier},
		{adapter.Step{Type: "MouseDown", Buttons: []string{"sixth"}}, adapter.ErrUnknownButton},
		{adapter.Step{Type: "KeyUp", Virt: "F13"}, adapter.ErrUnknownVirtualKey},
		{adapter.Step{Type: "ZoomGesture", Phase: "Pinch"}, adapter.ErrUnknownPhase},
		{adapter.Step{Type: "MouseWheel", WheelFlags: []string{"smooth"}}, adapter.ErrUnknownWheelFlag},
		{adapter.Step{Type: "KeyDown", Char: "AB"}, adapter.ErrInvalidCharacter},
		{adapter.Step{Type: "KeyUp", Char: "\xff"}, adapter.ErrInvalidCharacter},
		{adapter.Step{Type: "KeyDown", Char: "A\xff"}, adapter.ErrInvalidCharacter},
	}
	for _, tt := range tests {
		_, err := adapter.Build(tt.step)
		assert.ErrorIs(t, err, tt.want, tt.step.Type)
	}
}
