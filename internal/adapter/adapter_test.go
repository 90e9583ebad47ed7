package adapter_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/plugui/event"
	"github.com/Alia5/plugui/internal/adapter"
	eventTest "github.com/Alia5/plugui/internal/testing"
)

type produced struct {
	stream string
	typ    event.EventType
	id     uint64
	ts     uint64
}

func replay(t *testing.T, s *adapter.Script) []produced {
	t.Helper()
	var out []produced
	a := adapter.New(eventTest.Logger(t), nil)
	err := a.Run(context.Background(), s, func(stream string, e event.Any) error {
		v := event.View(e)
		out = append(out, produced{stream, v.Type(), v.ID(), v.Timestamp()})
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestLoadYAMLSession(t *testing.T) {
	s, err := adapter.Load(filepath.Join("testdata", "session.yaml"))
	require.NoError(t, err)
	require.Len(t, s.Streams, 2)

	got := replay(t, s)
	types := []event.EventType{}
	for _, p := range got {
		types = append(types, p.typ)
	}
	assert.Equal(t, []event.EventType{
		event.EventMouseEnter, event.EventMouseDown, event.EventMouseUp,
		event.EventMouseWheel, event.EventMouseCancel,
		event.EventKeyDown, event.EventKeyUp,
	}, types)

	seen := map[uint64]bool{}
	for _, p := range got {
		assert.NotZero(t, p.id)
		assert.False(t, seen[p.id], "id %d reused", p.id)
		seen[p.id] = true
	}
	assert.Equal(t, uint64(5), got[5].ts, "keyboard stream has its own clock")
}

func TestLoadTOMLGesture(t *testing.T) {
	s, err := adapter.Load(filepath.Join("testdata", "gesture.toml"))
	require.NoError(t, err)
	require.Len(t, s.Streams, 1)
	require.Len(t, s.Streams[0].Steps, 3)

	var zooms []float64
	var phases []event.GesturePhase
	a := adapter.New(eventTest.Logger(t), nil)
	err = a.Run(context.Background(), s, func(_ string, e event.Any) error {
		z := event.CastZoomGestureEvent(e)
		zooms = append(zooms, z.Zoom)
		phases = append(phases, z.Phase)
		assert.NotNil(t, event.AsMousePositionEvent(e))
		assert.Nil(t, event.AsMouseEvent(e))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.25, 1.5}, zooms)
	assert.Equal(t, []event.GesturePhase{event.PhaseBegin, event.PhaseChanged, event.PhaseEnd}, phases)
}

func TestLoadJSONKeys(t *testing.T) {
	s, err := adapter.Load(filepath.Join("testdata", "keys.json"))
	require.NoError(t, err)

	var keys []string
	a := adapter.New(eventTest.Logger(t), nil)
	err = a.Run(context.Background(), s, func(_ string, e event.Any) error {
		k := event.AsKeyboardEvent(e)
		require.NotNil(t, k)
		keys = append(keys, k.Virt.String()+"/"+k.Modifiers.String())
		if k.Type() == event.EventKeyDown {
			assert.Equal(t, uint32(65), k.Character)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"None/Super", "Equals/None"}, keys)
}

func TestLoadAllKeepsOrder(t *testing.T) {
	scripts, err := adapter.LoadAll(context.Background(),
		filepath.Join("testdata", "keys.json"),
		filepath.Join("testdata", "gesture.toml"),
		filepath.Join("testdata", "session.yaml"),
	)
	require.NoError(t, err)
	require.Len(t, scripts, 3)

	merged := adapter.Merge(scripts...)
	names := []string{}
	for _, st := range merged.Streams {
		names = append(names, st.Name)
	}
	assert.Equal(t, []string{"keyboard", "trackpad", "pointer", "keyboard"}, names)
}

func TestLoadAllFails(t *testing.T) {
	_, err := adapter.LoadAll(context.Background(),
		filepath.Join("testdata", "keys.json"),
		filepath.Join("testdata", "missing.yaml"),
	)
	assert.Error(t, err)

	_, err = adapter.Load("script.ini")
	assert.ErrorIs(t, err, adapter.ErrUnsupportedFormat)
}

func TestTimestampRegression(t *testing.T) {
	s, err := adapter.Load(filepath.Join("testdata", "regress.yaml"))
	require.NoError(t, err)

	a := adapter.New(eventTest.DiscardLogger(), nil)
	delivered := 0
	err = a.Run(context.Background(), s, func(string, event.Any) error {
		delivered++
		return nil
	})
	assert.ErrorIs(t, err, adapter.ErrTimestampRegressed)
	assert.Equal(t, 1, delivered)
}

func TestSourceStamp(t *testing.T) {
	src := adapter.NewSource("pointer")
	a := event.NewMouseMoveEvent(event.Point{}, event.MouseButtonState{})
	b := event.NewMouseMoveEvent(event.Point{}, event.MouseButtonState{})

	require.NoError(t, src.Stamp(a, 0))
	require.NoError(t, src.Stamp(b, 0), "equal timestamps are allowed")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Error(t, src.Stamp(nil, 1))
}

func TestDeliverErrorStops(t *testing.T) {
	s, err := adapter.Decode(strings.NewReader(`
streams:
  - name: p
    steps:
      - {type: MouseMove, timestamp: 1}
      - {type: MouseMove, timestamp: 2}
`), "yaml")
	require.NoError(t, err)

	boom := errors.New("boom")
	calls := 0
	a := adapter.New(eventTest.DiscardLogger(), nil)
	err = a.Run(context.Background(), s, func(string, event.Any) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRunHonorsContext(t *testing.T) {
	s := &adapter.Script{Streams: []adapter.Stream{{Name: "p", Steps: []adapter.Step{{Type: "MouseCancel"}}}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := adapter.New(eventTest.DiscardLogger(), nil).Run(ctx, s, func(string, event.Any) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGesturePhaseWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)
	s := &adapter.Script{Streams: []adapter.Stream{{Name: "pad", Steps: []adapter.Step{
		{Type: "ZoomGesture", Phase: "Changed"},
		{Type: "ZoomGesture", Phase: "End"},
	}}}}
	err := adapter.New(logger, nil).Run(context.Background(), s, func(string, event.Any) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "gesture phase out of order"))
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	tests := []struct {
		format string
		script string
	}{
		{"json", `{"streams":[{"name":"p","steps":[{"type":"MouseDown","clicks":2}]}]}`},
		{"yaml", "streams:\n  - name: p\n    steps:\n      - {type: MouseDown, clicks: 2}\n"},
		{"toml", "[[streams]]\nname = \"p\"\n\n  [[streams.steps]]\n  type = \"MouseDown\"\n  clicks = 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, err := adapter.Decode(strings.NewReader(tt.script), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "clicks")
		})
	}

	_, err := adapter.Decode(strings.NewReader("streams: []"), "xml")
	assert.ErrorIs(t, err, adapter.ErrUnsupportedFormat)
}

func TestDecodeKnownTOMLFields(t *testing.T) {
	s, err := adapter.Decode(strings.NewReader("[[streams]]\nname = \"p\"\n\n  [[streams.steps]]\n  type = \"MouseDown\"\n  clickCount = 2\n"), "toml")
	require.NoError(t, err)
	require.Len(t, s.Streams, 1)
	assert.Equal(t, uint32(2), s.Streams[0].Steps[0].ClickCount)
}
