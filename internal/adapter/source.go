package adapter

import (
	"fmt"

	"github.com/Alia5/plugui/event"
)

// Source is one input stream of the platform. It hands out ids and keeps
// timestamps non-decreasing within the stream.
type Source struct {
	Name string

	last    uint64
	phase   event.GesturePhase
	stamped int
}

func NewSource(name string) *Source {
	// no gesture in progress behaves like a finished one
	return &Source{Name: name, phase: event.PhaseEnd}
}

// Stamp assigns a fresh id and the timestamp ts to e.
func (s *Source) Stamp(e event.Any, ts uint64) error {
	b := event.Base(e)
	if b == nil {
		return fmt.Errorf("%s: nil event", s.Name)
	}
	if s.stamped > 0 && ts < s.last {
		return fmt.Errorf("%w: stream %s: %d after %d", ErrTimestampRegressed, s.Name, ts, s.last)
	}
	b.ID = event.NextID()
	b.Timestamp = ts
	s.last = ts
	s.stamped++
	return nil
}

// Produce builds the event of step and stamps it.
func (s *Source) Produce(step Step) (event.Any, error) {
	e, err := Build(step)
	if err != nil {
		return nil, err
	}
	if err := s.Stamp(e, step.Timestamp); err != nil {
		return nil, err
	}
	return e, nil
}

// checkPhase reports whether a zoom gesture continues the gesture grammar
// of the stream and remembers its phase.
func (s *Source) checkPhase(e event.Any) bool {
	if event.View(e).Type() != event.EventZoomGesture {
		return true
	}
	z := event.CastZoomGestureEvent(e)
	ok := z.Phase.CanFollow(s.phase)
	s.phase = z.Phase
	return ok
}
