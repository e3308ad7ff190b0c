package hal

import (
	"slices"

	"pixelframe/input"
)

// ScriptEvent is an input event applied when the given frame is polled.
// Frames count from zero.
type ScriptEvent struct {
	Frame uint64
	Event input.Event
}

// ScriptSurface replays scripted input on top of another surface.
type ScriptSurface struct {
	Surface
	events []ScriptEvent
	next   int
	frame  uint64

	base, held input.Raw
	cursor     bool
}

// NewScriptSurface wraps s. Events are sorted by frame; events for the same
// frame keep their order.
func NewScriptSurface(s Surface, events []ScriptEvent) *ScriptSurface {
	evs := slices.Clone(events)
	slices.SortStableFunc(evs, func(a, b ScriptEvent) int {
		switch {
		case a.Frame < b.Frame:
			return -1
		case a.Frame > b.Frame:
			return 1
		}
		return 0
	})
	return &ScriptSurface{Surface: s, events: evs}
}

// Poll polls the wrapped surface, then overlays the scripted state. A
// scripted key stays down until a later event releases it.
func (s *ScriptSurface) Poll(raw *input.Raw) {
	s.Surface.Poll(&s.base)
	for s.next < len(s.events) && s.events[s.next].Frame <= s.frame {
		e := s.events[s.next].Event
		e.Apply(&s.held)
		s.cursor = s.cursor || e.Kind == input.EventCursor
		s.next++
	}
	s.frame++

	*raw = s.base
	for i, down := range s.held.Keys {
		raw.Keys[i] = raw.Keys[i] || down
	}
	for i, down := range s.held.Buttons {
		raw.Buttons[i] = raw.Buttons[i] || down
	}
	if s.cursor {
		raw.SetCursor(s.held.X, s.held.Y)
	}
}

// Done reports whether every scripted event has been applied.
func (s *ScriptSurface) Done() bool { return s.next >= len(s.events) }
