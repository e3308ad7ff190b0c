package input

// State holds the edge-annotated status of every key and mouse button.
//
// The zero value is ready to use. State is not safe for concurrent use: the
// surface writes Raw and the frame loop calls Scan on the same goroutine.
type State struct {
	raw Raw

	oldKeys    [KeyCount]bool
	oldButtons [ButtonCount]bool

	keys    [KeyCount]ButtonState
	buttons [ButtonCount]ButtonState

	x, y int
}

// Raw returns the snapshot the surface should fill before Scan.
func (s *State) Raw() *Raw { return &s.raw }

// Scan derives this frame's button states from the raw snapshot.
// Call it exactly once per frame, before the update callback.
func (s *State) Scan() {
	Scan(s.keys[:], s.oldKeys[:], s.raw.Keys[:])
	Scan(s.buttons[:], s.oldButtons[:], s.raw.Buttons[:])
	s.x, s.y = s.raw.X, s.raw.Y
}

// Key returns the state of k. Unknown keys report the zero state.
func (s *State) Key(k Key) ButtonState {
	if k >= KeyCount {
		return ButtonState{}
	}
	return s.keys[k]
}

// Mouse returns the state of b. Unknown buttons report the zero state.
func (s *State) Mouse(b MouseButton) ButtonState {
	if b >= ButtonCount {
		return ButtonState{}
	}
	return s.buttons[b]
}

// Cursor returns the cursor position captured by the last Scan.
func (s *State) Cursor() (x, y int) { return s.x, s.y }
