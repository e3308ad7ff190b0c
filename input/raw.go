package input

// Raw is the level-triggered input snapshot a display surface fills on
// every poll.
type Raw struct {
	Keys    [KeyCount]bool
	Buttons [ButtonCount]bool
	X, Y    int
}

// SetKey records whether k is down. Out of range keys are ignored.
func (r *Raw) SetKey(k Key, down bool) {
	if k < KeyCount {
		r.Keys[k] = down
	}
}

// SetButton records whether b is down. Out of range buttons are ignored.
func (r *Raw) SetButton(b MouseButton, down bool) {
	if b < ButtonCount {
		r.Buttons[b] = down
	}
}

// SetCursor records the cursor position in buffer cells.
func (r *Raw) SetCursor(x, y int) {
	r.X, r.Y = x, y
}

// Reset releases every key and button. The cursor is kept.
func (r *Raw) Reset() {
	r.Keys = [KeyCount]bool{}
	r.Buttons = [ButtonCount]bool{}
}
