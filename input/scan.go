// Package input turns level-triggered raw input into edge-triggered
// button states.
//
// A display surface fills a Raw snapshot once per poll. State keeps the
// previous snapshot and, on Scan, derives for every key and mouse button
// whether it was pressed this frame, released this frame, or is held.
package input

// ButtonState is the edge-annotated status of one key or mouse button.
//
// Pressed and Released are one-frame pulses: they are recomputed on every
// scan and must be consumed in the frame that produced them.
type ButtonState struct {
	Pressed  bool
	Released bool
	Held     bool
}

// Scan updates states from the previous and current raw snapshots and then
// copies newRaw into oldRaw for the next poll. Only the first
// min(len(states), len(oldRaw), len(newRaw)) entries are touched.
func Scan(states []ButtonState, oldRaw, newRaw []bool) {
	n := min(len(states), len(oldRaw), len(newRaw))
	for i := 0; i < n; i++ {
		s := &states[i]
		s.Pressed = false
		s.Released = false
		if newRaw[i] != oldRaw[i] {
			if newRaw[i] {
				s.Pressed = !s.Held
				s.Held = true
			} else {
				s.Released = true
				s.Held = false
			}
		}
		oldRaw[i] = newRaw[i]
	}
}
