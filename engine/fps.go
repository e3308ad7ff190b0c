package engine

import "time"

// fpsMeter samples wall-clock time once per frame and reports a frame
// rate once a second's worth of frames has accumulated.
type fpsMeter struct {
	last time.Time
	acc  time.Duration
	fps  int
}

// sample records now and returns the time since the previous sample. The
// first sample returns zero.
func (m *fpsMeter) sample(now time.Time) time.Duration {
	if m.last.IsZero() {
		m.last = now
		m.acc = 0
		return 0
	}
	dt := now.Sub(m.last)
	if dt < 0 {
		dt = 0
	}
	m.last = now
	m.acc += dt
	return dt
}

// report returns the frame rate derived from the last interval once the
// accumulator reaches one second, and resets the accumulator.
func (m *fpsMeter) report(dt time.Duration) (int, bool) {
	if m.acc < time.Second {
		return 0, false
	}
	m.acc = 0
	if dt > 0 {
		m.fps = int(time.Second / dt)
	} else {
		m.fps = 0
	}
	return m.fps, true
}
