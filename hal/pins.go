package hal

import (
	"sync"
	"time"

	"pixelframe/input"
)

// Pin is a digital input line such as a push button on a GPIO. tinygo's
// machine.Pin satisfies it.
type Pin interface {
	Get() bool
}

// PinFunc adapts a function to Pin.
type PinFunc func() bool

func (f PinFunc) Get() bool { return f() }

// PinBinding maps a pin to a logical key. ActiveLow inverts the level for
// buttons wired to ground with a pull-up.
type PinBinding struct {
	Pin       Pin
	Key       input.Key
	ActiveLow bool
}

// PinSurface feeds pin levels into the key state of the wrapped surface.
// A key follows its pin only when the pin level changes, so it can share a
// key with other input sources.
type PinSurface struct {
	Surface
	bindings []PinBinding
	last     []bool
}

func NewPinSurface(s Surface, bindings ...PinBinding) *PinSurface {
	return &PinSurface{Surface: s, bindings: bindings, last: make([]bool, len(bindings))}
}

func (s *PinSurface) Poll(raw *input.Raw) {
	s.Surface.Poll(raw)
	for i, b := range s.bindings {
		if b.Pin == nil {
			continue
		}
		level := b.Pin.Get() != b.ActiveLow
		if level != s.last[i] {
			s.last[i] = level
			raw.SetKey(b.Key, level)
		}
	}
}

// SignalPin is a synthetic square wave: high for the first high of every
// period, starting when it is created.
type SignalPin struct {
	mu     sync.Mutex
	t0     time.Time
	now    func() time.Time
	period time.Duration
	high   time.Duration
}

// NewSignalPin returns a square wave pin. A nil clock uses time.Now; a
// non-positive period means one second; high is clamped to [0, period].
func NewSignalPin(period, high time.Duration, now func() time.Time) *SignalPin {
	if now == nil {
		now = time.Now
	}
	if period <= 0 {
		period = time.Second
	}
	high = min(max(high, 0), period)
	return &SignalPin{t0: now(), now: now, period: period, high: high}
}

func (p *SignalPin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed := p.now().Sub(p.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return elapsed%p.period < p.high
}
