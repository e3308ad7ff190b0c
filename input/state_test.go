package input

import (
	"sync"
	"testing"
)

func TestStateKeyAndMouse(t *testing.T) {
	var s State
	raw := s.Raw()

	raw.SetKey(KeyEscape, true)
	raw.SetButton(MouseRight, true)
	raw.SetCursor(7, 9)
	s.Scan()

	if got := s.Key(KeyEscape); !got.Pressed || !got.Held {
		t.Fatalf("Key(Escape) = %+v, want pressed and held", got)
	}
	if got := s.Mouse(MouseRight); !got.Pressed {
		t.Fatalf("Mouse(Right) = %+v, want pressed", got)
	}
	if got := s.Mouse(MouseLeft); got != (ButtonState{}) {
		t.Fatalf("Mouse(Left) = %+v, want zero", got)
	}
	if x, y := s.Cursor(); x != 7 || y != 9 {
		t.Fatalf("Cursor() = %d,%d, want 7,9", x, y)
	}

	raw.Reset()
	s.Scan()
	if got := s.Key(KeyEscape); !got.Released || got.Held {
		t.Fatalf("Key(Escape) after Reset = %+v, want released", got)
	}
	if x, y := s.Cursor(); x != 7 || y != 9 {
		t.Fatalf("Reset moved the cursor to %d,%d", x, y)
	}

	if got := s.Key(KeyCount + 1); got != (ButtonState{}) {
		t.Fatalf("Key(out of range) = %+v, want zero", got)
	}
}

func TestParseKey(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Key
	}{
		{"Escape", KeyEscape},
		{"escape", KeyEscape},
		{" f12 ", KeyF12},
		{"7", Key7},
		{"numpad3", KeyNumpad3},
		{"OEM8", KeyOEM8},
		{"capslock", KeyCapsLock},
	} {
		got, err := ParseKey(tc.in)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseKey(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseKey("hyper"); err == nil {
		t.Fatalf("ParseKey(hyper) succeeded, want error")
	}
}

func TestKeyNamesRoundTrip(t *testing.T) {
	for k := KeyNone; k < KeyCount; k++ {
		got, err := ParseKey(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKey(%q) = %v, %v, want %v", k.String(), got, err, k)
		}
	}
	if got := Key(200).String(); got != "Key(200)" {
		t.Fatalf("Key(200).String() = %q", got)
	}
	if b, err := ParseButton("middle"); err != nil || b != MouseMiddle {
		t.Fatalf("ParseButton(middle) = %v, %v", b, err)
	}
}

func TestQueueDrain(t *testing.T) {
	q := NewQueue(2)
	if !q.Push(KeyEvent(KeyA, true)) || !q.Push(CursorEvent(3, 4)) {
		t.Fatalf("Push() into empty queue failed")
	}
	if q.Push(ButtonEvent(MouseLeft, true)) {
		t.Fatalf("Push() into full queue succeeded")
	}

	var r Raw
	if n := q.Drain(&r); n != 2 {
		t.Fatalf("Drain() = %d, want 2", n)
	}
	if !r.Keys[KeyA] || r.X != 3 || r.Y != 4 {
		t.Fatalf("Drain() raw = %+v", r)
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d after Drain, want 0", q.Len())
	}
}

func TestQueueDrainBoundedUnderLoad(t *testing.T) {
	q := NewQueue(4)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				q.Push(CursorEvent(i, 0))
			}
		}
	}()

	var r Raw
	for i := 0; i < 1000; i++ {
		if n := q.Drain(&r); n > 4 {
			close(stop)
			wg.Wait()
			t.Fatalf("Drain() = %d with a producer running, want at most the capacity 4", n)
		}
	}
	close(stop)
	wg.Wait()
}
