package input

import (
	"fmt"
	"strings"
)

// Key is a logical keyboard key, independent of any platform key code.
type Key uint8

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyTab
	KeyShift
	KeyCtrl
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyEscape
	KeyReturn
	KeyEnter
	KeyPause
	KeyScrollLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadDecimal
	KeyPeriod
	KeyEqual
	KeyComma
	KeyMinus
	KeyOEM1
	KeyOEM2
	KeyOEM3
	KeyOEM4
	KeyOEM5
	KeyOEM6
	KeyOEM7
	KeyOEM8
	KeyCapsLock

	// KeyCount is the number of logical keys.
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:           "None",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	Key0:              "0",
	Key1:              "1",
	Key2:              "2",
	Key3:              "3",
	Key4:              "4",
	Key5:              "5",
	Key6:              "6",
	Key7:              "7",
	Key8:              "8",
	Key9:              "9",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyUp:             "Up",
	KeyDown:           "Down",
	KeyLeft:           "Left",
	KeyRight:          "Right",
	KeySpace:          "Space",
	KeyTab:            "Tab",
	KeyShift:          "Shift",
	KeyCtrl:           "Ctrl",
	KeyInsert:         "Insert",
	KeyDelete:         "Delete",
	KeyHome:           "Home",
	KeyEnd:            "End",
	KeyPageUp:         "PageUp",
	KeyPageDown:       "PageDown",
	KeyBackspace:      "Backspace",
	KeyEscape:         "Escape",
	KeyReturn:         "Return",
	KeyEnter:          "Enter",
	KeyPause:          "Pause",
	KeyScrollLock:     "ScrollLock",
	KeyNumpad0:        "Numpad0",
	KeyNumpad1:        "Numpad1",
	KeyNumpad2:        "Numpad2",
	KeyNumpad3:        "Numpad3",
	KeyNumpad4:        "Numpad4",
	KeyNumpad5:        "Numpad5",
	KeyNumpad6:        "Numpad6",
	KeyNumpad7:        "Numpad7",
	KeyNumpad8:        "Numpad8",
	KeyNumpad9:        "Numpad9",
	KeyNumpadMultiply: "NumpadMultiply",
	KeyNumpadDivide:   "NumpadDivide",
	KeyNumpadAdd:      "NumpadAdd",
	KeyNumpadSubtract: "NumpadSubtract",
	KeyNumpadDecimal:  "NumpadDecimal",
	KeyPeriod:         "Period",
	KeyEqual:          "Equal",
	KeyComma:          "Comma",
	KeyMinus:          "Minus",
	KeyOEM1:           "OEM1",
	KeyOEM2:           "OEM2",
	KeyOEM3:           "OEM3",
	KeyOEM4:           "OEM4",
	KeyOEM5:           "OEM5",
	KeyOEM6:           "OEM6",
	KeyOEM7:           "OEM7",
	KeyOEM8:           "OEM8",
	KeyCapsLock:       "CapsLock",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, KeyCount)
	for k, name := range keyNames {
		m[strings.ToLower(name)] = Key(k)
	}
	return m
}()

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey returns the key with the given name, ignoring case.
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyNone, fmt.Errorf("input: unknown key %q", name)
}

// MouseButton is a logical mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	// ButtonCount is the number of mouse buttons.
	ButtonCount
)

var buttonNames = [ButtonCount]string{
	MouseLeft:   "Left",
	MouseRight:  "Right",
	MouseMiddle: "Middle",
}

func (b MouseButton) String() string {
	if b < ButtonCount {
		return buttonNames[b]
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(b))
}

// ParseButton returns the mouse button with the given name, ignoring case.
func ParseButton(name string) (MouseButton, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for b, s := range buttonNames {
		if strings.ToLower(s) == n {
			return MouseButton(b), nil
		}
	}
	return 0, fmt.Errorf("input: unknown mouse button %q", name)
}
