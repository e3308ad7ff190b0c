//go:build cgo

package hal

import (
	"pixelframe/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps physical ebiten keys to logical keys. Several physical
// keys may drive one logical key; Enter drives both Return and Enter.
var keyBindings = [...]struct {
	phys ebiten.Key
	key  input.Key
}{
	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyB, input.KeyB},
	{ebiten.KeyC, input.KeyC},
	{ebiten.KeyD, input.KeyD},
	{ebiten.KeyE, input.KeyE},
	{ebiten.KeyF, input.KeyF},
	{ebiten.KeyG, input.KeyG},
	{ebiten.KeyH, input.KeyH},
	{ebiten.KeyI, input.KeyI},
	{ebiten.KeyJ, input.KeyJ},
	{ebiten.KeyK, input.KeyK},
	{ebiten.KeyL, input.KeyL},
	{ebiten.KeyM, input.KeyM},
	{ebiten.KeyN, input.KeyN},
	{ebiten.KeyO, input.KeyO},
	{ebiten.KeyP, input.KeyP},
	{ebiten.KeyQ, input.KeyQ},
	{ebiten.KeyR, input.KeyR},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyT, input.KeyT},
	{ebiten.KeyU, input.KeyU},
	{ebiten.KeyV, input.KeyV},
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyX, input.KeyX},
	{ebiten.KeyY, input.KeyY},
	{ebiten.KeyZ, input.KeyZ},
	{ebiten.KeyDigit0, input.Key0},
	{ebiten.KeyDigit1, input.Key1},
	{ebiten.KeyDigit2, input.Key2},
	{ebiten.KeyDigit3, input.Key3},
	{ebiten.KeyDigit4, input.Key4},
	{ebiten.KeyDigit5, input.Key5},
	{ebiten.KeyDigit6, input.Key6},
	{ebiten.KeyDigit7, input.Key7},
	{ebiten.KeyDigit8, input.Key8},
	{ebiten.KeyDigit9, input.Key9},
	{ebiten.KeyF1, input.KeyF1},
	{ebiten.KeyF2, input.KeyF2},
	{ebiten.KeyF3, input.KeyF3},
	{ebiten.KeyF4, input.KeyF4},
	{ebiten.KeyF5, input.KeyF5},
	{ebiten.KeyF6, input.KeyF6},
	{ebiten.KeyF7, input.KeyF7},
	{ebiten.KeyF8, input.KeyF8},
	{ebiten.KeyF9, input.KeyF9},
	{ebiten.KeyF10, input.KeyF10},
	{ebiten.KeyF11, input.KeyF11},
	{ebiten.KeyF12, input.KeyF12},
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyTab, input.KeyTab},
	{ebiten.KeyShiftLeft, input.KeyShift},
	{ebiten.KeyShiftRight, input.KeyShift},
	{ebiten.KeyControlLeft, input.KeyCtrl},
	{ebiten.KeyControlRight, input.KeyCtrl},
	{ebiten.KeyInsert, input.KeyInsert},
	{ebiten.KeyDelete, input.KeyDelete},
	{ebiten.KeyHome, input.KeyHome},
	{ebiten.KeyEnd, input.KeyEnd},
	{ebiten.KeyPageUp, input.KeyPageUp},
	{ebiten.KeyPageDown, input.KeyPageDown},
	{ebiten.KeyBackspace, input.KeyBackspace},
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyEnter, input.KeyReturn},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyNumpadEnter, input.KeyEnter},
	{ebiten.KeyPause, input.KeyPause},
	{ebiten.KeyScrollLock, input.KeyScrollLock},
	{ebiten.KeyNumpad0, input.KeyNumpad0},
	{ebiten.KeyNumpad1, input.KeyNumpad1},
	{ebiten.KeyNumpad2, input.KeyNumpad2},
	{ebiten.KeyNumpad3, input.KeyNumpad3},
	{ebiten.KeyNumpad4, input.KeyNumpad4},
	{ebiten.KeyNumpad5, input.KeyNumpad5},
	{ebiten.KeyNumpad6, input.KeyNumpad6},
	{ebiten.KeyNumpad7, input.KeyNumpad7},
	{ebiten.KeyNumpad8, input.KeyNumpad8},
	{ebiten.KeyNumpad9, input.KeyNumpad9},
	{ebiten.KeyNumpadMultiply, input.KeyNumpadMultiply},
	{ebiten.KeyNumpadDivide, input.KeyNumpadDivide},
	{ebiten.KeyNumpadAdd, input.KeyNumpadAdd},
	{ebiten.KeyNumpadSubtract, input.KeyNumpadSubtract},
	{ebiten.KeyNumpadDecimal, input.KeyNumpadDecimal},
	{ebiten.KeyPeriod, input.KeyPeriod},
	{ebiten.KeyEqual, input.KeyEqual},
	{ebiten.KeyComma, input.KeyComma},
	{ebiten.KeyMinus, input.KeyMinus},
	{ebiten.KeySemicolon, input.KeyOEM1},
	{ebiten.KeySlash, input.KeyOEM2},
	{ebiten.KeyBackquote, input.KeyOEM3},
	{ebiten.KeyBracketLeft, input.KeyOEM4},
	{ebiten.KeyBackslash, input.KeyOEM5},
	{ebiten.KeyBracketRight, input.KeyOEM6},
	{ebiten.KeyQuote, input.KeyOEM7},
	{ebiten.KeyIntlBackslash, input.KeyOEM8},
	{ebiten.KeyCapsLock, input.KeyCapsLock},
}

var mouseBindings = [input.ButtonCount]ebiten.MouseButton{
	input.MouseLeft:   ebiten.MouseButtonLeft,
	input.MouseRight:  ebiten.MouseButtonRight,
	input.MouseMiddle: ebiten.MouseButtonMiddle,
}

// pollEbiten writes the keyboard, mouse and cursor state into raw.
func pollEbiten(raw *input.Raw) {
	raw.Reset()
	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.phys) {
			raw.Keys[b.key] = true
		}
	}
	for btn, phys := range mouseBindings {
		raw.Buttons[btn] = ebiten.IsMouseButtonPressed(phys)
	}
	raw.SetCursor(ebiten.CursorPosition())
}
