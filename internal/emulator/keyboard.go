package emulator

import (
	"github.com/veandco/go-sdl2/sdl"
)

// keymap maps physical scancodes to the 16 logical keypad slots. The 1234,
// QWER, ASDF and ZXCV rows cover the 4x4 hexadecimal keypad:
//
//	1 2 3 4  ->  1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F  ->  7 8 9 E
//	Z X C V  ->  A 0 B F
var keymap = map[sdl.Scancode]byte{
	sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3, sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_Q: 0x4, sdl.SCANCODE_W: 0x5, sdl.SCANCODE_E: 0x6, sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_A: 0x7, sdl.SCANCODE_S: 0x8, sdl.SCANCODE_D: 0x9, sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_Z: 0xA, sdl.SCANCODE_X: 0x0, sdl.SCANCODE_C: 0xB, sdl.SCANCODE_V: 0xF,
}

// pollInput drains pending SDL events and samples the keyboard state. It
// returns the fresh keypad state and whether the user requested to quit,
// either by closing the window or pressing escape.
func pollInput() ([16]bool, bool) {
	var keys [16]bool

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return keys, true

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				return keys, true
			}
		}
	}

	state := sdl.GetKeyboardState()
	for scancode, key := range keymap {
		keys[key] = state[scancode] != 0
	}
	return keys, false
}
