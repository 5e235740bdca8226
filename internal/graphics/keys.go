package graphics

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyCodes maps raylib keys to the physical key codes used in keymaps.
var keyCodes = map[int32]string{
	rl.KeySpace:     "Space",
	rl.KeyEnter:     "Enter",
	rl.KeyEscape:    "Escape",
	rl.KeyTab:       "Tab",
	rl.KeyBackspace: "Backspace",
	rl.KeyUp:        "ArrowUp",
	rl.KeyDown:      "ArrowDown",
	rl.KeyLeft:      "ArrowLeft",
	rl.KeyRight:     "ArrowRight",
}

func init() {
	for k := int32(rl.KeyA); k <= rl.KeyZ; k++ {
		keyCodes[k] = "Key" + string(rune('A'+k-rl.KeyA))
	}
	for k := int32(rl.KeyZero); k <= rl.KeyNine; k++ {
		keyCodes[k] = "Digit" + strconv.Itoa(int(k-rl.KeyZero))
	}
	for k := int32(rl.KeyF1); k <= rl.KeyF12; k++ {
		keyCodes[k] = "F" + strconv.Itoa(int(k-rl.KeyF1)+1)
	}
}

// KeyCode returns the key code for a raylib key.
func KeyCode(key int32) (string, bool) {
	code, ok := keyCodes[key]
	return code, ok
}
